// Package layouts tracks the per-item layouts the vanilla renderer can apply
// to a collection. A layout names the template rendered for every item and
// the theme partial key that may override it.
package layouts

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Built-in layout names.
const (
	NameDefault = "default"
	NameInline  = "inline"
	NameWrapped = "wrapped"
)

const templatePrefix = "templates/items/"

// Descriptor describes one item layout.
type Descriptor struct {
	Name string
	// Template is the engine template name, without extension.
	Template string
	// PartialKey is looked up in the theme partials before Template is used.
	PartialKey string
	// Wrapped reports whether the layout emits its own per-item container.
	Wrapped bool
}

// Registry maps layout names to descriptors.
type Registry struct {
	mu      sync.RWMutex
	layouts map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{layouts: make(map[string]Descriptor)}
}

// NewDefaultRegistry returns a registry with the default, inline and wrapped
// layouts.
func NewDefaultRegistry() *Registry {
	r := New()
	r.MustRegister(NameDefault, Descriptor{Template: templatePrefix + "default", PartialKey: "collection.item"})
	r.MustRegister(NameInline, Descriptor{Template: templatePrefix + "inline", PartialKey: "collection.item.inline"})
	r.MustRegister(NameWrapped, Descriptor{Template: templatePrefix + "wrapped", PartialKey: "collection.item.wrapped", Wrapped: true})
	return r
}

// Clone returns an independent copy so callers can add layouts without
// touching a shared registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cloned := New()
	for name, descriptor := range r.layouts {
		cloned.layouts[name] = descriptor
	}
	return cloned
}

// Register adds or replaces a layout.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("layouts: layout name is required")
	}
	if strings.TrimSpace(descriptor.Template) == "" {
		return fmt.Errorf("layouts: template for %q is required", name)
	}
	descriptor.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()
	r.layouts[name] = descriptor
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor looks a layout up by name; blank resolves to NameDefault.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	name = normalize(name)
	if name == "" {
		name = NameDefault
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.layouts[name]
	return descriptor, ok
}

// Names returns the registered layout names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
