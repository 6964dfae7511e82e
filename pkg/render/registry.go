package render

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps renderer names to implementations and remembers which one to
// use when a caller does not ask for a specific renderer.
type Registry struct {
	mu          sync.RWMutex
	renderers   map[string]Renderer
	defaultName string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds renderer under its Name(). The first renderer registered
// becomes the default. Duplicate and empty names are rejected.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.renderers[name]; taken {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	if r.defaultName == "" {
		r.defaultName = name
	}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// SetDefault changes the renderer returned by Resolve("").
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.renderers[name]; !ok {
		return fmt.Errorf("render: renderer %q not found", name)
	}
	r.defaultName = name
	return nil
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if renderer, ok := r.renderers[name]; ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("render: renderer %q not found", name)
}

// Resolve returns the named renderer, or the default one when name is blank.
func (r *Registry) Resolve(name string) (Renderer, error) {
	if name = strings.TrimSpace(name); name != "" {
		return r.Get(name)
	}
	r.mu.RLock()
	fallback := r.defaultName
	r.mu.RUnlock()
	if fallback == "" {
		return nil, fmt.Errorf("render: no renderers registered")
	}
	return r.Get(fallback)
}

// MustGet panics if the renderer is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.renderers[name]
	return ok
}
