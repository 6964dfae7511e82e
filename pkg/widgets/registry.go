package widgets

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-formhelpers/pkg/model"
)

// MetadataWidget is the metadata key that pins a field's kind.
const MetadataWidget = "widget"

// Matcher decides whether a kind should handle the supplied field.
type Matcher func(field model.CollectionField) bool

type rule struct {
	kind     model.Kind
	priority int
	match    Matcher
	order    int
}

// Registry picks the helper kind for fields that do not declare one. Higher
// priority wins; ties fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers: check boxes
// for multi-valued fields, radio buttons for everything else.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for kind with the given priority.
func (r *Registry) Register(kind model.Kind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	kind = model.Kind(strings.TrimSpace(string(kind)))
	if kind == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the kind for field. A set Kind or Metadata["widget"] is
// honoured before any matcher runs.
func (r *Registry) Resolve(field model.CollectionField) (model.Kind, bool) {
	if explicit := explicitKind(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.kind, true
		}
	}
	return "", false
}

// Apply fills Kind on every field that lacks one. Fields are copied.
func (r *Registry) Apply(fields []model.CollectionField) []model.CollectionField {
	if len(fields) == 0 {
		return fields
	}
	out := make([]model.CollectionField, len(fields))
	for i, field := range fields {
		if field.Kind == "" {
			if kind, ok := r.Resolve(field); ok {
				field.Kind = kind
			}
		}
		out[i] = field
	}
	return out
}

func explicitKind(field model.CollectionField) model.Kind {
	if field.Kind != "" {
		return field.Kind
	}
	if field.Metadata != nil {
		if widget := strings.TrimSpace(field.Metadata[MetadataWidget]); widget != "" {
			return model.Kind(widget)
		}
	}
	return ""
}

// MultiValued reports whether field submits several values: an explicit
// "multiple" metadata flag, more than one checked value, or an ids method
// such as tag_ids.
func MultiValued(field model.CollectionField) bool {
	if raw, ok := field.Metadata["multiple"]; ok {
		multiple, err := strconv.ParseBool(strings.TrimSpace(raw))
		return err == nil && multiple
	}
	if len(field.Checked) > 1 {
		return true
	}
	return strings.HasSuffix(strings.TrimSpace(field.Method), "_ids")
}

func (r *Registry) registerBuiltins() {
	r.Register(model.KindCheckBoxes, 80, MultiValued)
	r.Register(model.KindRadioButtons, 10, func(model.CollectionField) bool { return true })
}
