package tui

import (
	"fmt"
	"strings"
)

// State collects answers keyed by dotted paths ("user.tags"). Segments always
// create nested objects, numeric ones included, matching how form parameters
// such as post[1][tags][] decode server side.
type State struct {
	values map[string]any
}

// NewState seeds the state with prefilled values.
func NewState(prefill map[string]any) *State {
	return &State{values: cloneValues(prefill)}
}

// Values returns the collected value tree (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// GetValue resolves a dotted path.
func (s *State) GetValue(path string) (any, bool) {
	if s == nil || path == "" {
		return nil, false
	}
	var current any = s.values
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = node[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

// SetValue writes value at path, creating intermediate objects. It fails
// when a prefix of path already holds a non-object answer.
func (s *State) SetValue(path string, value any) error {
	if s == nil {
		return fmt.Errorf("tui: state is nil")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("tui: empty value path")
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}

	segments := strings.Split(path, ".")
	node := s.values
	for _, segment := range segments[:len(segments)-1] {
		switch child := node[segment].(type) {
		case map[string]any:
			node = child
		case nil:
			next := make(map[string]any)
			node[segment] = next
			node = next
		default:
			return fmt.Errorf("tui: %q already holds a %T", segment, child)
		}
	}
	node[segments[len(segments)-1]] = value
	return nil
}

func cloneValues(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = deepCopy(v)
	}
	return out
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneValues(typed)
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v)
		}
		return clone
	default:
		return typed
	}
}
