package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects the helper used to render a collection field.
type Kind string

const (
	KindRadioButtons Kind = "radio_buttons"
	KindCheckBoxes   Kind = "check_boxes"
)

// ErrInvalidField is wrapped by every Validate failure.
var ErrInvalidField = errors.New("model: invalid collection field")

// Option is one entry of a collection field.
type Option struct {
	Value    string         `json:"value" yaml:"value"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Disabled bool           `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	HTML     map[string]any `json:"html,omitempty" yaml:"html,omitempty"`
}

// Label returns Text, falling back to Value.
func (o Option) Label() string {
	if strings.TrimSpace(o.Text) != "" {
		return o.Text
	}
	return o.Value
}

// CollectionField describes a radio button or check box group bound to
// Object[Method].
type CollectionField struct {
	Object        string            `json:"object" yaml:"object"`
	Method        string            `json:"method" yaml:"method"`
	Kind          Kind              `json:"kind" yaml:"kind"`
	Label         string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description   string            `json:"description,omitempty" yaml:"description,omitempty"`
	Options       []Option          `json:"options" yaml:"options"`
	Checked       []string          `json:"checked,omitempty" yaml:"checked,omitempty"`
	Disabled      []string          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	HTML          map[string]any    `json:"html,omitempty" yaml:"html,omitempty"`
	IncludeHidden *bool             `json:"includeHidden,omitempty" yaml:"includeHidden,omitempty"`
	Namespace     string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Multiple reports whether the field submits a list of values.
func (f CollectionField) Multiple() bool {
	return f.Kind == KindCheckBoxes
}

// DisabledValues merges the field level Disabled list with options flagged
// disabled, preserving first-seen order.
func (f CollectionField) DisabledValues() []string {
	out := make([]string, 0, len(f.Disabled))
	seen := make(map[string]struct{}, len(f.Disabled))
	add := func(value string) {
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	for _, value := range f.Disabled {
		add(value)
	}
	for _, option := range f.Options {
		if option.Disabled {
			add(option.Value)
		}
	}
	return out
}

// OptionHTML returns per-option html attributes keyed by value.
func (f CollectionField) OptionHTML() map[string]map[string]any {
	out := make(map[string]map[string]any)
	for _, option := range f.Options {
		if len(option.HTML) > 0 {
			out[option.Value] = option.HTML
		}
	}
	return out
}

// Validate checks the field is renderable.
func (f CollectionField) Validate() error {
	if strings.TrimSpace(f.Method) == "" {
		return fmt.Errorf("%w: method is required", ErrInvalidField)
	}
	switch f.Kind {
	case KindRadioButtons, KindCheckBoxes:
	case "":
		return fmt.Errorf("%w: kind is required for %q", ErrInvalidField, f.Method)
	default:
		return fmt.Errorf("%w: unknown kind %q for %q", ErrInvalidField, f.Kind, f.Method)
	}
	if f.Kind == KindRadioButtons && len(f.Checked) > 1 {
		return fmt.Errorf("%w: radio buttons %q accept at most one checked value", ErrInvalidField, f.Method)
	}

	seen := make(map[string]struct{}, len(f.Options))
	for i, option := range f.Options {
		if _, ok := seen[option.Value]; ok {
			return fmt.Errorf("%w: duplicate option value %q at index %d", ErrInvalidField, option.Value, i)
		}
		seen[option.Value] = struct{}{}
	}
	return nil
}

// WithDefaults fills Kind from Metadata["widget"] when unset.
func (f CollectionField) WithDefaults() CollectionField {
	if f.Kind == "" {
		switch Kind(strings.TrimSpace(f.Metadata["widget"])) {
		case KindCheckBoxes:
			f.Kind = KindCheckBoxes
		case KindRadioButtons:
			f.Kind = KindRadioButtons
		}
	}
	return f
}
