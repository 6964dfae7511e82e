// Package tui renders collection fields as terminal prompts: radio buttons
// become a single select, check boxes a multi select. Answers are serialized
// under the same object/method structure the HTML form would submit.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/model"
	"github.com/goliatone/go-formhelpers/pkg/render"
)

const defaultDisabledSuffix = " (disabled)"

// Renderer implements render.Renderer for terminal sessions.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	pageSize          int
	maxAttempts       int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       NewSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unknown output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for a single field.
func (r *Renderer) Render(ctx context.Context, field model.CollectionField, opts render.RenderOptions) ([]byte, error) {
	return r.RenderFields(ctx, []model.CollectionField{field}, opts)
}

// RenderFields prompts for every field in order and serializes all answers
// into one document. opts.Errors are shown once, before the first prompt.
func (r *Renderer) RenderFields(ctx context.Context, fields []model.CollectionField, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	for _, message := range render.NormalizeErrors(opts.Errors...) {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return nil, err
		}
	}

	state := NewState(nil)
	for _, field := range fields {
		if err := r.promptField(ctx, field, state, opts); err != nil {
			return nil, err
		}
	}

	values := state.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

type choice struct {
	option   model.Option
	label    string
	disabled bool
}

func (r *Renderer) promptField(ctx context.Context, field model.CollectionField, state *State, opts render.RenderOptions) error {
	field = field.WithDefaults()
	if err := field.Validate(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	render.LocalizeField(&field, opts)

	suffix := r.theme.DisabledSuffix
	if suffix == "" {
		suffix = defaultDisabledSuffix
	}
	disabled := field.DisabledValues()
	checked := opts.CheckedValues(field.Checked)

	choices := make([]choice, len(field.Options))
	labels := make([]string, len(field.Options))
	var defaults []int
	for i, option := range field.Options {
		c := choice{option: option, label: option.Label(), disabled: slices.Contains(disabled, option.Value)}
		labels[i] = c.label
		if c.disabled {
			labels[i] += suffix
		} else if slices.Contains(checked, option.Value) {
			defaults = append(defaults, i)
		}
		choices[i] = c
	}

	path := render.FieldPath(field)
	cfg := SelectConfig{
		Message:      r.theme.PromptPrefix + displayLabel(field),
		Options:      labels,
		DefaultIndex: -1,
		Help:         displayHelp(field),
		PageSize:     r.pageSize,
	}

	if field.Multiple() {
		cfg.Defaults = defaults
		return r.promptCheckBoxes(ctx, cfg, choices, path, state)
	}
	if len(defaults) > 0 {
		cfg.DefaultIndex = defaults[0]
	}
	return r.promptRadio(ctx, cfg, choices, path, state)
}

func (r *Renderer) promptRadio(ctx context.Context, cfg SelectConfig, choices []choice, path string, state *State) error {
	if !slices.ContainsFunc(choices, func(c choice) bool { return !c.disabled }) {
		return fmt.Errorf("%w for %s", ErrNoSelectableOptions, path)
	}
	for attempt := 1; ; attempt++ {
		idx, err := r.driver.Select(ctx, cfg)
		if err != nil {
			return err
		}
		var problem string
		switch {
		case idx < 0 || idx >= len(choices):
			problem = fmt.Sprintf("Invalid %s selection", path)
		case choices[idx].disabled:
			problem = fmt.Sprintf("%s is not available", choices[idx].label)
		default:
			return state.SetValue(path, choices[idx].option.Value)
		}
		if err := r.reject(ctx, attempt, path, problem); err != nil {
			return err
		}
	}
}

func (r *Renderer) promptCheckBoxes(ctx context.Context, cfg SelectConfig, choices []choice, path string, state *State) error {
	for attempt := 1; ; attempt++ {
		indices, err := r.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return err
		}

		// answers follow option order, as a browser submits them
		indices = slices.Clone(indices)
		slices.Sort(indices)
		indices = slices.Compact(indices)

		selected := make([]any, 0, len(indices))
		var problem string
		for _, idx := range indices {
			if idx < 0 || idx >= len(choices) {
				problem = fmt.Sprintf("Invalid %s selection", path)
				break
			}
			if choices[idx].disabled {
				problem = fmt.Sprintf("%s is not available", choices[idx].label)
				break
			}
			selected = append(selected, choices[idx].option.Value)
		}
		if problem == "" {
			return state.SetValue(path, selected)
		}
		if err := r.reject(ctx, attempt, path, problem); err != nil {
			return err
		}
	}
}

func (r *Renderer) reject(ctx context.Context, attempt int, path, problem string) error {
	if err := r.driver.Info(ctx, r.theme.InfoPrefix+problem); err != nil {
		return err
	}
	if r.maxAttempts > 0 && attempt >= r.maxAttempts {
		return fmt.Errorf("%w for %s", ErrTooManyAttempts, path)
	}
	return nil
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func displayLabel(field model.CollectionField) string {
	if strings.TrimSpace(field.Label) != "" {
		return field.Label
	}
	return field.Method
}

func displayHelp(field model.CollectionField) string {
	if h := field.Metadata["cli.help"]; h != "" {
		return h
	}
	return field.Description
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	flatten("", values, flattened)
	return flattened.Encode()
}

func flatten(prefix string, value any, out url.Values) {
	switch v := value.(type) {
	case map[string]any:
		for _, key := range sortedKeys(v) {
			next := key
			if prefix != "" {
				next = prefix + "[" + key + "]"
			}
			flatten(next, v[key], out)
		}
	case []any:
		if len(v) == 0 {
			out.Add(prefix+"[]", "")
		}
		for _, val := range v {
			out.Add(prefix+"[]", fmt.Sprint(val))
		}
	default:
		out.Set(prefix, fmt.Sprint(v))
	}
}

func prettyPrint(values map[string]any) string {
	var b strings.Builder
	writePretty(&b, "", values)
	return b.String()
}

func writePretty(b *strings.Builder, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for _, key := range sortedKeys(v) {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			writePretty(b, next, v[key])
		}
	case []any:
		parts := make([]string, len(v))
		for i, val := range v {
			parts[i] = fmt.Sprint(val)
		}
		fmt.Fprintf(b, "%s=%s\n", prefix, strings.Join(parts, ", "))
	default:
		if prefix != "" {
			fmt.Fprintf(b, "%s=%v\n", prefix, v)
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
