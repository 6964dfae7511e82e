// Package vanilla renders collection fields as plain HTML: a fieldset wrapper
// around radio buttons or check boxes produced by pkg/helpers, laid out by
// embedded pongo2 templates that themes can override.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/model"
	"github.com/goliatone/go-formhelpers/pkg/render"
	rendertemplate "github.com/goliatone/go-formhelpers/pkg/render/template"
	gotemplate "github.com/goliatone/go-formhelpers/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formhelpers/pkg/renderers/vanilla/layouts"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// Template names inside TemplatesFS.
const (
	WrapperTemplate = "templates/collection"

	// Metadata keys read from the field.
	MetadataLayout     = "layout"
	MetadataClass      = "class"
	MetadataTextMarkup = "textMarkup"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	overrides        []fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	goTemplate       bool
	layouts          *layouts.Registry
	inlineStylesheet bool
}

// WithTemplatesFS replaces the embedded template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateOverrides layers files over the template bundle. Lookups try
// overrides first, so themes can ship only the partials they change.
func WithTemplateOverrides(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.overrides = append(cfg.overrides, files)
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithGoTemplateEngine renders the bundled templates through
// github.com/goliatone/go-template instead of the built-in pongo2 engine.
// Ignored when WithTemplateRenderer supplies an engine.
func WithGoTemplateEngine() Option {
	return func(cfg *config) {
		cfg.goTemplate = true
	}
}

// WithLayouts swaps the item layout registry.
func WithLayouts(registry *layouts.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.layouts = registry
		}
	}
}

// WithInlineStylesheet emits the embedded stylesheet in a <style> tag ahead
// of the fieldset.
func WithInlineStylesheet(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStylesheet = enabled
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	layouts    *layouts.Registry
	stylesheet string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.layouts == nil {
		cfg.layouts = layouts.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOpts := make([]gotemplate.Option, 0, len(cfg.overrides)+2)
		for _, files := range cfg.overrides {
			engineOpts = append(engineOpts, gotemplate.WithFS(files))
		}
		engineOpts = append(engineOpts,
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		var err error
		if cfg.goTemplate {
			renderer, err = gotemplate.NewGoTemplate(engineOpts...)
		} else {
			renderer, err = gotemplate.New(engineOpts...)
		}
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
	}

	r := &Renderer{templates: renderer, layouts: cfg.layouts}
	if cfg.inlineStylesheet {
		r.stylesheet = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the fieldset markup for field. RenderOptions.Values
// replaces the field's checked values, Errors are listed under the items and
// Theme contributes classes and template overrides.
func (r *Renderer) Render(ctx context.Context, field model.CollectionField, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	field = field.WithDefaults()
	if err := field.Validate(); err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}
	render.LocalizeField(&field, opts)

	layout, ok := r.layouts.Descriptor(field.Metadata[MetadataLayout])
	if !ok {
		return nil, fmt.Errorf("vanilla renderer: unknown layout %q for %q", field.Metadata[MetadataLayout], field.Method)
	}

	classes := resolveClasses(opts.Theme, field.Metadata[MetadataClass])
	items, err := r.renderItems(field, layout, classes, opts)
	if err != nil {
		return nil, err
	}

	wrapper := render.ThemePartial(opts.Theme, render.PartialWrapper, WrapperTemplate)
	result, err := r.templates.RenderTemplate(wrapper, map[string]any{
		"field": map[string]any{
			"object":      field.Object,
			"method":      field.Method,
			"kind":        string(field.Kind),
			"label":       field.Label,
			"description": field.Description,
		},
		"id":                tag.DOMID(field.Namespace, tag.SanitizeObjectName(field.Object), tag.SanitizeMethodName(field.Method)),
		"items":             string(items),
		"errors":            render.NormalizeErrors(opts.Errors...),
		"wrapper_class":     classes.wrapper,
		"legend_class":      ClassLegend,
		"description_class": ClassDescription,
		"errors_class":      classes.errors,
		"style":             cssVarsStyle(opts.Theme),
		"stylesheet":        r.stylesheet,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render wrapper %q: %w", wrapper, err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderItems(field model.CollectionField, layout layouts.Descriptor, classes classSet, opts render.RenderOptions) (tag.HTML, error) {
	itemTemplate := render.ThemePartial(opts.Theme, layout.PartialKey, layout.Template)
	block := TemplateBlock(r.templates, itemTemplate)
	block.LabelAttrs = tag.Attributes{"class": classes.label}
	block.Data = map[string]any{
		"item_class":  classes.item,
		"label_class": classes.label,
		"input_class": classes.input,
	}

	fieldClass := tag.Stringify(field.HTML["class"])
	optionHTML := field.OptionHTML()
	block.InputAttrs = func(item *helpers.ItemBuilder) tag.Attributes {
		extra := optionHTML[tag.Stringify(item.Value())]
		attrs := make(tag.Attributes, len(extra)+1)
		for key, value := range extra {
			attrs[key] = value
		}
		attrs["class"] = joinClasses(classes.input, fieldClass, tag.Stringify(extra["class"]))
		return attrs
	}

	helperOpts := helpers.Options{
		Checked:       collection.Values(opts.CheckedValues(field.Checked)),
		Namespace:     field.Namespace,
		IncludeHidden: field.IncludeHidden,
		TextMarkup:    strings.EqualFold(strings.TrimSpace(field.Metadata[MetadataTextMarkup]), "true"),
	}
	if disabled := field.DisabledValues(); len(disabled) > 0 {
		helperOpts.Disabled = collection.Values(disabled)
	}

	value, text := collection.Field("Value"), collection.Method("Label")
	html := tag.Attributes(field.HTML)

	var (
		items tag.HTML
		err   error
	)
	if field.Multiple() {
		items, err = helpers.CollectionCheckBoxes(field.Object, field.Method, field.Options, value, text, helperOpts, html, block.CheckBoxes())
	} else {
		items, err = helpers.CollectionRadioButtons(field.Object, field.Method, field.Options, value, text, helperOpts, html, block.RadioButtons())
	}
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: %w", err)
	}
	if err := block.Err(); err != nil {
		return "", fmt.Errorf("vanilla renderer: %w", err)
	}
	return items, nil
}
