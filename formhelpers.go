// Package formhelpers renders collections as radio button and check box
// groups bound to a model attribute, and exposes the same collections through
// pluggable renderers (HTML and terminal).
//
// Quick start:
//
//	html, err := formhelpers.CollectionRadioButtons("user", "role", roles,
//		collection.Field("ID"), collection.Field("Name"),
//		formhelpers.Options{Object: user}, nil, nil)
package formhelpers

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/model"
	"github.com/goliatone/go-formhelpers/pkg/render"
	"github.com/goliatone/go-formhelpers/pkg/renderers/tui"
	"github.com/goliatone/go-formhelpers/pkg/renderers/vanilla"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// HTML is markup produced by the helpers.
type HTML = tag.HTML

// Attributes holds html options for generated inputs.
type Attributes = tag.Attributes

// Options configure a helper call.
type Options = helpers.Options

// FormBuilder scopes helper calls to an object name, like fields_for.
type FormBuilder = helpers.FormBuilder

// RenderOptions carries per-request values, errors, theme and locale.
type RenderOptions = render.RenderOptions

// CollectionField is the serialisable description renderers consume.
type CollectionField = model.CollectionField

// CollectionRadioButtons renders one radio button plus label per item.
func CollectionRadioButtons(objectName, method string, coll any, value, text collection.Accessor, opts Options, html Attributes, block helpers.RadioButtonBlock) (HTML, error) {
	return helpers.CollectionRadioButtons(objectName, method, coll, value, text, opts, html, block)
}

// CollectionCheckBoxes renders one check box plus label per item, followed by
// the empty hidden field unless opts.IncludeHidden is false.
func CollectionCheckBoxes(objectName, method string, coll any, value, text collection.Accessor, opts Options, html Attributes, block helpers.CheckBoxBlock) (HTML, error) {
	return helpers.CollectionCheckBoxes(objectName, method, coll, value, text, opts, html, block)
}

// FieldsFor returns a builder bound to objectName and object.
func FieldsFor(objectName string, object any, options ...helpers.FormOption) *FormBuilder {
	return helpers.FieldsFor(objectName, object, options...)
}

// RegistryOption configures the renderers registered by NewRegistry.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	vanilla []vanilla.Option
	tui     []tui.Option
}

// WithVanillaOptions forwards options to the HTML renderer.
func WithVanillaOptions(options ...vanilla.Option) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.vanilla = append(cfg.vanilla, options...)
	}
}

// WithTUIOptions forwards options to the terminal renderer.
func WithTUIOptions(options ...tui.Option) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.tui = append(cfg.tui, options...)
	}
}

// NewRegistry returns a renderer registry holding the vanilla HTML renderer
// (the default) and the tui renderer.
func NewRegistry(options ...RegistryOption) (*render.Registry, error) {
	cfg := registryConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	htmlRenderer, err := vanilla.New(cfg.vanilla...)
	if err != nil {
		return nil, fmt.Errorf("formhelpers: vanilla renderer: %w", err)
	}
	terminalRenderer, err := tui.New(cfg.tui...)
	if err != nil {
		return nil, fmt.Errorf("formhelpers: tui renderer: %w", err)
	}

	registry := render.NewRegistry()
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(terminalRenderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// Render resolves name in registry (blank picks the default renderer) and
// renders field with it.
func Render(ctx context.Context, registry *render.Registry, name string, field CollectionField, opts RenderOptions) ([]byte, error) {
	if registry == nil {
		return nil, fmt.Errorf("formhelpers: registry is nil")
	}
	renderer, err := registry.Resolve(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, field, opts)
}

// EmbeddedTemplates exposes the vanilla renderer templates so callers can
// copy or extend them.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the vanilla stylesheet.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
