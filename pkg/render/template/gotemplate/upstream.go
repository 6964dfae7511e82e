package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formhelpers/pkg/render/template"
)

var _ template.TemplateRenderer = (*gotemplatepkg.Engine)(nil)

// NewGoTemplate builds a github.com/goliatone/go-template engine from the
// options New accepts, so callers can switch engines without touching their
// templates. Several WithFS sources are layered into one filesystem with the
// first match winning. WithSetName has no effect here.
func NewGoTemplate(options ...Option) (*gotemplatepkg.Engine, error) {
	cfg, err := newConfig(options)
	if err != nil {
		return nil, err
	}

	opts := []gotemplatepkg.Option{gotemplatepkg.WithExtension(cfg.extension)}
	switch len(cfg.templates) {
	case 0:
	case 1:
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates[0]))
	default:
		opts = append(opts, gotemplatepkg.WithFS(layeredFS(cfg.templates)))
	}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if len(cfg.globalData) > 0 {
		opts = append(opts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: go-template engine: %w", err)
	}
	registerDefaultFilters()

	// Funcs go in after loading: go-template copies globals into its set,
	// which only exists once NewRenderer has run.
	globals := make(map[string]any, len(cfg.funcs))
	for name, fn := range cfg.funcs {
		if name == "" || fn == nil {
			continue
		}
		if filter, ok := fn.(pongo2.FilterFunction); ok {
			if err := setFilter(name, filter); err != nil {
				return nil, fmt.Errorf("gotemplate: register template func %q: %w", name, err)
			}
			continue
		}
		if !isCallable(fn) {
			return nil, fmt.Errorf("gotemplate: register template func %q: %T is not a function", name, fn)
		}
		globals[name] = fn
	}
	if len(globals) > 0 {
		if err := engine.GlobalContext(globals); err != nil {
			return nil, fmt.Errorf("gotemplate: apply template funcs: %w", err)
		}
	}
	return engine, nil
}

// layeredFS opens name from the first filesystem that has it.
type layeredFS []fs.FS

func (l layeredFS) Open(name string) (fs.File, error) {
	for _, files := range l {
		file, err := files.Open(name)
		if err == nil {
			return file, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
