package gotemplate_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formhelpers/pkg/render/template"
	"github.com/goliatone/go-formhelpers/pkg/render/template/gotemplate"
)

func TestNewGoTemplate_RendersSharedTemplates(t *testing.T) {
	engine, err := gotemplate.NewGoTemplate(
		gotemplate.WithFS(templatesFS()),
		gotemplate.WithGlobalData(map[string]any{"settings": map[string]any{"env": "dev"}}),
		gotemplate.WithTemplateFuncs(map[string]any{
			"double": func(s string) string { return s + s },
		}),
	)
	if err != nil {
		t.Fatalf("new go-template engine: %v", err)
	}
	var renderer template.TemplateRenderer = engine

	cases := map[string]struct {
		name string
		data map[string]any
		want string
	}{
		"file":           {"hello", map[string]any{"name": "Ada"}, "Hello Ada!"},
		"explicit ext":   {"hello.tmpl", map[string]any{"name": "Bo"}, "Hello Bo!"},
		"global data":    {"use-global", nil, "env=dev"},
		"default filter": {"items/label", map[string]any{"base": " a  b ", "extra": "c", "text": "  hi  "}, `<label class="a b c">hi</label>`},
		"autoescape":     {"escape", map[string]any{"html": "<b>x</b>"}, "&lt;b&gt;x&lt;/b&gt;|<b>x</b>"},
		"inline source":  {`{{ double("ab") }}`, nil, "abab"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := renderer.Render(tc.name, tc.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewGoTemplate_LayersFilesystems(t *testing.T) {
	overrides := fstest.MapFS{"hello.tmpl": {Data: []byte(`Hi {{ name }}`)}}
	engine, err := gotemplate.NewGoTemplate(gotemplate.WithFS(overrides), gotemplate.WithFS(templatesFS()))
	if err != nil {
		t.Fatalf("new go-template engine: %v", err)
	}
	if got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}); err != nil || got != "Hi Ada" {
		t.Fatalf("override render = %q, %v", got, err)
	}
	if got, err := engine.RenderTemplate("use-global", map[string]any{"settings": map[string]any{"env": "ci"}}); err != nil || got != "env=ci" {
		t.Fatalf("fallback render = %q, %v", got, err)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestNewGoTemplate_Errors(t *testing.T) {
	if _, err := gotemplate.NewGoTemplate(); err == nil {
		t.Fatalf("expected error without loaders")
	}
	if _, err := gotemplate.NewGoTemplate(gotemplate.WithFS(templatesFS()), gotemplate.WithTemplateFuncs(map[string]any{"x": 1})); err == nil {
		t.Fatalf("expected error for non-function template func")
	}
}
