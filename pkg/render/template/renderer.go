package template

import (
	"io"
)

// TemplateRenderer follows the github.com/goliatone/go-template engine
// contract so renderers can swap engines without code changes.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// FilterFunc adapts a plain function to the RegisterFilter signature.
type FilterFunc func(input any, param any) (any, error)

// RegisterFilters registers every filter on engine, stopping at the first
// failure.
func RegisterFilters(engine TemplateRenderer, filters map[string]FilterFunc) error {
	for name, fn := range filters {
		if err := engine.RegisterFilter(name, fn); err != nil {
			return err
		}
	}
	return nil
}
