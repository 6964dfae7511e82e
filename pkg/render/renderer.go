package render

import (
	"context"

	"github.com/goliatone/go-formhelpers/pkg/model"
)

// Renderer converts a CollectionField into a byte representation (HTML,
// prompt answers, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, field model.CollectionField, options RenderOptions) ([]byte, error)
}
