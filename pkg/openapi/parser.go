package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Parser extracts operations from a document.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions toggles parser behaviour.
type ParserOptions struct {
	// ResolveReferences allows external $refs and validates the document.
	ResolveReferences bool
	// AllowPartialDocuments accepts documents without paths.
	AllowPartialDocuments bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles external reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithPartialDocuments toggles support for documents without paths.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// NewParser returns the kin-openapi backed parser.
func NewParser(options ...ParserOption) Parser {
	cfg := ParserOptions{ResolveReferences: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &kinParser{options: cfg}
}

type kinParser struct {
	options ParserOptions
}

var requestMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

func (p *kinParser) Operations(ctx context.Context, doc Document) (map[string]Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load %s: %w", doc.Location(), err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("openapi parser: document does not contain any paths")
		}
	}
	if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operations := make(map[string]Operation)
	if spec.Paths == nil {
		return operations, nil
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		collect(operations, "GET", path, item.Get)
		collect(operations, "PUT", path, item.Put)
		collect(operations, "POST", path, item.Post)
		collect(operations, "DELETE", path, item.Delete)
		collect(operations, "PATCH", path, item.Patch)
	}
	return operations, nil
}

func collect(target map[string]Operation, method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}
	id := strings.TrimSpace(operation.OperationID)
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	target[id] = Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		Summary:     operation.Summary,
		RequestBody: requestSchema(operation.RequestBody),
	}
}

func requestSchema(body *openapi3.RequestBodyRef) Schema {
	if body == nil {
		return Schema{}
	}
	if body.Value == nil {
		return Schema{Ref: body.Ref}
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return convertSchema(mt.Schema, 0)
		}
	}
	for _, mt := range content {
		if mt != nil {
			return convertSchema(mt.Schema, 0)
		}
	}
	return Schema{}
}

// maxSchemaDepth stops recursive component references.
const maxSchemaDepth = 16

func convertSchema(ref *openapi3.SchemaRef, depth int) Schema {
	if ref == nil {
		return Schema{}
	}
	if ref.Value == nil || depth > maxSchemaDepth {
		return Schema{Ref: ref.Ref}
	}
	src := ref.Value
	out := Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
	}
	if len(src.Enum) > 0 {
		out.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		out.Properties = make(map[string]Schema, len(src.Properties))
		for name, property := range src.Properties {
			out.Properties[name] = convertSchema(property, depth+1)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items, depth+1)
		out.Items = &items
	}
	out.Extensions = enumExtensions(src.Extensions)
	for _, part := range src.AllOf {
		if part == nil || part.Value == nil {
			continue
		}
		merged := convertSchema(part, depth+1)
		for name, property := range merged.Properties {
			if out.Properties == nil {
				out.Properties = make(map[string]Schema)
			}
			if _, exists := out.Properties[name]; !exists {
				out.Properties[name] = property
			}
		}
		for key, value := range merged.Extensions {
			if out.Extensions == nil {
				out.Extensions = make(map[string]any)
			}
			out.Extensions[key] = value
		}
	}
	return out
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func enumExtensions(raw map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range raw {
		if strings.HasPrefix(key, "x-enum-") || key == ExtensionWidget {
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
