package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/model"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// Vendor extensions read from enum properties.
const (
	// ExtensionLabels holds option text, either a list aligned with enum or a
	// map keyed by value.
	ExtensionLabels = "x-enum-labels"
	// ExtensionDisabled lists values rendered disabled.
	ExtensionDisabled = "x-enum-disabled"
	// ExtensionWidget forces radio_buttons or check_boxes.
	ExtensionWidget = "x-formhelpers-widget"
)

var (
	ErrOperationNotFound = errors.New("openapi: operation not found")
	ErrPropertyNotFound  = errors.New("openapi: property not found")
	ErrNotEnum           = errors.New("openapi: property is not an enum")
)

// EnumField builds a collection field from an enum property of the request
// body of operationID. property is a dotted path; leading segments become the
// field object ("post.author.tone" binds post[author][tone]).
func EnumField(ctx context.Context, doc Document, operationID, property string) (model.CollectionField, error) {
	return EnumFieldWith(ctx, NewParser(), doc, operationID, property)
}

// EnumFieldWith is EnumField with an explicit parser.
func EnumFieldWith(ctx context.Context, parser Parser, doc Document, operationID, property string) (model.CollectionField, error) {
	if parser == nil {
		return model.CollectionField{}, errors.New("openapi: parser is nil")
	}
	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return model.CollectionField{}, err
	}
	op, ok := operations[strings.TrimSpace(operationID)]
	if !ok {
		return model.CollectionField{}, fmt.Errorf("%w: %q in %s", ErrOperationNotFound, operationID, doc.Location())
	}
	return FieldFromOperation(op, property)
}

// FieldFromOperation maps the enum property at path in op's request body.
// Scalar enums become radio buttons, arrays of enums check boxes.
func FieldFromOperation(op Operation, path string) (model.CollectionField, error) {
	path = strings.Trim(strings.TrimSpace(path), ".")
	schema, ok := op.RequestBody.Property(path)
	if !ok {
		return model.CollectionField{}, fmt.Errorf("%w: %q in operation %q", ErrPropertyNotFound, path, op.ID)
	}

	kind := model.KindRadioButtons
	values := schema.Enum
	extensions := schema.Extensions
	if schema.Type == "array" && schema.Items != nil {
		kind = model.KindCheckBoxes
		values = schema.Items.Enum
		extensions = mergeExtensions(schema.Items.Extensions, schema.Extensions)
	}
	if len(values) == 0 {
		return model.CollectionField{}, fmt.Errorf("%w: %q in operation %q", ErrNotEnum, path, op.ID)
	}
	if widget, ok := extensions[ExtensionWidget].(string); ok {
		switch model.Kind(widget) {
		case model.KindRadioButtons, model.KindCheckBoxes:
			kind = model.Kind(widget)
		default:
			return model.CollectionField{}, fmt.Errorf("openapi: %q has unknown %s %q", path, ExtensionWidget, widget)
		}
	}

	object, method := splitPath(path)
	field := model.CollectionField{
		Object:      object,
		Method:      method,
		Kind:        kind,
		Label:       schema.Title,
		Description: schema.Description,
		Options:     make([]model.Option, 0, len(values)),
		Checked:     defaultValues(schema.Default),
	}

	labels := enumLabels(extensions[ExtensionLabels], values)
	disabled := make(map[string]struct{})
	for _, value := range asList(extensions[ExtensionDisabled]) {
		disabled[tag.Stringify(value)] = struct{}{}
	}
	for _, raw := range values {
		value := tag.Stringify(raw)
		option := model.Option{Value: value, Text: labels[value]}
		if _, ok := disabled[value]; ok {
			option.Disabled = true
		}
		field.Options = append(field.Options, option)
	}

	if err := field.Validate(); err != nil {
		return model.CollectionField{}, fmt.Errorf("openapi: %q in operation %q: %w", path, op.ID, err)
	}
	return field, nil
}

func splitPath(path string) (object, method string) {
	segments := strings.Split(path, ".")
	method = segments[len(segments)-1]
	if len(segments) == 1 {
		return "", method
	}
	var b strings.Builder
	b.WriteString(segments[0])
	for _, segment := range segments[1 : len(segments)-1] {
		b.WriteString("[" + segment + "]")
	}
	return b.String(), method
}

func enumLabels(raw any, values []any) map[string]string {
	out := make(map[string]string, len(values))
	switch labels := raw.(type) {
	case []any:
		for i, label := range labels {
			if i < len(values) {
				out[tag.Stringify(values[i])] = tag.Stringify(label)
			}
		}
	case map[string]any:
		for key, label := range labels {
			out[key] = tag.Stringify(label)
		}
	}
	return out
}

func defaultValues(raw any) []string {
	list := asList(raw)
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, value := range list {
		out = append(out, tag.Stringify(value))
	}
	return out
}

func asList(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

func mergeExtensions(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
