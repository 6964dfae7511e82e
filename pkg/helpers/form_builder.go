package helpers

import (
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// FormOption configures a FormBuilder.
type FormOption func(*FormBuilder)

// WithIndex inserts index into every generated name and id.
func WithIndex(index any) FormOption {
	return func(f *FormBuilder) {
		f.index = index
	}
}

// WithNamespace prefixes every generated id.
func WithNamespace(namespace string) FormOption {
	return func(f *FormBuilder) {
		f.namespace = strings.TrimSpace(namespace)
	}
}

// FormBuilder binds collection helpers to an object name and an optional model
// so callers only pass the attribute.
type FormBuilder struct {
	objectName string
	object     any
	index      any
	namespace  string
}

// FieldsFor returns a builder scoped to objectName. object may be nil.
func FieldsFor(objectName string, object any, options ...FormOption) *FormBuilder {
	builder := &FormBuilder{
		objectName: strings.TrimSpace(objectName),
		object:     object,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(builder)
	}
	return builder
}

// ObjectName returns the name used for parameter keys.
func (f *FormBuilder) ObjectName() string {
	return f.objectName
}

// Object returns the bound model.
func (f *FormBuilder) Object() any {
	return f.object
}

// FieldsFor scopes a nested builder under this one ("post[author]", or
// "post[1][author]" when this builder has an index). The namespace carries
// over.
func (f *FormBuilder) FieldsFor(child string, object any, options ...FormOption) *FormBuilder {
	name := newFieldRef(f.objectName, strings.TrimSpace(child), Options{Index: f.index}).name(false)
	nested := []FormOption{WithNamespace(f.namespace)}
	return FieldsFor(name, object, append(nested, options...)...)
}

// CollectionRadioButtons renders radio buttons for method. See the package
// level function for argument semantics.
func (f *FormBuilder) CollectionRadioButtons(method string, coll any, value, text collection.Accessor, opts Options, html tag.Attributes, block RadioButtonBlock) (tag.HTML, error) {
	return CollectionRadioButtons(f.objectName, method, coll, value, text, f.bind(opts), html, block)
}

// CollectionCheckBoxes renders check boxes for method. See the package level
// function for argument semantics.
func (f *FormBuilder) CollectionCheckBoxes(method string, coll any, value, text collection.Accessor, opts Options, html tag.Attributes, block CheckBoxBlock) (tag.HTML, error) {
	return CollectionCheckBoxes(f.objectName, method, coll, value, text, f.bind(opts), html, block)
}

func (f *FormBuilder) bind(opts Options) Options {
	if opts.Object == nil {
		opts.Object = f.object
	}
	if opts.Index == nil {
		opts.Index = f.index
	}
	if opts.Namespace == "" {
		opts.Namespace = f.namespace
	}
	return opts
}
