package helpers

import (
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// fieldRef derives names and ids for one object attribute.
type fieldRef struct {
	objectName string
	method     string
	index      any
	namespace  string
}

func newFieldRef(objectName, method string, opts Options) fieldRef {
	return fieldRef{
		objectName: objectName,
		method:     tag.SanitizeMethodName(method),
		index:      opts.Index,
		namespace:  opts.Namespace,
	}
}

func (f fieldRef) hasIndex() bool {
	return f.index != nil && tag.Stringify(f.index) != ""
}

// name returns the submitted parameter name. Multiple values get a trailing
// "[]".
func (f fieldRef) name(multiple bool) string {
	var name string
	switch {
	case f.objectName == "":
		name = f.method
	case f.hasIndex():
		name = f.objectName + "[" + tag.Stringify(f.index) + "][" + f.method + "]"
	default:
		name = f.objectName + "[" + f.method + "]"
	}
	if multiple {
		name += "[]"
	}
	return name
}

// id returns the DOM id for the input bound to value.
func (f fieldRef) id(value any) string {
	var index string
	if f.hasIndex() {
		index = tag.Stringify(f.index)
	}
	return tag.DOMID(
		f.namespace,
		tag.SanitizeObjectName(f.objectName),
		index,
		f.method,
		tag.SanitizeValue(value),
	)
}
