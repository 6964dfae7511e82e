package collection

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Accessor extracts a value from a collection item.
type Accessor interface {
	Extract(item any) (any, error)
	String() string
}

type accessor struct {
	desc string
	fn   func(item any) (any, error)
}

func (a accessor) Extract(item any) (any, error) {
	value, err := a.fn(item)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %T: %v", ErrAccessor, a.desc, item, err)
	}
	return value, nil
}

func (a accessor) String() string {
	return a.desc
}

// Self returns the item unchanged.
func Self() Accessor {
	return accessor{desc: "self", fn: func(item any) (any, error) {
		return item, nil
	}}
}

// Func adapts a plain function.
func Func(fn func(item any) any) Accessor {
	return accessor{desc: "func", fn: func(item any) (any, error) {
		return fn(item), nil
	}}
}

// FuncE adapts a function that can fail.
func FuncE(fn func(item any) (any, error)) Accessor {
	return accessor{desc: "func", fn: fn}
}

// First reads the first element of a tuple.
func First() Accessor {
	return accessor{desc: "first", fn: func(item any) (any, error) {
		return tupleAt(item, 0, false)
	}}
}

// Last reads the last element of a tuple.
func Last() Accessor {
	return accessor{desc: "last", fn: func(item any) (any, error) {
		return tupleAt(item, -1, true)
	}}
}

// Index reads position i of a tuple.
func Index(i int) Accessor {
	return accessor{desc: fmt.Sprintf("index(%d)", i), fn: func(item any) (any, error) {
		return tupleAt(item, i, false)
	}}
}

// Method calls an exported zero-argument method. Methods may return a single
// value or a value and an error.
func Method(name string) Accessor {
	return accessor{desc: "method " + name, fn: func(item any) (any, error) {
		value, ok, err := callMethod(item, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("method %q not found", name)
		}
		return value, nil
	}}
}

// Field reads an exported struct field.
func Field(name string) Accessor {
	return accessor{desc: "field " + name, fn: func(item any) (any, error) {
		value, ok := readField(item, name)
		if !ok {
			return nil, fmt.Errorf("field %q not found", name)
		}
		return value, nil
	}}
}

// Key reads a string keyed map entry.
func Key(name string) Accessor {
	return accessor{desc: "key " + name, fn: func(item any) (any, error) {
		value, ok := readKey(item, name)
		if !ok {
			return nil, fmt.Errorf("key %q not found", name)
		}
		return value, nil
	}}
}

// Path resolves name as a method, then a struct field, then a map key. Snake
// case names are also tried in their exported Go form, so "category_ids"
// finds a CategoryIDs field.
func Path(name string) Accessor {
	return accessor{desc: "path " + name, fn: func(item any) (any, error) {
		value, ok, err := Lookup(item, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%q not found", name)
		}
		return value, nil
	}}
}

// Lookup is the non-failing form of Path. ok is false when nothing matched.
func Lookup(item any, name string) (any, bool, error) {
	if IsNil(item) {
		return nil, false, nil
	}
	for _, candidate := range nameCandidates(name) {
		value, ok, err := callMethod(item, candidate)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return value, true, nil
		}
		if value, ok := readField(item, candidate); ok {
			return value, true, nil
		}
	}
	if value, ok := readKey(item, name); ok {
		return value, true, nil
	}
	return nil, false, nil
}

func tupleAt(item any, index int, fromEnd bool) (any, error) {
	if pair, ok := item.(Pair); ok {
		switch {
		case fromEnd || index == 1:
			return pair.Last, nil
		case index == 0:
			return pair.First, nil
		default:
			return nil, fmt.Errorf("pair index %d out of range", index)
		}
	}

	rv := indirect(reflect.ValueOf(item))
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("item is not a tuple")
	}
	length := rv.Len()
	if fromEnd {
		index = length - 1
	}
	if index < 0 || index >= length {
		return nil, fmt.Errorf("tuple index %d out of range", index)
	}
	return rv.Index(index).Interface(), nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func callMethod(item any, name string) (any, bool, error) {
	if item == nil || name == "" {
		return nil, false, nil
	}
	rv := reflect.ValueOf(item)
	method := rv.MethodByName(name)
	if !method.IsValid() && rv.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		method = ptr.MethodByName(name)
	}
	if !method.IsValid() {
		return nil, false, nil
	}

	mt := method.Type()
	if mt.NumIn() != 0 {
		return nil, false, nil
	}
	switch mt.NumOut() {
	case 1:
		return method.Call(nil)[0].Interface(), true, nil
	case 2:
		if !mt.Out(1).Implements(errorType) {
			return nil, false, nil
		}
		out := method.Call(nil)
		if errValue := out[1].Interface(); errValue != nil {
			return nil, true, errValue.(error)
		}
		return out[0].Interface(), true, nil
	default:
		return nil, false, nil
	}
}

func readField(item any, name string) (any, bool) {
	rv := indirect(reflect.ValueOf(item))
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return nil, false
	}
	// Promoted through a nil embedded pointer: nothing to read.
	field, err := rv.FieldByIndexErr(sf.Index)
	if err != nil || !field.CanInterface() {
		return nil, false
	}
	return field.Interface(), true
}

func readKey(item any, name string) (any, bool) {
	rv := indirect(reflect.ValueOf(item))
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	value := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
	if !value.IsValid() {
		return nil, false
	}
	return value.Interface(), true
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

var initialisms = map[string]string{
	"id":   "ID",
	"ids":  "IDs",
	"url":  "URL",
	"uuid": "UUID",
	"html": "HTML",
	"api":  "API",
}

func nameCandidates(name string) []string {
	name = strings.TrimSuffix(strings.TrimSpace(name), "?")
	if name == "" {
		return nil
	}
	candidates := []string{name}
	if exported := exportedName(name); exported != name {
		candidates = append(candidates, exported)
	}
	return candidates
}

func exportedName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var builder strings.Builder
	for _, part := range parts {
		if upper, ok := initialisms[strings.ToLower(part)]; ok {
			builder.WriteString(upper)
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		builder.WriteString(string(runes))
	}
	return builder.String()
}
