// Package collection normalises arbitrary Go collections into items and
// extracts the value, text and selection state used by collection helpers.
package collection

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/goliatone/go-formhelpers/pkg/tag"
)

var (
	// ErrUnsupportedCollection is returned when a value cannot be iterated.
	ErrUnsupportedCollection = errors.New("collection: unsupported collection type")
	// ErrAccessor wraps failures extracting a value or text from an item.
	ErrAccessor = errors.New("collection: accessor failed")
)

// Pair is a two element tuple. Map entries are exposed as pairs of key and
// value.
type Pair struct {
	First any
	Last  any
}

// Source lets custom containers feed helpers without exposing a slice.
type Source interface {
	Items() []any
}

// Items flattens collection into a slice of items. Slices and arrays keep
// their order; maps are ordered by stringified key.
func Items(collection any) ([]any, error) {
	switch v := collection.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return append([]any(nil), v...), nil
	case Source:
		return append([]any(nil), v.Items()...), nil
	}

	rv := reflect.ValueOf(collection)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []any{}, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, rv.Index(i).Interface())
		}
		return out, nil
	case reflect.Map:
		keys := rv.MapKeys()
		sort.SliceStable(keys, func(i, j int) bool {
			return tag.Stringify(keys[i].Interface()) < tag.Stringify(keys[j].Interface())
		})
		out := make([]any, 0, len(keys))
		for _, key := range keys {
			out = append(out, Pair{First: key.Interface(), Last: rv.MapIndex(key).Interface()})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCollection, collection)
	}
}

// Unit is the per-item result of extraction, carrying everything needed to
// render one input and its label.
type Unit struct {
	Object   any
	Value    any
	Text     string
	Checked  bool
	Disabled bool
}

// Extract resolves the value and text for item.
func Extract(item any, value, text Accessor) (Unit, error) {
	if value == nil {
		value = Self()
	}
	if text == nil {
		text = Self()
	}
	resolvedValue, err := value.Extract(item)
	if err != nil {
		return Unit{}, err
	}
	resolvedText, err := text.Extract(item)
	if err != nil {
		return Unit{}, err
	}
	return Unit{
		Object: item,
		Value:  resolvedValue,
		Text:   tag.Stringify(resolvedText),
	}, nil
}
