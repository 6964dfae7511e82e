package collection

import (
	"reflect"

	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// Matcher decides whether an item is selected (checked or disabled). item is
// the raw collection entry and value the extracted value.
type Matcher interface {
	Match(item, value any) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(item, value any) bool

// Match implements Matcher.
func (fn MatcherFunc) Match(item, value any) bool {
	if fn == nil {
		return false
	}
	return fn(item, value)
}

type valueSet map[string]struct{}

func (s valueSet) Match(_ any, value any) bool {
	_, ok := s[tag.Stringify(value)]
	return ok
}

// Values matches items whose value equals one of vs by string form. Slices
// and arrays passed as arguments are flattened, so Values(3), Values(1, 3) and
// Values([]int{1, 3}) all work.
func Values(vs ...any) Matcher {
	set := make(valueSet, len(vs))
	for _, v := range vs {
		for _, flat := range Flatten(v) {
			set[tag.Stringify(flat)] = struct{}{}
		}
	}
	return set
}

// Predicate matches items for which fn returns true. fn receives the whole
// item, not the extracted value.
func Predicate(fn func(item any) bool) Matcher {
	return MatcherFunc(func(item, _ any) bool {
		return fn != nil && fn(item)
	})
}

// None never matches. Useful to force every item unchecked.
func None() Matcher {
	return MatcherFunc(func(any, any) bool { return false })
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func, channel
// or interface hidden behind a non-nil interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Flatten expands slices and arrays into their elements. Scalars become a
// single element slice; nil yields nothing. Strings and byte slices are
// treated as scalars.
func Flatten(v any) []any {
	if v == nil {
		return nil
	}
	switch value := v.(type) {
	case string, []byte, tag.HTML:
		return []any{value}
	case []any:
		return append([]any(nil), value...)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}
