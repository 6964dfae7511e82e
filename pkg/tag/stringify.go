package tag

import (
	"fmt"
	"reflect"
	"strconv"
)

// Stringify renders a value the way it appears inside markup: booleans as
// "true"/"false", numbers in their shortest form, nil (typed nil pointers
// included) as the empty string.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}
	switch value := v.(type) {
	case string:
		return value
	case HTML:
		return string(value)
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int8:
		return strconv.FormatInt(int64(value), 10)
	case int16:
		return strconv.FormatInt(int64(value), 10)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint:
		return strconv.FormatUint(uint64(value), 10)
	case uint8:
		return strconv.FormatUint(uint64(value), 10)
	case uint16:
		return strconv.FormatUint(uint64(value), 10)
	case uint32:
		return strconv.FormatUint(uint64(value), 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case fmt.Stringer:
		return value.String()
	case error:
		return value.Error()
	}

	rv := reflect.ValueOf(v)
	dereferenced := false
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
		dereferenced = true
	}
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	if dereferenced && rv.CanInterface() {
		return Stringify(rv.Interface())
	}
	return fmt.Sprint(v)
}
