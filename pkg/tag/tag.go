package tag

import (
	"html"
	"sort"
	"strings"
)

// HTML is markup that has already been escaped or generated by this package.
// Values of this type are written verbatim; plain strings are escaped.
type HTML string

// String implements fmt.Stringer.
func (h HTML) String() string {
	return string(h)
}

// Attributes holds HTML options keyed by attribute name. Keys render in sorted
// order so output is stable across runs.
type Attributes map[string]any

// Escape HTML-escapes the supplied string.
func Escape(s string) HTML {
	return HTML(html.EscapeString(s))
}

// Text converts any value into escaped text content. HTML values pass through
// untouched.
func Text(v any) HTML {
	if markup, ok := v.(HTML); ok {
		return markup
	}
	return Escape(Stringify(v))
}

// Join concatenates fragments without a separator.
func Join(parts ...HTML) HTML {
	var builder strings.Builder
	for _, part := range parts {
		builder.WriteString(string(part))
	}
	return HTML(builder.String())
}

// Tag renders a void element such as <input ... />.
func Tag(name string, attrs Attributes) HTML {
	var builder strings.Builder
	builder.WriteByte('<')
	builder.WriteString(name)
	writeAttributes(&builder, attrs)
	builder.WriteString(" />")
	return HTML(builder.String())
}

// ContentTag renders an element wrapping content.
func ContentTag(name string, attrs Attributes, content HTML) HTML {
	var builder strings.Builder
	builder.Grow(len(content) + len(name)*2 + 32)
	builder.WriteByte('<')
	builder.WriteString(name)
	writeAttributes(&builder, attrs)
	builder.WriteByte('>')
	builder.WriteString(string(content))
	builder.WriteString("</")
	builder.WriteString(name)
	builder.WriteByte('>')
	return HTML(builder.String())
}

// Merge layers the extra attribute maps over base. Later maps win. The result
// is always a fresh map so callers can mutate it freely.
func Merge(base Attributes, extra ...Attributes) Attributes {
	size := len(base)
	for _, attrs := range extra {
		size += len(attrs)
	}
	out := make(Attributes, size)
	for key, value := range base {
		out[key] = value
	}
	for _, attrs := range extra {
		for key, value := range attrs {
			out[key] = value
		}
	}
	return out
}

// Render returns the attribute string (with a leading space) for attrs.
func (a Attributes) Render() string {
	var builder strings.Builder
	writeAttributes(&builder, a)
	return builder.String()
}

func writeAttributes(builder *strings.Builder, attrs Attributes) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]
		if nested, ok := value.(map[string]any); ok && isPrefixAttribute(key) {
			writePrefixed(builder, key, nested)
			continue
		}
		if nested, ok := value.(Attributes); ok && isPrefixAttribute(key) {
			writePrefixed(builder, key, map[string]any(nested))
			continue
		}
		writeAttribute(builder, key, value)
	}
}

func writePrefixed(builder *strings.Builder, prefix string, values map[string]any) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		name := prefix + "-" + strings.ReplaceAll(key, "_", "-")
		writeAttribute(builder, name, values[key])
	}
}

func writeAttribute(builder *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case bool:
		if !IsBooleanAttribute(key) {
			writePair(builder, key, Stringify(v))
			return
		}
		if !v {
			return
		}
		writePair(builder, key, key)
	case []string:
		writePair(builder, key, joinTokens(v))
	case []any:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			tokens = append(tokens, Stringify(item))
		}
		writePair(builder, key, joinTokens(tokens))
	default:
		writePair(builder, key, Stringify(v))
	}
}

func writePair(builder *strings.Builder, key, value string) {
	builder.WriteByte(' ')
	builder.WriteString(key)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteByte('"')
}

func joinTokens(tokens []string) string {
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			keep = append(keep, trimmed)
		}
	}
	return strings.Join(keep, " ")
}

var booleanAttributes = map[string]struct{}{
	"allowfullscreen": {}, "async": {}, "autofocus": {}, "autoplay": {},
	"checked": {}, "controls": {}, "default": {}, "defer": {}, "disabled": {},
	"formnovalidate": {}, "hidden": {}, "inert": {}, "ismap": {}, "itemscope": {},
	"loop": {}, "multiple": {}, "muted": {}, "novalidate": {}, "open": {},
	"readonly": {}, "required": {}, "reversed": {}, "selected": {},
}

// IsBooleanAttribute reports whether key is rendered as key="key" when true
// and dropped when false. Other attributes render booleans as text.
func IsBooleanAttribute(key string) bool {
	_, ok := booleanAttributes[strings.ToLower(key)]
	return ok
}

func isPrefixAttribute(key string) bool {
	return key == "data" || key == "aria"
}
