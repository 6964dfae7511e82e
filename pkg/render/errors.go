package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/model"
)

// ErrorMapping splits a server error payload into per-field messages, keyed by
// FieldPath, and messages that could not be attached to any field.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// For returns the messages mapped to field.
func (m ErrorMapping) For(field model.CollectionField) []string {
	return m.Fields[FieldPath(field)]
}

// FieldPath is the dotted key used to address a field in error payloads:
// "object.method", or just "method" when the field has no object.
func FieldPath(field model.CollectionField) string {
	return joinPath(strings.Join(parsePathSegments(field.Object), "."), strings.TrimSpace(field.Method))
}

// NormalizeErrors trims messages and drops blanks and duplicates, keeping
// first-seen order.
func NormalizeErrors(messages ...string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// MapErrorPayload attaches payload messages to fields. Keys may use form
// parameter syntax (user[category_ids][]), JSON pointers (/body/user/role) or
// dotted paths; wrapper segments such as body or data and numeric indexes are
// ignored when looking for a match. Unmatched keys become form level errors.
func MapErrorPayload(fields []model.CollectionField, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if path := FieldPath(field); path != "" {
			known[path] = struct{}{}
		}
	}

	for raw, messages := range payload {
		messages = NormalizeErrors(messages...)
		if len(messages) == 0 {
			continue
		}
		path := matchErrorPath(raw, known)
		if path == "" {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[path] = NormalizeErrors(append(mapping.Fields[path], messages...)...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = NormalizeErrors(mapping.Form...)
	return mapping
}

func matchErrorPath(raw string, known map[string]struct{}) string {
	if isFormLevelKey(raw) {
		return ""
	}
	segments := parsePathSegments(raw)
	if len(segments) == 0 {
		return ""
	}

	best := ""
	for _, candidate := range [][]string{
		segments,
		dropWrappers(segments),
		dropIndexes(segments),
		dropIndexes(dropWrappers(segments)),
	} {
		for end := len(candidate); end > 0; end-- {
			path := strings.Join(candidate[:end], ".")
			if _, ok := known[path]; ok {
				if strings.Count(path, ".") > strings.Count(best, ".") || best == "" {
					best = path
				}
				break
			}
		}
	}
	return best
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimLeft(clean, "#$/.")
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)

	parts := strings.FieldsFunc(clean, func(r rune) bool { return r == '.' || r == '/' })
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		out = append(out, part)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func dropWrappers(segments []string) []string {
	for len(segments) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(segments[0])]; !ok {
			break
		}
		segments = segments[1:]
	}
	return segments
}

func dropIndexes(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func joinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	}
	return parent + "." + child
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	}
	return false
}
