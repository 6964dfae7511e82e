package openapi

import (
	"errors"
	"strings"
)

// Source identifies where an OpenAPI document originated so loaders can read
// files, fs.FS entries or URLs through one contract.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps the raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation is the subset of an OpenAPI operation needed to find enum
// properties in its request body.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	RequestBody Schema
}

// Schema is a trimmed view over an OpenAPI schema.
type Schema struct {
	Ref         string
	Type        string
	Title       string
	Description string
	Default     any
	Enum        []any
	Items       *Schema
	Properties  map[string]Schema
	Extensions  map[string]any
}

// Property walks dotted property names ("user.role") through nested object
// schemas.
func (s Schema) Property(path string) (Schema, bool) {
	current := s
	for _, segment := range strings.Split(path, ".") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return Schema{}, false
		}
		next, ok := current.Properties[segment]
		if !ok {
			return Schema{}, false
		}
		current = next
	}
	return current, true
}

// Clone creates a deep copy of the schema tree.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Enum) > 0 {
		cloned.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for k, v := range s.Properties {
			cloned.Properties[k] = v.Clone()
		}
	}
	if s.Items != nil {
		items := s.Items.Clone()
		cloned.Items = &items
	}
	if len(s.Extensions) > 0 {
		cloned.Extensions = make(map[string]any, len(s.Extensions))
		for k, v := range s.Extensions {
			cloned.Extensions[k] = v
		}
	}
	return cloned
}
