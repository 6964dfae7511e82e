package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelpers/pkg/model"
	"github.com/goliatone/go-formhelpers/pkg/widgets"
)

// Entry is a catalog field together with the file that declared it.
type Entry struct {
	Name   string
	Source string
	Field  model.CollectionField
}

// Store indexes catalog entries by name.
type Store struct {
	entries map[string]Entry
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file. When fsys is
// nil or holds no catalog files, the returned store is empty. Entries without
// a kind are resolved through the built-in widgets registry.
func LoadFS(fsys fs.FS) (*Store, error) {
	return LoadFSWithWidgets(fsys, widgets.NewRegistry())
}

// LoadFSWithWidgets is LoadFS with a caller supplied kind registry. A nil
// registry leaves kinds as declared.
func LoadFSWithWidgets(fsys fs.FS, kinds *widgets.Registry) (*Store, error) {
	store := &Store{entries: make(map[string]Entry)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(file string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(file) {
			return nil
		}

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", file, err)
		}
		doc, err := parseDocument(data, file)
		if err != nil {
			return err
		}

		for rawName, field := range doc.Collections {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("catalog: file %s defines an empty collection name", file)
			}
			if existing, exists := store.entries[name]; exists {
				return fmt.Errorf("catalog: duplicate collection %q (file %s, first defined in %s)", name, file, existing.Source)
			}
			if strings.TrimSpace(field.Object) == "" {
				field.Object = doc.Defaults.Object
			}
			if field.Namespace == "" {
				field.Namespace = doc.Defaults.Namespace
			}
			field = field.WithDefaults()
			if field.Kind == "" && kinds != nil {
				if kind, ok := kinds.Resolve(field); ok {
					field.Kind = kind
				}
			}
			if err := field.Validate(); err != nil {
				return fmt.Errorf("catalog: collection %q (file %s): %w", name, file, err)
			}
			store.entries[name] = Entry{Name: name, Source: file, Field: cloneField(field)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Field returns a copy of the named collection field.
func (s *Store) Field(name string) (model.CollectionField, bool) {
	if s == nil {
		return model.CollectionField{}, false
	}
	entry, ok := s.entries[strings.TrimSpace(name)]
	if !ok {
		return model.CollectionField{}, false
	}
	return cloneField(entry.Field), true
}

// Entry returns the named entry including its source file.
func (s *Store) Entry(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[strings.TrimSpace(name)]
	if ok {
		entry.Field = cloneField(entry.Field)
	}
	return entry, ok
}

// Names lists the collection names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Empty reports whether the store holds any collections.
func (s *Store) Empty() bool {
	return s == nil || len(s.entries) == 0
}

type documentFile struct {
	Defaults struct {
		Object    string `json:"object" yaml:"object"`
		Namespace string `json:"namespace" yaml:"namespace"`
	} `json:"defaults" yaml:"defaults"`
	Collections map[string]model.CollectionField `json:"collections" yaml:"collections"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if strings.EqualFold(path.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func cloneField(field model.CollectionField) model.CollectionField {
	out := field
	out.Options = make([]model.Option, len(field.Options))
	for i, option := range field.Options {
		out.Options[i] = option
		out.Options[i].HTML = cloneAnyMap(option.HTML)
	}
	out.Checked = slices.Clone(field.Checked)
	out.Disabled = slices.Clone(field.Disabled)
	out.HTML = cloneAnyMap(field.HTML)
	if field.IncludeHidden != nil {
		include := *field.IncludeHidden
		out.IncludeHidden = &include
	}
	if len(field.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(field.Metadata))
		for k, v := range field.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func isCatalogFile(file string) bool {
	switch strings.ToLower(path.Ext(file)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
