package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelpers/pkg/model"
)

// MustLoadField loads a JSON or YAML fixture into a CollectionField.
func MustLoadField(t *testing.T, path string) model.CollectionField {
	t.Helper()

	field, err := LoadField(path)
	if err != nil {
		t.Fatalf("load field: %v", err)
	}
	return field
}

// LoadField reads a fixture into a CollectionField, returning an error for
// callers managing setup outside of *testing.T.
func LoadField(path string) (model.CollectionField, error) {
	if path == "" {
		return model.CollectionField{}, errors.New("testsupport: field path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.CollectionField{}, fmt.Errorf("testsupport: read field: %w", err)
	}
	var out model.CollectionField
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return model.CollectionField{}, fmt.Errorf("testsupport: decode field: %w", err)
	}
	return out, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
