package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source for a path on disk.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }

func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source naming a file inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }

func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL returns a Source for an HTTP(S) document. It panics on an
// invalid URL; use SourceFromLocation for user input.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("openapi: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("openapi: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// SourceFromLocation picks a URL source for http(s) locations and a file
// source otherwise.
func SourceFromLocation(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("openapi: empty source location")
	}
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if _, err := url.ParseRequestURI(location); err != nil {
			return nil, fmt.Errorf("openapi: invalid URL %q: %w", location, err)
		}
		return urlSource{raw: location}, nil
	}
	return SourceFromFile(location), nil
}
