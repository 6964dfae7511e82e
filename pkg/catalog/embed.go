package catalog

import (
	"embed"
	"io/fs"
)

//go:embed collections/*
var embeddedCollections embed.FS

// EmbeddedFS returns the bundled sample catalog.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCollections, "collections")
	if err != nil {
		panic(err)
	}
	return sub
}
