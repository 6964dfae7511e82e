package formhelpers

import (
	internalLoader "github.com/goliatone/go-formhelpers/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-formhelpers/pkg/openapi"
)

// NewLoader constructs an OpenAPI loader for files, an fs.FS and (when
// enabled) HTTP, keeping the concrete type internal.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}
