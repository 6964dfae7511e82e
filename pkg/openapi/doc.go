// Package openapi turns enum properties of OpenAPI request bodies into
// collection fields. Loader contracts live here; the file, fs.FS and HTTP
// implementations sit under internal/openapi and are constructed through the
// top-level formhelpers package. kin-openapi types never appear in the
// exported API.
package openapi
