// Package model defines the serialisable description of a collection field:
// the object and attribute it binds to, whether it renders as radio buttons or
// check boxes, its options and which of them start checked or disabled.
// Catalog files, OpenAPI enums and the CLI all produce CollectionField values
// that renderers turn into markup or prompts. Metadata carries renderer
// directives such as `layout` (default, inline, wrapped) and `widget`.
package model
