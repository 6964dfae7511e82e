// Package template defines the template engine contract used by the HTML
// renderer. The gotemplate subpackage provides a pongo2 backed implementation.
package template
