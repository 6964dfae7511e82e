package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the field definition.
type RenderOptions struct {
	// Values overrides the field's Checked list, typically with the values a
	// user just submitted. A non-nil empty slice renders everything unchecked.
	Values []string
	// Errors surfaces server-side validation feedback for the field. Messages
	// are trimmed and de-duplicated before rendering.
	Errors []string
	// Theme carries the resolved go-theme configuration (tokens, partials,
	// asset resolver). See ResolveTheme.
	Theme *theme.RendererConfig
	// Locale and Translator localise labels through Metadata keys; see
	// LocalizeField.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// CheckedValues returns Values when set, otherwise the field defaults.
func (o RenderOptions) CheckedValues(defaults []string) []string {
	if o.Values != nil {
		return o.Values
	}
	return defaults
}
