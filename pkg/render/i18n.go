package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/model"
)

// Metadata keys that carry translation keys for a collection field.
const (
	LabelKeyHint       = "labelKey"
	DescriptionKeyHint = "descriptionKey"
	// OptionsKeyHint is a prefix; option text is looked up under
	// "<prefix>.<value>".
	OptionsKeyHint = "optionsKey"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key must
// be translated but no Translator was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string used when a key cannot be
// translated. args carries a map with the "default" fallback text.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// LocalizeField rewrites the label, description and option text of field in
// place using the *Key hints in its Metadata. Fields without hints are left
// untouched. Failures fall back to the existing text, then to the key.
func LocalizeField(field *model.CollectionField, opts RenderOptions) {
	if field == nil || len(field.Metadata) == 0 {
		return
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	tr := func(key, fallback string) string {
		return translate(opts.Locale, key, fallback, opts.Translator, onMissing)
	}

	if key := strings.TrimSpace(field.Metadata[LabelKeyHint]); key != "" {
		field.Label = tr(key, strings.TrimSpace(field.Label))
	}
	if key := strings.TrimSpace(field.Metadata[DescriptionKeyHint]); key != "" {
		field.Description = tr(key, strings.TrimSpace(field.Description))
	}

	prefix := strings.TrimSuffix(strings.TrimSpace(field.Metadata[OptionsKeyHint]), ".")
	if prefix == "" {
		return
	}
	options := make([]model.Option, len(field.Options))
	copy(options, field.Options)
	for i := range options {
		options[i].Text = tr(prefix+"."+options[i].Value, options[i].Label())
	}
	field.Options = options
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	args := []any{map[string]any{"default": fallback}}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, args, err)
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		if values, ok := arg.(map[string]any); ok {
			if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}
