package vanilla

import (
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formhelpers/pkg/render"
)

// Semantic classes always present on the rendered markup. Theme tokens add
// to them, they never replace them.
const (
	ClassWrapper     = "fh-collection"
	ClassLegend      = "fh-collection-legend"
	ClassDescription = "fh-collection-description"
	ClassItem        = "fh-collection-item"
	ClassInput       = "fh-collection-input"
	ClassLabel       = "fh-collection-label"
	ClassErrors      = "fh-collection-errors"
)

type classSet struct {
	wrapper string
	item    string
	input   string
	label   string
	errors  string
}

func resolveClasses(cfg *theme.RendererConfig, extraWrapper string) classSet {
	return classSet{
		wrapper: joinClasses(ClassWrapper, render.ThemeToken(cfg, render.TokenWrapperClass), extraWrapper),
		item:    joinClasses(ClassItem, render.ThemeToken(cfg, render.TokenItemClass)),
		input:   joinClasses(ClassInput, render.ThemeToken(cfg, render.TokenInputClass)),
		label:   joinClasses(ClassLabel, render.ThemeToken(cfg, render.TokenLabelClass)),
		errors:  joinClasses(ClassErrors, render.ThemeToken(cfg, render.TokenErrorClass)),
	}
}

// joinClasses merges class lists, dropping blanks and repeated tokens.
func joinClasses(lists ...string) string {
	var out []string
	for _, list := range lists {
		for _, token := range strings.Fields(list) {
			if !slices.Contains(out, token) {
				out = append(out, token)
			}
		}
	}
	return strings.Join(out, " ")
}

func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteByte(';')
	}
	return b.String()
}
