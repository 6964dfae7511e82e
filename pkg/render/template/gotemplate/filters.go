package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("classes") {
		_ = pongo2.RegisterFilter("classes", filterClasses)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterClasses joins the input with param into a single class list,
// skipping blanks: {{ "a"|classes:extra }}.
func filterClasses(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var parts []string
	for _, v := range []*pongo2.Value{in, param} {
		if v == nil || v.IsNil() {
			continue
		}
		parts = append(parts, strings.Fields(v.String())...)
	}
	return pongo2.AsValue(strings.Join(parts, " ")), nil
}
