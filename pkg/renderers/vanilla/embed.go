package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/items/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the embedded default stylesheet.
const StylesheetName = "formhelpers-vanilla.css"

// TemplatesFS exposes the embedded template bundle. Template names are
// rooted at "templates/".
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded CSS so callers can serve or copy it.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
