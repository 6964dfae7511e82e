package render

import (
	"fmt"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token and partial keys understood by the HTML renderer.
const (
	TokenWrapperClass = "collection.wrapper.class"
	TokenItemClass    = "collection.item.class"
	TokenInputClass   = "collection.input.class"
	TokenLabelClass   = "collection.label.class"
	TokenErrorClass   = "collection.error.class"

	PartialWrapper = "collection.wrapper"
	PartialItem    = "collection.item"
)

// ResolveTheme asks selector for the named theme/variant and flattens the
// selection into a renderer configuration: manifest tokens overlaid with the
// variant's, template partials merged over fallbacks, a CSS variable per token
// and an asset URL resolver rooted at the assets prefix.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("render: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("render: theme %q has no manifest", name)
	}

	manifest := selection.Manifest
	tokens := copyStrings(manifest.Tokens)
	partials := copyStrings(fallbacks)
	for key, value := range manifest.Templates {
		partials[key] = value
	}
	prefix := manifest.Assets.Prefix
	files := copyStrings(manifest.Assets.Files)

	if v, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
		for key, value := range v.Templates {
			partials[key] = value
		}
		if strings.TrimSpace(v.Assets.Prefix) != "" {
			prefix = v.Assets.Prefix
		}
		for key, value := range v.Assets.Files {
			files[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.ReplaceAll(key, ".", "-")] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
		AssetURL: assetResolver(prefix, files),
	}, nil
}

// ThemeToken returns a token from cfg, or "" when absent.
func ThemeToken(cfg *theme.RendererConfig, key string) string {
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Tokens[key])
}

// ThemePartial returns the template configured for key, or fallback.
func ThemePartial(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if candidate := strings.TrimSpace(cfg.Partials[key]); candidate != "" {
		return candidate
	}
	return fallback
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") || strings.HasPrefix(file, "/") {
			return file
		}
		if prefix == "" {
			return file
		}
		return path.Join(prefix, file)
	}
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// ManifestSelector is a theme.ThemeSelector over in-memory manifests. Blank
// names fall back to DefaultTheme and DefaultVariant.
type ManifestSelector struct {
	Manifests      map[string]*theme.Manifest
	DefaultTheme   string
	DefaultVariant string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector indexes manifests by Name. The first manifest becomes
// the default theme.
func NewManifestSelector(manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{Manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		if s.DefaultTheme == "" {
			s.DefaultTheme = manifest.Name
		}
		s.Manifests[manifest.Name] = manifest
	}
	return s
}

// Select implements theme.ThemeSelector.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = s.DefaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = s.DefaultVariant
	}
	manifest, ok := s.Manifests[name]
	if !ok {
		return nil, fmt.Errorf("render: theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
