package tag

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	objectNamePattern = regexp.MustCompile(`\]\[|[^-a-zA-Z0-9:.]`)
	whitespacePattern = regexp.MustCompile(`\s`)
	nonWordPattern    = regexp.MustCompile(`[^-\w]`)
)

// SanitizeObjectName turns a form object name such as "post[author]" into the
// id-safe "post_author".
func SanitizeObjectName(name string) string {
	sanitized := objectNamePattern.ReplaceAllString(name, "_")
	return strings.TrimSuffix(sanitized, "_")
}

// SanitizeMethodName drops the predicate marker from attribute names.
func SanitizeMethodName(name string) string {
	return strings.TrimSuffix(name, "?")
}

// SanitizeValue derives the id fragment for a collection value: whitespace
// becomes "_", anything outside [-A-Za-z0-9_] is dropped and the result is
// lowercased ("$0.99" -> "099").
func SanitizeValue(value any) string {
	raw := Stringify(value)
	raw = whitespacePattern.ReplaceAllString(raw, "_")
	raw = nonWordPattern.ReplaceAllString(raw, "")
	return strings.ToLower(raw)
}

// DOMID joins non-empty id fragments with underscores.
func DOMID(parts ...string) string {
	keep := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			keep = append(keep, part)
		}
	}
	return strings.Join(keep, "_")
}

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SanitizeMarkup keeps inline formatting in caller supplied label markup and
// strips everything else (scripts, links, block elements, event handlers).
func SanitizeMarkup(raw string) HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return HTML(strings.TrimSpace(inlineSanitizer().Sanitize(trimmed)))
}

func inlineSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"b", "strong", "i", "em", "span", "abbr", "small",
			"sup", "sub", "code", "mark",
		)
		policy.AllowAttrs("class", "title").Globally()
		markupPolicy = policy
	})
	return markupPolicy
}
