package testsupport

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ParseHTML parses a markup fragment into a document tree.
func ParseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Select returns every node in markup matching the CSS selector.
func Select(t *testing.T, markup, selector string) []*html.Node {
	t.Helper()
	sel, err := cascadia.Compile(selector)
	if err != nil {
		t.Fatalf("compile selector %q: %v", selector, err)
	}
	return sel.MatchAll(ParseHTML(t, markup))
}

// AssertSelect fails unless at least one node matches selector.
func AssertSelect(t *testing.T, markup, selector string) []*html.Node {
	t.Helper()
	nodes := Select(t, markup, selector)
	if len(nodes) == 0 {
		t.Fatalf("expected %q to match, got none in:\n%s", selector, markup)
	}
	return nodes
}

// AssertSelectText fails unless a node matching selector has the given
// whitespace-trimmed text content.
func AssertSelectText(t *testing.T, markup, selector, text string) *html.Node {
	t.Helper()
	nodes := AssertSelect(t, markup, selector)
	seen := make([]string, 0, len(nodes))
	for _, node := range nodes {
		content := strings.TrimSpace(TextContent(node))
		if content == text {
			return node
		}
		seen = append(seen, content)
	}
	t.Fatalf("expected %q with text %q, got %q in:\n%s", selector, text, seen, markup)
	return nil
}

// AssertNoSelect fails when any node matches selector.
func AssertNoSelect(t *testing.T, markup, selector string) {
	t.Helper()
	if nodes := Select(t, markup, selector); len(nodes) > 0 {
		t.Fatalf("expected %q not to match, got %d nodes in:\n%s", selector, len(nodes), markup)
	}
}

// AssertSelectCount fails unless exactly count nodes match selector.
func AssertSelectCount(t *testing.T, markup, selector string, count int) {
	t.Helper()
	if nodes := Select(t, markup, selector); len(nodes) != count {
		t.Fatalf("expected %d matches for %q, got %d in:\n%s", count, selector, len(nodes), markup)
	}
}

// TextContent concatenates every text node below n.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var builder strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		builder.WriteString(TextContent(child))
	}
	return builder.String()
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
