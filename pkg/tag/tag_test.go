package tag

import (
	"errors"
	"strings"
	"testing"
)

type role string

type labelled struct{ name string }

func (l labelled) String() string { return "L:" + l.name }

func TestStringify(t *testing.T) {
	n := 7
	var nilPtr *int
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"uint8", uint8(3), "3"},
		{"float", 0.99, "0.99"},
		{"float integral", 2.0, "2"},
		{"stringer", labelled{name: "x"}, "L:x"},
		{"error", errors.New("boom"), "boom"},
		{"named string", role("admin"), "admin"},
		{"pointer", &n, "7"},
		{"nil pointer", nilPtr, ""},
		{"nil stringer pointer", (*labelled)(nil), ""},
		{"slice", []int{1, 2}, "[1 2]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Stringify(tc.value); got != tc.want {
				t.Fatalf("Stringify(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestTagRendersSortedAttributes(t *testing.T) {
	got := Tag("input", Attributes{
		"value":    "1",
		"type":     "checkbox",
		"checked":  true,
		"disabled": false,
		"title":    nil,
		"class":    []string{"a", "", "b"},
	})
	want := `<input checked="checked" class="a b" type="checkbox" value="1" />`
	if string(got) != want {
		t.Fatalf("Tag = %s, want %s", got, want)
	}
}

func TestContentTagEscapesAttributeValues(t *testing.T) {
	got := ContentTag("label", Attributes{"title": `say "hi" & <bye>`}, Text("a < b"))
	want := `<label title="say &#34;hi&#34; &amp; &lt;bye&gt;">a &lt; b</label>`
	if string(got) != want {
		t.Fatalf("ContentTag = %s, want %s", got, want)
	}
}

func TestDataAttributesExpand(t *testing.T) {
	got := Attributes{
		"data": map[string]any{"item_id": 3, "value": true},
		"aria": Attributes{"label": "Pick"},
	}.Render()
	want := ` aria-label="Pick" data-item-id="3" data-value="true"`
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestMergeReturnsFreshMap(t *testing.T) {
	base := Attributes{"class": "a", "id": "x"}
	merged := Merge(base, nil, Attributes{"class": "b"})
	merged["extra"] = 1

	if base["class"] != "a" {
		t.Fatalf("base mutated: %v", base)
	}
	if _, ok := base["extra"]; ok {
		t.Fatalf("base gained extra key: %v", base)
	}
	if merged["class"] != "b" || merged["id"] != "x" {
		t.Fatalf("unexpected merge result: %v", merged)
	}
}

func TestTextPassesHTMLThrough(t *testing.T) {
	if got := Text(HTML("<b>x</b>")); got != "<b>x</b>" {
		t.Fatalf("Text(HTML) = %s", got)
	}
	if got := Text("<b>x</b>"); got != "&lt;b&gt;x&lt;/b&gt;" {
		t.Fatalf("Text(string) = %s", got)
	}
}

func TestSanitizeValue(t *testing.T) {
	cases := map[string]any{
		"099":        "$0.99",
		"199":        "$1.99",
		"yes":        "Yes",
		"true":       true,
		"1":          1,
		"category_1": "Category 1",
		"a-b_c":      "a-b c!",
	}
	for want, input := range cases {
		if got := SanitizeValue(input); got != want {
			t.Fatalf("SanitizeValue(%v) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitizeObjectName(t *testing.T) {
	cases := map[string]string{
		"user":               "user",
		"post[author]":       "post_author",
		"post[author][name]": "post_author_name",
		"a b":                "a_b",
	}
	for input, want := range cases {
		if got := SanitizeObjectName(input); got != want {
			t.Fatalf("SanitizeObjectName(%q) = %q, want %q", input, got, want)
		}
	}
	if got := SanitizeMethodName("active?"); got != "active" {
		t.Fatalf("SanitizeMethodName = %q", got)
	}
}

func TestDOMIDSkipsEmptyParts(t *testing.T) {
	if got := DOMID("", "user", "", "active", "true"); got != "user_active_true" {
		t.Fatalf("DOMID = %q", got)
	}
}

func TestSanitizeMarkupKeepsInlineFormatting(t *testing.T) {
	got := string(SanitizeMarkup(`<strong class="x">Bold</strong><script>alert(1)</script><a href="/x">link</a>`))
	if !strings.Contains(got, `<strong class="x">Bold</strong>`) {
		t.Fatalf("expected inline markup to survive, got %s", got)
	}
	if strings.Contains(got, "script") || strings.Contains(got, "href") {
		t.Fatalf("expected unsafe markup stripped, got %s", got)
	}
	if SanitizeMarkup("   ") != "" {
		t.Fatalf("expected empty markup for blank input")
	}
}
