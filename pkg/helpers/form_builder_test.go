package helpers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/tag"
	"github.com/goliatone/go-formhelpers/pkg/testsupport"
)

func TestCollectionRadioButtons_ExactMarkup(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, nil)

	want := `<input id="user_active_true" name="user[active]" type="radio" value="true" />` +
		`<label for="user_active_true">true</label>` +
		`<input id="user_active_false" name="user[active]" type="radio" value="false" />` +
		`<label for="user_active_false">false</label>`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestFormBuilder_IndexAndNamespace(t *testing.T) {
	p := helpers.FieldsFor("post", nil, helpers.WithIndex(1), helpers.WithNamespace("admin"))
	html, err := p.CollectionCheckBoxes("category_ids", categories(), collection.Field("ID"), collection.Field("Name"), helpers.Options{}, nil, nil)
	if err != nil {
		t.Fatalf("collection check boxes: %v", err)
	}
	out := string(html)

	testsupport.AssertSelect(t, out, `input#admin_post_1_category_ids_1[name="post[1][category_ids][]"]`)
	testsupport.AssertSelectText(t, out, `label[for=admin_post_1_category_ids_2]`, "Category 2")
	testsupport.AssertSelectCount(t, out, `input[type=hidden][name="post[1][category_ids][]"]`, 1)
}

func TestFormBuilder_NestedFieldsFor(t *testing.T) {
	author := map[string]any{"role": "editor"}
	p := helpers.FieldsFor("post", nil).FieldsFor("author", author)
	if p.ObjectName() != "post[author]" {
		t.Fatalf("unexpected nested object name %q", p.ObjectName())
	}

	html, err := p.CollectionRadioButtons("role", []string{"editor", "reviewer"}, nil, nil, helpers.Options{}, nil, nil)
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}
	out := string(html)

	testsupport.AssertSelect(t, out, `input#post_author_role_editor[name="post[author][role]"][checked=checked]`)
	testsupport.AssertNoSelect(t, out, `input#post_author_role_reviewer[checked]`)

	indexed := helpers.FieldsFor("post", nil, helpers.WithIndex(1), helpers.WithNamespace("admin")).FieldsFor("author", nil)
	if indexed.ObjectName() != "post[1][author]" {
		t.Fatalf("unexpected indexed nested object name %q", indexed.ObjectName())
	}
	html, err = indexed.CollectionRadioButtons("tone", []string{"calm"}, nil, nil, helpers.Options{}, nil, nil)
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}
	testsupport.AssertSelect(t, string(html), `input#admin_post_1_author_tone_calm[name="post[1][author][tone]"]`)
}

func TestFormBuilder_OptionsOverrideBoundValues(t *testing.T) {
	p := helpers.FieldsFor("post", nil, helpers.WithNamespace("a"))
	html, err := p.CollectionRadioButtons("kind", []string{"x"}, nil, nil, helpers.Options{Namespace: "b"}, nil, nil)
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}
	testsupport.AssertSelect(t, string(html), `input#b_post_kind_x`)
}

func TestCollectionRadioButtons_WithoutObjectName(t *testing.T) {
	out := radios(t, "", "color", []string{"Dark Blue"}, nil, nil, helpers.Options{}, nil, nil)

	testsupport.AssertSelect(t, out, `input#color_dark_blue[name=color]`)
}

func TestCollectionRadioButtons_TextMarkup(t *testing.T) {
	coll := []collection.Pair{{First: "pro", Last: `<strong>Pro</strong> <script>x()</script>`}}
	escaped := radios(t, "plan", "tier", coll, collection.First(), collection.Last(), helpers.Options{}, nil, nil)
	testsupport.AssertNoSelect(t, escaped, `label strong`)

	marked := radios(t, "plan", "tier", coll, collection.First(), collection.Last(), helpers.Options{TextMarkup: true}, nil, nil)
	testsupport.AssertSelectText(t, marked, `label[for=plan_tier_pro] strong`, "Pro")
	testsupport.AssertNoSelect(t, marked, `script`)
}

func TestBuilderExposesState(t *testing.T) {
	var seen []string
	_, err := helpers.CollectionCheckBoxes("user", "roles", []string{"admin", "guest"}, nil, nil, helpers.Options{
		Checked:  collection.Values("admin"),
		Disabled: collection.Values("guest"),
	}, nil, func(b *helpers.CheckBoxBuilder) tag.HTML {
		seen = append(seen, b.ID()+":"+tag.Stringify(b.Checked())+":"+tag.Stringify(b.Disabled()))
		return ""
	})
	if err != nil {
		t.Fatalf("collection check boxes: %v", err)
	}
	want := []string{"user_roles_admin:true:false", "user_roles_guest:false:true"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("builder state mismatch (-want +got):\n%s", diff)
	}
}

func TestExplicitCheckedHTMLOptionSurvivesWithoutMatcher(t *testing.T) {
	out := radios(t, "user", "active", []bool{true}, nil, nil, helpers.Options{}, tag.Attributes{"checked": true}, nil)
	testsupport.AssertSelect(t, out, `input#user_active_true[checked=checked]`)

	forced := radios(t, "user", "active", []bool{true}, nil, nil, helpers.Options{Checked: collection.None()}, tag.Attributes{"checked": true}, nil)
	testsupport.AssertNoSelect(t, forced, `input[checked]`)

	model := struct{ Active bool }{Active: true}
	overModel := radios(t, "user", "active", []bool{true}, nil, nil, helpers.Options{Object: model}, tag.Attributes{"checked": false}, nil)
	testsupport.AssertNoSelect(t, overModel, `input[checked]`)
}
