package helpers_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/tag"
	"github.com/goliatone/go-formhelpers/pkg/testsupport"
)

type category struct {
	ID   int
	Name string
}

func categories() []category {
	return []category{{ID: 1, Name: "Category 1"}, {ID: 2, Name: "Category 2"}}
}

func numberedCategories() [][]any {
	return [][]any{{1, "Category 1"}, {2, "Category 2"}, {3, "Category 3"}}
}

func radios(t *testing.T, object, method string, coll any, value, text collection.Accessor, opts helpers.Options, html tag.Attributes, block helpers.RadioButtonBlock) string {
	t.Helper()
	out, err := helpers.CollectionRadioButtons(object, method, coll, value, text, opts, html, block)
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}
	return string(out)
}

func TestCollectionRadioButtons_GeneratesInputsFromValueMethod(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, collection.Self(), collection.Self(), helpers.Options{}, nil, nil)

	testsupport.AssertSelect(t, out, `input[type=radio][value="true"]#user_active_true`)
	testsupport.AssertSelect(t, out, `input[type=radio][value="false"]#user_active_false`)
	testsupport.AssertSelect(t, out, `input[name="user[active]"]`)
}

func TestCollectionRadioButtons_GeneratesLabelsFromTextMethod(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, collection.Self(), collection.Self(), helpers.Options{}, nil, nil)

	testsupport.AssertSelectText(t, out, `label[for=user_active_true]`, "true")
	testsupport.AssertSelectText(t, out, `label[for=user_active_false]`, "false")
}

func TestCollectionRadioButtons_HandlesCamelizedValues(t *testing.T) {
	out := radios(t, "user", "active", []string{"Yes", "No"}, nil, nil, helpers.Options{}, nil, nil)

	testsupport.AssertSelectText(t, out, `label[for=user_active_yes]`, "Yes")
	testsupport.AssertSelectText(t, out, `label[for=user_active_no]`, "No")
}

func TestCollectionRadioButtons_SanitizesValuesForIDs(t *testing.T) {
	out := radios(t, "user", "name", []string{"$0.99", "$1.99"}, nil, nil, helpers.Options{}, nil, nil)

	testsupport.AssertSelectText(t, out, `label[for=user_name_099]`, "$0.99")
	testsupport.AssertSelectText(t, out, `label[for=user_name_199]`, "$1.99")
	testsupport.AssertSelect(t, out, `input#user_name_099[value="$0.99"]`)
}

func TestCollectionRadioButtons_AcceptsCheckedItem(t *testing.T) {
	coll := [][]any{{1, true}, {0, false}}
	out := radios(t, "user", "active", coll, collection.Last(), collection.First(), helpers.Options{
		Checked: collection.Values(true),
	}, nil, nil)

	testsupport.AssertSelect(t, out, `input[type=radio][value="true"][checked=checked]`)
	testsupport.AssertNoSelect(t, out, `input[type=radio][value="false"][checked=checked]`)
}

func TestCollectionRadioButtons_AcceptsMultipleDisabledItems(t *testing.T) {
	coll := [][]any{{1, true}, {0, false}, {2, "other"}}
	out := radios(t, "user", "active", coll, collection.Last(), collection.First(), helpers.Options{
		Disabled: collection.Values(true, false),
	}, nil, nil)

	testsupport.AssertSelect(t, out, `input[type=radio][value="true"][disabled=disabled]`)
	testsupport.AssertSelect(t, out, `input[type=radio][value="false"][disabled=disabled]`)
	testsupport.AssertNoSelect(t, out, `input[type=radio][value="other"][disabled=disabled]`)
}

func TestCollectionRadioButtons_AcceptsSingleDisabledItem(t *testing.T) {
	coll := [][]any{{1, true}, {0, false}}
	out := radios(t, "user", "active", coll, collection.Last(), collection.First(), helpers.Options{
		Disabled: collection.Values(true),
	}, nil, nil)

	testsupport.AssertSelect(t, out, `input[type=radio][value="true"][disabled=disabled]`)
	testsupport.AssertNoSelect(t, out, `input[type=radio][value="false"][disabled=disabled]`)
}

func TestCollectionRadioButtons_AcceptsHTMLOptions(t *testing.T) {
	coll := [][]any{{1, true}, {0, false}}
	out := radios(t, "user", "active", coll, collection.Last(), collection.First(), helpers.Options{}, tag.Attributes{
		"class": "special-radio",
	}, nil)

	testsupport.AssertSelect(t, out, `input[type=radio][value="true"].special-radio#user_active_true`)
	testsupport.AssertSelect(t, out, `input[type=radio][value="false"].special-radio#user_active_false`)
}

func TestCollectionRadioButtons_DoesNotWrapInputInsideLabel(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, nil)

	testsupport.AssertSelect(t, out, `input[type=radio] + label`)
	testsupport.AssertNoSelect(t, out, `label input`)
}

func TestCollectionRadioButtons_BlockWrapsInputInLabel(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, func(b *helpers.RadioButtonBuilder) tag.HTML {
		return b.Label(nil, b.RadioButton(nil))
	})

	testsupport.AssertSelect(t, out, `label[for=user_active_true] > input#user_active_true[type=radio]`)
	testsupport.AssertSelect(t, out, `label[for=user_active_false] > input#user_active_false[type=radio]`)
}

func TestCollectionRadioButtons_BlockChangesOrder(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, func(b *helpers.RadioButtonBuilder) tag.HTML {
		return b.Label(nil) + b.RadioButton(nil)
	})

	testsupport.AssertSelect(t, out, `label[for=user_active_true] + input#user_active_true[type=radio]`)
	testsupport.AssertSelect(t, out, `label[for=user_active_false] + input#user_active_false[type=radio]`)
}

func TestCollectionRadioButtons_BlockHelpersAcceptExtraHTMLOptions(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, func(b *helpers.RadioButtonBuilder) tag.HTML {
		return b.Label(tag.Attributes{"class": "radio_button"}) + b.RadioButton(tag.Attributes{"class": "radio_button"})
	})

	testsupport.AssertSelect(t, out, `label.radio_button[for=user_active_true] + input#user_active_true.radio_button[type=radio]`)
	testsupport.AssertSelect(t, out, `label.radio_button[for=user_active_false] + input#user_active_false.radio_button[type=radio]`)
}

func TestCollectionRadioButtons_BlockAccessesTextAndValue(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, func(b *helpers.RadioButtonBuilder) tag.HTML {
		return b.Label(tag.Attributes{"data-value": b.Value()}, b.RadioButton(nil), tag.Text(b.Text()))
	})

	testsupport.AssertSelectText(t, out, `label[for=user_active_true][data-value=true]`, "true")
	testsupport.AssertSelect(t, out, `label[for=user_active_true][data-value=true] input#user_active_true[type=radio]`)
	testsupport.AssertSelectText(t, out, `label[for=user_active_false][data-value=false]`, "false")
	testsupport.AssertSelect(t, out, `label[for=user_active_false][data-value=false] input#user_active_false[type=radio]`)
}

func TestCollectionRadioButtons_BlockAccessesObject(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, func(b *helpers.RadioButtonBuilder) tag.HTML {
		return b.Label(tag.Attributes{"class": b.Object()}, b.RadioButton(nil), tag.Text(b.Text()))
	})

	testsupport.AssertSelectText(t, out, `label.true[for=user_active_true]`, "true")
	testsupport.AssertSelect(t, out, `label.true[for=user_active_true] input#user_active_true[type=radio]`)
	testsupport.AssertSelectText(t, out, `label.false[for=user_active_false]`, "false")
	testsupport.AssertSelect(t, out, `label.false[for=user_active_false] input#user_active_false[type=radio]`)
}

func TestCollectionRadioButtons_WithFieldsFor(t *testing.T) {
	p := helpers.FieldsFor("post", nil)
	html, err := p.CollectionRadioButtons("category_id", categories(), collection.Path("ID"), collection.Path("Name"), helpers.Options{}, nil, nil)
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}
	out := string(html)

	testsupport.AssertSelect(t, out, `input#post_category_id_1[type=radio][value="1"]`)
	testsupport.AssertSelect(t, out, `input#post_category_id_2[type=radio][value="2"]`)
	testsupport.AssertSelectText(t, out, `label[for=post_category_id_1]`, "Category 1")
	testsupport.AssertSelectText(t, out, `label[for=post_category_id_2]`, "Category 2")
}

func TestCollectionRadioButtons_ChecksModelValue(t *testing.T) {
	post := struct{ CategoryID int }{CategoryID: 2}
	p := helpers.FieldsFor("post", post)
	html, err := p.CollectionRadioButtons("category_id", categories(), collection.Field("ID"), collection.Field("Name"), helpers.Options{}, nil, nil)
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}
	out := string(html)

	testsupport.AssertSelect(t, out, `input#post_category_id_2[checked=checked]`)
	testsupport.AssertNoSelect(t, out, `input#post_category_id_1[checked]`)
}

func TestCollectionRadioButtons_DoesNotEmitHiddenField(t *testing.T) {
	out := radios(t, "user", "active", []bool{true, false}, nil, nil, helpers.Options{}, nil, nil)

	testsupport.AssertNoSelect(t, out, `input[type=hidden]`)
}

func TestCollectionRadioButtons_RequiresMethod(t *testing.T) {
	if _, err := helpers.CollectionRadioButtons("user", " ", []bool{true}, nil, nil, helpers.Options{}, nil, nil); err == nil {
		t.Fatalf("expected error for blank method")
	}
}

func TestCollectionRadioButtons_NilPointerModelValueChecksNothing(t *testing.T) {
	model := struct {
		ActiveSince *time.Time
		Nickname    *string
	}{}
	out := radios(t, "user", "active_since", []string{"a", "b"}, nil, nil, helpers.Options{Object: model}, nil, nil)
	testsupport.AssertSelectCount(t, out, `input[type=radio]`, 2)
	testsupport.AssertNoSelect(t, out, `input[checked]`)

	nickname := "b"
	model.Nickname = &nickname
	out = radios(t, "user", "nickname", []string{"a", "b"}, nil, nil, helpers.Options{Object: model}, nil, nil)
	testsupport.AssertSelect(t, out, `input#user_nickname_b[checked=checked]`)
}

type auditFields struct {
	Role string
}

type account struct {
	*auditFields
	Name string
}

func TestCollectionRadioButtons_NilEmbeddedModelChecksNothing(t *testing.T) {
	out := radios(t, "account", "role", []string{"admin", "editor"}, nil, nil, helpers.Options{Object: account{Name: "x"}}, nil, nil)
	testsupport.AssertNoSelect(t, out, `input[checked]`)

	out = radios(t, "account", "role", []string{"admin", "editor"}, nil, nil, helpers.Options{
		Object: account{auditFields: &auditFields{Role: "editor"}},
	}, nil, nil)
	testsupport.AssertSelect(t, out, `input#account_role_editor[checked=checked]`)
}

func TestCollectionRadioButtons_AcceptsCheckedPredicate(t *testing.T) {
	out := radios(t, "post", "category_id", numberedCategories(), collection.First(), collection.Last(), helpers.Options{
		Checked: collection.Predicate(func(item any) bool {
			return item.([]any)[1] == "Category 2"
		}),
	}, nil, nil)

	testsupport.AssertSelect(t, out, `input#post_category_id_2[checked=checked]`)
	testsupport.AssertNoSelect(t, out, `input#post_category_id_1[checked]`)
	testsupport.AssertNoSelect(t, out, `input#post_category_id_3[checked]`)
}
