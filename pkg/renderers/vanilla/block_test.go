package vanilla_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formhelpers/pkg/renderers/vanilla"
	"github.com/goliatone/go-formhelpers/pkg/tag"
	"github.com/goliatone/go-formhelpers/pkg/testsupport"
)

type plan struct {
	Code  string
	Title string
	Price float64
}

func blockEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
		"plan.tmpl": {Data: []byte(`<li class="{{ row }}{% if checked %} on{% endif %}" data-price="{{ object.Price }}">{{ label|safe }}{{ input|safe }}<em>{{ value }}</em></li>`)},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestTemplateBlock_RadioButtons(t *testing.T) {
	plans := []plan{{"free", "Free", 0}, {"pro", "Pro", 9.5}}

	block := vanilla.TemplateBlock(blockEngine(t), "plan")
	block.Data = map[string]any{"row": "plan"}
	block.InputAttrs = func(item *helpers.ItemBuilder) tag.Attributes {
		return tag.Attributes{"data-code": item.Value()}
	}

	html, err := helpers.CollectionRadioButtons("account", "plan", plans, collection.Field("Code"), collection.Field("Title"),
		helpers.Options{Checked: collection.Values("pro")}, nil, block.RadioButtons())
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}
	if err := block.Err(); err != nil {
		t.Fatalf("block error: %v", err)
	}
	out := string(html)

	testsupport.AssertSelectCount(t, out, `li.plan`, 2)
	testsupport.AssertSelect(t, out, `li.plan.on[data-price="9.5"] > input#account_plan_pro[checked][data-code=pro]`)
	testsupport.AssertSelectText(t, out, `li[data-price="0"] > label[for=account_plan_free]`, "Free")
	testsupport.AssertSelectText(t, out, `li.on em`, "pro")
}

func TestTemplateBlock_CheckBoxesKeepHiddenField(t *testing.T) {
	block := vanilla.TemplateBlock(blockEngine(t), "plan")
	html, err := helpers.CollectionCheckBoxes("account", "addons", []plan{{"sso", "SSO", 4}}, collection.Field("Code"), collection.Field("Title"),
		helpers.Options{}, nil, block.CheckBoxes())
	if err != nil || block.Err() != nil {
		t.Fatalf("collection check boxes: %v / %v", err, block.Err())
	}
	testsupport.AssertSelect(t, string(html), `li > input#account_addons_sso[type=checkbox]`)
	testsupport.AssertSelectCount(t, string(html), `input[type=hidden][name="account[addons][]"]`, 1)
}

func TestTemplateBlock_ReportsTemplateErrors(t *testing.T) {
	block := vanilla.TemplateBlock(blockEngine(t), "missing")
	html, err := helpers.CollectionRadioButtons("account", "plan", []string{"a", "b"}, nil, nil, helpers.Options{}, nil, block.RadioButtons())
	if err != nil {
		t.Fatalf("helper error: %v", err)
	}
	if html != "" {
		t.Fatalf("expected no markup when the template fails, got %q", html)
	}
	if block.Err() == nil {
		t.Fatalf("expected template error")
	}

	nilEngine := vanilla.TemplateBlock(nil, "plan")
	_, _ = helpers.CollectionRadioButtons("account", "plan", []string{"a"}, nil, nil, helpers.Options{}, nil, nilEngine.RadioButtons())
	if nilEngine.Err() == nil {
		t.Fatalf("expected error for nil engine")
	}
}
