package vanilla

import (
	"fmt"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	rendertemplate "github.com/goliatone/go-formhelpers/pkg/render/template"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// ItemTemplate renders every collection item through a named template. The
// template receives:
//
//	input      rendered <input> (mark it |safe)
//	label      rendered <label for=id> (mark it |safe)
//	text       item text, unescaped
//	text_html  item text ready for markup (mark it |safe)
//	value      item value as a string
//	id         DOM id shared by input and label
//	checked    bool
//	disabled   bool
//	object     the raw collection item
//
// plus every key in Data. Template failures do not abort the helper; the first
// one is kept and reported by Err.
type ItemTemplate struct {
	engine rendertemplate.TemplateRenderer
	name   string

	// InputAttrs returns per-item attributes merged over the helper html
	// options before the input is rendered.
	InputAttrs func(item *helpers.ItemBuilder) tag.Attributes
	// LabelAttrs are applied to the rendered label.
	LabelAttrs tag.Attributes
	// Data is merged into every item context.
	Data map[string]any

	err error
}

// TemplateBlock returns an ItemTemplate rendering name with engine. Use
// RadioButtons or CheckBoxes to obtain the helper block.
func TemplateBlock(engine rendertemplate.TemplateRenderer, name string) *ItemTemplate {
	return &ItemTemplate{engine: engine, name: name}
}

// RadioButtons adapts the template to helpers.CollectionRadioButtons.
func (t *ItemTemplate) RadioButtons() helpers.RadioButtonBlock {
	return func(b *helpers.RadioButtonBuilder) tag.HTML {
		return t.render(&b.ItemBuilder, b.RadioButton(t.inputAttrs(&b.ItemBuilder)))
	}
}

// CheckBoxes adapts the template to helpers.CollectionCheckBoxes.
func (t *ItemTemplate) CheckBoxes() helpers.CheckBoxBlock {
	return func(b *helpers.CheckBoxBuilder) tag.HTML {
		return t.render(&b.ItemBuilder, b.CheckBox(t.inputAttrs(&b.ItemBuilder)))
	}
}

// Err returns the first template error, if any.
func (t *ItemTemplate) Err() error {
	return t.err
}

func (t *ItemTemplate) inputAttrs(item *helpers.ItemBuilder) tag.Attributes {
	if t.InputAttrs == nil {
		return nil
	}
	return t.InputAttrs(item)
}

func (t *ItemTemplate) render(item *helpers.ItemBuilder, input tag.HTML) tag.HTML {
	if t.err != nil {
		return ""
	}
	if t.engine == nil {
		t.err = fmt.Errorf("vanilla: item template %q: template renderer is nil", t.name)
		return ""
	}

	data := make(map[string]any, len(t.Data)+9)
	for key, value := range t.Data {
		data[key] = value
	}
	data["input"] = string(input)
	data["label"] = string(item.Label(t.LabelAttrs))
	data["text"] = item.Text()
	data["text_html"] = string(item.TextHTML())
	data["value"] = tag.Stringify(item.Value())
	data["id"] = item.ID()
	data["checked"] = item.Checked()
	data["disabled"] = item.Disabled()
	data["object"] = item.Object()

	out, err := t.engine.RenderTemplate(t.name, data)
	if err != nil {
		t.err = fmt.Errorf("vanilla: item template %q: %w", t.name, err)
		return ""
	}
	return tag.HTML(out)
}
