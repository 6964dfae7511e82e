package helpers

import (
	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// ItemBuilder exposes one collection item to a rendering block. The radio and
// check box builders embed it and add their input method.
type ItemBuilder struct {
	unit       collection.Unit
	field      fieldRef
	inputType  string
	multiple   bool
	html       tag.Attributes
	checkedSet bool
	textMarkup bool
}

// Value returns the extracted item value.
func (b *ItemBuilder) Value() any {
	return b.unit.Value
}

// Text returns the extracted item text.
func (b *ItemBuilder) Text() string {
	return b.unit.Text
}

// Object returns the raw collection item.
func (b *ItemBuilder) Object() any {
	return b.unit.Object
}

// ID returns the DOM id shared by the input and its label.
func (b *ItemBuilder) ID() string {
	return b.field.id(b.unit.Value)
}

// Checked reports whether the input renders checked.
func (b *ItemBuilder) Checked() bool {
	return b.unit.Checked
}

// Disabled reports whether the input renders disabled.
func (b *ItemBuilder) Disabled() bool {
	return b.unit.Disabled
}

// Label renders <label for="id">. Content replaces the item text when given.
func (b *ItemBuilder) Label(attrs tag.Attributes, content ...tag.HTML) tag.HTML {
	merged := tag.Merge(attrs)
	merged["for"] = b.ID()

	body := b.textHTML()
	if len(content) > 0 {
		body = tag.Join(content...)
	}
	return tag.ContentTag("label", merged, body)
}

// TextHTML returns the item text ready to embed in markup.
func (b *ItemBuilder) TextHTML() tag.HTML {
	return b.textHTML()
}

func (b *ItemBuilder) textHTML() tag.HTML {
	if b.textMarkup {
		return tag.SanitizeMarkup(b.unit.Text)
	}
	return tag.Escape(b.unit.Text)
}

func (b *ItemBuilder) input(extra tag.Attributes) tag.HTML {
	attrs := tag.Merge(b.html, extra)

	_, explicitChecked := attrs["checked"]
	if b.checkedSet || !explicitChecked {
		attrs["checked"] = b.unit.Checked
	}
	if b.unit.Disabled {
		attrs["disabled"] = true
	}

	attrs["type"] = b.inputType
	attrs["name"] = b.field.name(b.multiple)
	attrs["value"] = tag.Stringify(b.unit.Value)
	attrs["id"] = b.ID()
	return tag.Tag("input", attrs)
}

// RadioButtonBuilder is handed to RadioButtonBlock for every item.
type RadioButtonBuilder struct {
	ItemBuilder
}

// RadioButton renders the radio input. attrs merge over the helper's html
// options.
func (b *RadioButtonBuilder) RadioButton(attrs tag.Attributes) tag.HTML {
	return b.input(attrs)
}

// CheckBoxBuilder is handed to CheckBoxBlock for every item.
type CheckBoxBuilder struct {
	ItemBuilder
}

// CheckBox renders the check box input. attrs merge over the helper's html
// options.
func (b *CheckBoxBuilder) CheckBox(attrs tag.Attributes) tag.HTML {
	return b.input(attrs)
}
