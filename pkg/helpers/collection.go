// Package helpers renders collections as groups of radio buttons or check
// boxes bound to a model attribute.
package helpers

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

const (
	inputRadio    = "radio"
	inputCheckBox = "checkbox"
)

// CollectionRadioButtons renders one radio input plus label per item in coll.
// value and text select what each item contributes; nil means the item itself.
// html options are applied to every input. When block is non-nil its result
// replaces the default "input then label" markup for each item.
func CollectionRadioButtons(objectName, method string, coll any, value, text collection.Accessor, opts Options, html tag.Attributes, block RadioButtonBlock) (tag.HTML, error) {
	items, err := buildItems(objectName, method, coll, value, text, opts, html, inputRadio)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, item := range items {
		b := &RadioButtonBuilder{ItemBuilder: item}
		if block != nil {
			out.WriteString(string(block(b)))
			continue
		}
		out.WriteString(string(b.RadioButton(nil)))
		out.WriteString(string(b.Label(nil)))
	}
	return tag.HTML(out.String()), nil
}

// CollectionCheckBoxes renders one check box plus label per item in coll and
// a single empty hidden field named "object[method][]" so an empty selection
// is still submitted.
func CollectionCheckBoxes(objectName, method string, coll any, value, text collection.Accessor, opts Options, html tag.Attributes, block CheckBoxBlock) (tag.HTML, error) {
	items, err := buildItems(objectName, method, coll, value, text, opts, html, inputCheckBox)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, item := range items {
		b := &CheckBoxBuilder{ItemBuilder: item}
		if block != nil {
			out.WriteString(string(block(b)))
			continue
		}
		out.WriteString(string(b.CheckBox(nil)))
		out.WriteString(string(b.Label(nil)))
	}

	if opts.includeHidden() {
		field := newFieldRef(objectName, method, opts)
		out.WriteString(string(tag.Tag("input", tag.Attributes{
			"type":  "hidden",
			"name":  field.name(true),
			"value": "",
		})))
	}
	return tag.HTML(out.String()), nil
}

func buildItems(objectName, method string, coll any, value, text collection.Accessor, opts Options, html tag.Attributes, inputType string) ([]ItemBuilder, error) {
	if strings.TrimSpace(method) == "" {
		return nil, fmt.Errorf("helpers: method name is required")
	}

	entries, err := collection.Items(coll)
	if err != nil {
		return nil, fmt.Errorf("helpers: %s[%s]: %w", objectName, method, err)
	}

	multiple := inputType == inputCheckBox
	checked, err := checkedMatcher(opts, method, multiple)
	if err != nil {
		return nil, fmt.Errorf("helpers: %s[%s]: read model value: %w", objectName, method, err)
	}

	field := newFieldRef(objectName, method, opts)
	builders := make([]ItemBuilder, 0, len(entries))
	for i, entry := range entries {
		unit, err := collection.Extract(entry, value, text)
		if err != nil {
			return nil, fmt.Errorf("helpers: %s[%s] item %d: %w", objectName, method, i, err)
		}
		unit.Checked = checked.Match(entry, unit.Value)
		if opts.Disabled != nil {
			unit.Disabled = opts.Disabled.Match(entry, unit.Value)
		}
		builders = append(builders, ItemBuilder{
			unit:       unit,
			field:      field,
			inputType:  inputType,
			multiple:   multiple,
			html:       html,
			checkedSet: opts.Checked != nil,
			textMarkup: opts.TextMarkup,
		})
	}
	return builders, nil
}

// checkedMatcher returns the explicit Checked matcher or derives one from the
// model attribute. Radio buttons compare the attribute as a scalar; check
// boxes treat it as a set of values.
func checkedMatcher(opts Options, method string, multiple bool) (collection.Matcher, error) {
	if opts.Checked != nil {
		return opts.Checked, nil
	}
	if opts.Object == nil {
		return collection.None(), nil
	}
	current, ok, err := collection.Lookup(opts.Object, method)
	if err != nil {
		return nil, err
	}
	if !ok || collection.IsNil(current) {
		return collection.None(), nil
	}
	if multiple {
		return collection.Values(current), nil
	}
	want := tag.Stringify(current)
	return collection.MatcherFunc(func(_, value any) bool {
		return tag.Stringify(value) == want
	}), nil
}
