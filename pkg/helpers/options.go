package helpers

import (
	"github.com/goliatone/go-formhelpers/pkg/collection"
	"github.com/goliatone/go-formhelpers/pkg/tag"
)

// Options configure a collection helper call. The zero value renders every
// item unchecked and enabled (unless Object supplies a value).
type Options struct {
	// Checked selects items to check. When set it overrides whatever Object
	// holds: matching items are checked, all others are forced unchecked.
	Checked collection.Matcher
	// Disabled selects items rendered with the disabled attribute.
	Disabled collection.Matcher
	// Object is the model the attribute is read from when Checked is nil.
	Object any
	// Index inserts an index segment into names and ids
	// (post[1][category_id], post_1_category_id).
	Index any
	// Namespace prefixes every generated id.
	Namespace string
	// IncludeHidden controls the empty hidden field emitted after check box
	// collections. Nil means true.
	IncludeHidden *bool
	// TextMarkup treats item text as markup, sanitised down to inline
	// formatting, instead of escaping it.
	TextMarkup bool
}

// RadioButtonBlock customises the markup rendered for each radio item.
type RadioButtonBlock func(b *RadioButtonBuilder) tag.HTML

// CheckBoxBlock customises the markup rendered for each check box item.
type CheckBoxBlock func(b *CheckBoxBuilder) tag.HTML

// Bool returns a pointer to v, handy for Options.IncludeHidden.
func Bool(v bool) *bool {
	return &v
}

func (o Options) includeHidden() bool {
	return o.IncludeHidden == nil || *o.IncludeHidden
}
