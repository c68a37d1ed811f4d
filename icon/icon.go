// Package icon composes Font Awesome icons into markup nodes.
//
// Icon and StackedIcon are immutable values: every modifier returns a new
// value and never touches the receiver, so values could be shared and
// rendered from any number of goroutines.
package icon

import (
	"slices"
	"strings"

	"faicon/css"
	"faicon/fa"
	"faicon/markup"
)

// Attribute names and tags produced by icons.
const (
	TransformAttr = "data-fa-transform"
	StyleAttr     = "style"

	IconTag  = "i"
	StackTag = "span"
)

// Viewer is anything which renders into a single markup element.
type Viewer interface {
	View() *markup.Element
}

// Icon is a single glyph with ordered display properties and two optional
// modifier groups. An absent group produces no attribute, a present but
// empty group produces an attribute with empty value.
type Icon struct {
	props []fa.Prop

	style    []css.Style
	hasStyle bool

	transform    []fa.Transform
	hasTransform bool
}

// New returns icon with given properties in order. No validation is
// performed: duplicated or conflicting properties are rendered as given.
func New(props ...fa.Prop) Icon {
	return Icon{props: slices.Clone(props)}
}

// AddProp returns copy of the icon with prop appended.
func (i Icon) AddProp(prop fa.Prop) Icon {
	out := i.clone()
	out.props = append(out.props, prop)
	return out
}

// AddCSS returns copy of the icon with style appended, making style group
// present if it was not.
func (i Icon) AddCSS(style css.Style) Icon {
	out := i.clone()
	out.style = append(out.style, style)
	out.hasStyle = true
	return out
}

// AddTransform returns copy of the icon with transform appended, making
// transform group present if it was not.
func (i Icon) AddTransform(transform fa.Transform) Icon {
	out := i.clone()
	out.transform = append(out.transform, transform)
	out.hasTransform = true
	return out
}

// WithStyle returns copy of the icon with style group replaced. Calling it
// without arguments makes group present and empty.
func (i Icon) WithStyle(styles ...css.Style) Icon {
	out := i.clone()
	out.style = slices.Clone(styles)
	out.hasStyle = true
	return out
}

// WithTransform returns copy of the icon with transform group replaced.
// Calling it without arguments makes group present and empty.
func (i Icon) WithTransform(transforms ...fa.Transform) Icon {
	out := i.clone()
	out.transform = slices.Clone(transforms)
	out.hasTransform = true
	return out
}

// Props returns copy of icon properties.
func (i Icon) Props() []fa.Prop {
	return slices.Clone(i.props)
}

// Style returns copy of style group and whether it is present.
func (i Icon) Style() ([]css.Style, bool) {
	return slices.Clone(i.style), i.hasStyle
}

// Transform returns copy of transform group and whether it is present.
func (i Icon) Transform() ([]fa.Transform, bool) {
	return slices.Clone(i.transform), i.hasTransform
}

// Class returns space separated property tokens in insertion order.
func (i Icon) Class() string {
	return joinTokens(i.props, fa.Prop.Class, " ")
}

// View renders icon as <i> element. Base element carries class only,
// transform and style attributes are attached after, when present.
func (i Icon) View() *markup.Element {
	e := markup.NewElement(IconTag, i.Class())
	if i.hasTransform {
		e.SetAttr(TransformAttr, joinTokens(i.transform, fa.Transform.Class, " "))
	}
	if i.hasStyle {
		e.SetAttr(StyleAttr, joinTokens(i.style, css.Style.Inline, ";"))
	}
	return e
}

// clone copies every slice so appends on result never land in backing array
// shared with receiver.
func (i Icon) clone() Icon {
	out := i
	out.props = slices.Clone(i.props)
	out.style = slices.Clone(i.style)
	out.transform = slices.Clone(i.transform)
	return out
}

func joinTokens[T any](items []T, token func(T) string, sep string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, token(it))
	}
	return strings.Join(parts, sep)
}
