package icon

import (
	"faicon/fa"
	"faicon/markup"
)

// StackClass is the class of stacked icon container.
const StackClass = "fa-stack"

// StackedIcon layers two icons on top of each other.
type StackedIcon struct {
	top    Icon
	bottom Icon

	size    fa.Size
	hasSize bool
}

// NewStacked builds stack from two icons appending stack roles to them:
// top gets fa.LayoutStackTop and bottom gets fa.LayoutStackBottom. Layout
// properties already present are left as is.
func NewStacked(top, bottom Icon) StackedIcon {
	return StackedIcon{
		top:    top.AddProp(fa.LayoutStackTop),
		bottom: bottom.AddProp(fa.LayoutStackBottom),
	}
}

// WithSize returns copy of the stack with container size set.
func (s StackedIcon) WithSize(size fa.Size) StackedIcon {
	out := s
	out.size, out.hasSize = size, true
	return out
}

// Top returns top icon with stack role applied.
func (s StackedIcon) Top() Icon {
	return s.top
}

// Bottom returns bottom icon with stack role applied.
func (s StackedIcon) Bottom() Icon {
	return s.bottom
}

// Size returns container size and whether it is set.
func (s StackedIcon) Size() (fa.Size, bool) {
	return s.size, s.hasSize
}

// Class returns container class.
func (s StackedIcon) Class() string {
	if s.hasSize {
		return StackClass + " " + s.size.Class()
	}
	return StackClass
}

// View renders stack as <span> with exactly two children. Bottom goes first
// so top ends up visually above it.
func (s StackedIcon) View() *markup.Element {
	return markup.NewElement(StackTag, s.Class()).Append(s.bottom.View(), s.top.View())
}
