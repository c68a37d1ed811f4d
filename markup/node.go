// Package markup defines minimal markup tree handed to rendering engines:
// elements with attributes and ordered children, and text. Trees could be
// serialized as XHTML (etree) or HTML (x/net/html).
package markup

import (
	"maps"
	"slices"
)

// ClassAttr is the name of the attribute every element carries.
const ClassAttr = "class"

// Node is either *Element or Text.
type Node interface {
	node()
}

// Text is a character data node.
type Text string

func (Text) node() {}

// Attr is a single attribute name/value pair.
type Attr struct {
	Name  string
	Value string
}

// Element is an attribute bearing node. Attribute attachment is only defined
// on elements, there is no way to attach attributes to any other kind of
// node.
type Element struct {
	Tag      string
	Children []Node

	attrs map[string]string
}

func (*Element) node() {}

// NewElement returns element with class attribute set (possibly to empty
// string).
func NewElement(tag, class string) *Element {
	return &Element{
		Tag:   tag,
		attrs: map[string]string{ClassAttr: class},
	}
}

// SetAttr adds or replaces attribute and returns element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	return e
}

// Attr returns attribute value and whether attribute is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Class returns value of class attribute.
func (e *Element) Class() string {
	return e.attrs[ClassAttr]
}

// Attrs returns attributes in stable order: class first, then sorted by name.
func (e *Element) Attrs() []Attr {
	names := slices.Sorted(maps.Keys(e.attrs))
	out := make([]Attr, 0, len(names))
	if v, ok := e.attrs[ClassAttr]; ok {
		out = append(out, Attr{Name: ClassAttr, Value: v})
	}
	for _, name := range names {
		if name == ClassAttr {
			continue
		}
		out = append(out, Attr{Name: name, Value: e.attrs[name]})
	}
	return out
}

// Append adds children in order and returns element for chaining.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Elements returns element children skipping text.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}
