package markup

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a complete page wrapping rendered nodes.
type Document struct {
	Title       string
	Language    string
	Stylesheets []string // linked stylesheets, in order
	InlineStyle string   // optional content of <style> element
	Meta        []Attr   // name/content pairs
	Body        []Node
}

// ToEtree converts element subtree into etree element.
func ToEtree(e *Element) *etree.Element {
	out := etree.NewElement(e.Tag)
	for _, a := range e.Attrs() {
		out.CreateAttr(a.Name, a.Value)
	}
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Element:
			out.AddChild(ToEtree(n))
		case Text:
			out.CreateText(string(n))
		}
	}
	return out
}

// ToXHTML builds etree document. With indent < 0 no indentation is
// performed.
func (d *Document) ToXHTML(indent int) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE html")
	// empty <i></i> must not be written as <i/>, browsers do not understand it
	doc.WriteSettings.CanonicalEndTags = true

	root := doc.CreateElement("html")
	root.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")
	if d.Language != "" {
		root.CreateAttr("xml:lang", d.Language)
		root.CreateAttr("lang", d.Language)
	}

	head := root.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	for _, m := range d.Meta {
		meta := head.CreateElement("meta")
		meta.CreateAttr("name", m.Name)
		meta.CreateAttr("content", m.Value)
	}

	for _, href := range d.Stylesheets {
		link := head.CreateElement("link")
		link.CreateAttr("rel", "stylesheet")
		link.CreateAttr("type", "text/css")
		link.CreateAttr("href", href)
	}

	if d.InlineStyle != "" {
		style := head.CreateElement("style")
		style.CreateAttr("type", "text/css")
		style.SetText(d.InlineStyle)
	}

	titleElem := head.CreateElement("title")
	titleElem.SetText(d.Title)

	body := root.CreateElement("body")
	for _, n := range d.Body {
		switch n := n.(type) {
		case *Element:
			body.AddChild(ToEtree(n))
		case Text:
			body.CreateText(string(n))
		}
	}

	if indent >= 0 {
		doc.Indent(indent)
	}
	return doc
}

// WriteXHTML serializes document as XHTML.
func (d *Document) WriteXHTML(w io.Writer, indent int) error {
	if _, err := d.ToXHTML(indent).WriteTo(w); err != nil {
		return fmt.Errorf("unable to write xhtml: %w", err)
	}
	return nil
}

// ToHTML converts node subtree into x/net/html node.
func ToHTML(n Node) *html.Node {
	switch n := n.(type) {
	case *Element:
		out := newHTMLElement(n.Tag)
		for _, a := range n.Attrs() {
			out.Attr = append(out.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}
		for _, c := range n.Children {
			out.AppendChild(ToHTML(c))
		}
		return out
	case Text:
		return &html.Node{Type: html.TextNode, Data: string(n)}
	default:
		// this should never happen
		panic(fmt.Sprintf("unsupported markup node %T", n))
	}
}

func newHTMLElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// ToHTML builds x/net/html document tree.
func (d *Document) ToHTML() *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	var rootAttrs []html.Attribute
	if d.Language != "" {
		rootAttrs = append(rootAttrs, html.Attribute{Key: "lang", Val: d.Language})
	}
	root := newHTMLElement("html", rootAttrs...)
	doc.AppendChild(root)

	head := newHTMLElement("head")
	root.AppendChild(head)
	head.AppendChild(newHTMLElement("meta", html.Attribute{Key: "charset", Val: "utf-8"}))
	for _, m := range d.Meta {
		head.AppendChild(newHTMLElement("meta",
			html.Attribute{Key: "name", Val: m.Name},
			html.Attribute{Key: "content", Val: m.Value}))
	}
	for _, href := range d.Stylesheets {
		head.AppendChild(newHTMLElement("link",
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: href}))
	}
	if d.InlineStyle != "" {
		style := newHTMLElement("style")
		style.AppendChild(&html.Node{Type: html.TextNode, Data: d.InlineStyle})
		head.AppendChild(style)
	}
	title := newHTMLElement("title")
	title.AppendChild(&html.Node{Type: html.TextNode, Data: d.Title})
	head.AppendChild(title)

	body := newHTMLElement("body")
	root.AppendChild(body)
	for _, n := range d.Body {
		body.AppendChild(ToHTML(n))
	}
	return doc
}

// WriteHTML serializes document as HTML5.
func (d *Document) WriteHTML(w io.Writer) error {
	if err := html.Render(w, d.ToHTML()); err != nil {
		return fmt.Errorf("unable to write html: %w", err)
	}
	return nil
}
