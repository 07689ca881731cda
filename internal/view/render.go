package view

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML converts a view tree into an x/net/html node tree.
func ToHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if len(n.Classes) > 0 {
		out.Attr = append(out.Attr, html.Attribute{Key: "class", Val: strings.Join(n.Classes, " ")})
	}
	for _, a := range n.Attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if style := n.StyleAttr(); style != "" {
		out.Attr = append(out.Attr, html.Attribute{Key: "style", Val: style})
	}
	for _, c := range n.Children {
		out.AppendChild(ToHTML(c))
	}
	return out
}

// ToHTMLAll converts a list of sibling trees.
func ToHTMLAll(nodes []*Node) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ToHTML(n))
	}
	return out
}

// Render writes nodes as HTML markup.
func Render(w io.Writer, nodes ...*Node) error {
	for _, n := range nodes {
		if err := html.Render(w, ToHTML(n)); err != nil {
			return err
		}
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(nodes ...*Node) string {
	var b strings.Builder
	_ = Render(&b, nodes...)
	return b.String()
}
