// Package view maps profile data onto declarative element trees. Nothing in
// this package touches a live document; see Render and ToHTML for the adapter.
package view

import "strings"

// Attr is a single element attribute.
type Attr struct {
	Key, Val string
}

// Decl is a single inline style declaration.
type Decl struct {
	Prop, Val string
}

// Node is either an element (Tag set) or a text node (Tag empty).
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Classes  []string
	Styles   []Decl
	Children []*Node
}

// El creates an element node.
func El(tag string) *Node {
	return &Node{Tag: tag}
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Class appends class names.
func (n *Node) Class(names ...string) *Node {
	for _, name := range names {
		for _, f := range strings.Fields(name) {
			n.Classes = append(n.Classes, f)
		}
	}
	return n
}

// Attr sets an attribute, replacing an existing value for the same key.
func (n *Node) Attr(key, val string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

// Style sets an inline style property. Later calls for the same property
// overwrite the value in place.
func (n *Node) Style(prop, val string) *Node {
	for i := range n.Styles {
		if n.Styles[i].Prop == prop {
			n.Styles[i].Val = val
			return n
		}
	}
	n.Styles = append(n.Styles, Decl{Prop: prop, Val: val})
	return n
}

// Append adds children, skipping nils so optional fragments can be passed
// directly.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// SetText replaces the children with a single text node.
func (n *Node) SetText(s string) *Node {
	n.Children = []*Node{Text(s)}
	return n
}

// GetAttr returns the value of key and whether it is set.
func (n *Node) GetAttr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// GetStyle returns the value of an inline style property.
func (n *Node) GetStyle(prop string) string {
	for _, d := range n.Styles {
		if d.Prop == prop {
			return d.Val
		}
	}
	return ""
}

// HasClass reports whether the node carries the class.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// StyleAttr serializes the inline style declarations.
func (n *Node) StyleAttr() string {
	return FormatStyle(n.Styles)
}

// TextContent concatenates all descendant text.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// FormatStyle renders declarations as a style attribute value.
func FormatStyle(decls []Decl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Prop+": "+d.Val)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

// ParseStyle splits a style attribute into declarations, keeping order.
func ParseStyle(s string) []Decl {
	var decls []Decl
	for _, part := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		decls = append(decls, Decl{Prop: prop, Val: strings.TrimSpace(val)})
	}
	return decls
}
