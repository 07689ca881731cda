package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Zachkp/portfolio/internal/view"
)

//go:embed skeleton.html
var skeleton []byte

// DefaultSkeleton returns the built-in page markup. Its element ids and
// classes are the contract the controllers depend on.
func DefaultSkeleton() io.Reader {
	return bytes.NewReader(skeleton)
}

// Document is the live page tree a Controller mutates.
type Document struct {
	doc *goquery.Document
}

// ParseDocument parses page markup.
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page markup: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ByID selects the element with the given id. The selection is empty when no
// such element exists, and every mutation on it is then a no-op.
func (d *Document) ByID(id string) *goquery.Selection {
	return d.doc.Find(`[id="` + id + `"]`).First()
}

// Find selects elements by CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Body selects the body element.
func (d *Document) Body() *goquery.Selection {
	return d.doc.Find("body")
}

// Mount clears the container and appends the rendered nodes. It reports
// whether the container exists.
func (d *Document) Mount(id string, nodes []*view.Node) bool {
	container := d.ByID(id)
	if container.Length() == 0 {
		return false
	}
	container.Empty()
	container.AppendNodes(view.ToHTMLAll(nodes)...)
	return true
}

// ReplaceBody drops everything inside body and puts nodes in its place.
func (d *Document) ReplaceBody(nodes []*view.Node) {
	body := d.Body()
	body.Empty()
	body.AppendNodes(view.ToHTMLAll(nodes)...)
}

// Render writes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.doc.Nodes[0])
}

// RenderBody writes only the body element.
func (d *Document) RenderBody(w io.Writer) error {
	body := d.Body()
	if body.Length() == 0 {
		return nil
	}
	return html.Render(w, body.Get(0))
}

func setStyle(s *goquery.Selection, prop, val string) {
	s.Each(func(_ int, el *goquery.Selection) {
		decls := view.ParseStyle(el.AttrOr("style", ""))
		found := false
		for i := range decls {
			if decls[i].Prop == prop {
				decls[i].Val = val
				found = true
			}
		}
		if !found {
			decls = append(decls, view.Decl{Prop: prop, Val: val})
		}
		el.SetAttr("style", view.FormatStyle(decls))
	})
}

func removeStyle(s *goquery.Selection, prop string) {
	s.Each(func(_ int, el *goquery.Selection) {
		style, ok := el.Attr("style")
		if !ok {
			return
		}
		var kept []view.Decl
		for _, d := range view.ParseStyle(style) {
			if d.Prop != prop {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			el.RemoveAttr("style")
			return
		}
		el.SetAttr("style", view.FormatStyle(kept))
	})
}

func styleOf(s *goquery.Selection, prop string) string {
	for _, d := range view.ParseStyle(s.AttrOr("style", "")) {
		if d.Prop == prop {
			return d.Val
		}
	}
	return ""
}
