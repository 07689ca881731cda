package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestRenderEscapesText(t *testing.T) {
	out := RenderString(El("p").SetText("<script>alert(1)</script>"))
	assert.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>", out)
}

func TestRenderAttributeOrder(t *testing.T) {
	n := El("a").Class("github-link").Attr("href", "http://x").Style("display", "inline-flex")
	assert.Equal(t, `<a class="github-link" href="http://x" style="display: inline-flex;"></a>`, RenderString(n))
}

func TestToHTMLBuildsTree(t *testing.T) {
	n := El("div").Append(El("span").SetText("Go"), nil, Text("!"))
	out := ToHTML(n)

	assert.Equal(t, html.ElementNode, out.Type)
	assert.Equal(t, "span", out.FirstChild.Data)
	assert.Equal(t, html.TextNode, out.LastChild.Type)
	assert.Equal(t, "!", out.LastChild.Data)
}

func TestNodeSettersReplace(t *testing.T) {
	n := El("div").Attr("title", "a").Attr("title", "b").Style("opacity", "0").Style("opacity", "1")
	v, ok := n.GetAttr("title")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Len(t, n.Attrs, 1)
	assert.Equal(t, "opacity: 1;", n.StyleAttr())
}

func TestParseStyleRoundTrip(t *testing.T) {
	decls := ParseStyle("overflow: hidden; animation:none;;bogus")
	assert.Equal(t, []Decl{{"overflow", "hidden"}, {"animation", "none"}}, decls)
	assert.Equal(t, "overflow: hidden; animation: none;", FormatStyle(decls))
	assert.Empty(t, FormatStyle(nil))
}
