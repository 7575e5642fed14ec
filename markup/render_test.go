package markup

import (
	"bytes"
	"html/template"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var voidTagList = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"keygen", "link", "menuitem", "meta", "param", "source", "track", "wbr",
}

func TestCloseTag(t *testing.T) {
	for _, tag := range voidTagList {
		t.Run(tag, func(t *testing.T) {
			e := MustNew(tag)
			assert.True(t, e.IsVoid())
			assert.Equal(t, "", e.Close())
			assert.Equal(t, "<"+tag+">", mustRender(t, e))
		})
	}

	for _, tag := range []string{"div", "span", "a", "textarea", "custom-element"} {
		t.Run(tag, func(t *testing.T) {
			e := MustNew(tag)
			assert.False(t, e.IsVoid())
			assert.Equal(t, "</"+tag+">", e.Close())
		})
	}
}

func TestOpenTag(t *testing.T) {
	tests := []struct {
		name     string
		el       Element
		expected string
	}{
		{"no attributes", Div(), "<div>"},
		{"one attribute", Div().ID("x"), `<div id="x">`},
		{"two attributes", Div().Attribute("k1", "v1").Attribute("k2", "v2"), `<div k1="v1" k2="v2">`},
		{"empty value", Input().Attribute("disabled", ""), `<input disabled="">`},
		{"escaped value", Div().Attribute("title", `a "b" <c>`), `<div title="a &#34;b&#34; &lt;c&gt;">`},
		{"forgotten back to bare", Div().ID("x").ForgetAttribute("id"), "<div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.el.Open())
		})
	}
}

func TestRenderExamples(t *testing.T) {
	link, err := A().Attribute("href", "/home").Text("Home")
	require.NoError(t, err)
	assert.Equal(t, `<a href="/home">Home</a>`, mustRender(t, link))

	assert.Equal(t, `<input type="text">`, mustRender(t, Input().Attribute("type", "text")))

	item, err := Li().AddChild(link)
	require.NoError(t, err)
	list, err := Ul().WithChildren([]Element{item, item})
	require.NoError(t, err)
	nav, err := Nav().AddClass("menu").AddChild(list)
	require.NoError(t, err)
	assert.Equal(t,
		`<nav class="menu"><ul><li><a href="/home">Home</a></li><li><a href="/home">Home</a></li></ul></nav>`,
		mustRender(t, nav))
}

func TestRenderIsRepeatable(t *testing.T) {
	e, err := Div().ID("x").AddChildren([]any{"a", Br(), Span().AddClass("s")})
	require.NoError(t, err)

	first := mustRender(t, e)
	assert.Equal(t, first, mustRender(t, e))
	assert.Equal(t, first, e.String())
	assert.Equal(t, template.HTML(first), e.ToHTML())
}

func TestRenderRejectsUnknownChild(t *testing.T) {
	e := Element{tag: "div", children: []any{"ok", 42}}

	_, err := e.Render()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidChild))
	assert.Equal(t, "", e.String())

	parent, err := Section().AddChild(e)
	require.NoError(t, err)
	_, err = parent.RenderChildren()
	assert.True(t, errors.Is(err, ErrInvalidChild))

	var buf bytes.Buffer
	n, err := parent.WriteTo(&buf)
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestWriteTo(t *testing.T) {
	e, err := P().Text("hi")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := e.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestRenderedMarkupParses(t *testing.T) {
	label, err := Label().Attribute("for", "q").Text(`Search "all" & <more>`)
	require.NoError(t, err)
	form, err := Form().Attribute("action", "/s?a=1&b=2").AddChildren([]any{
		label,
		Input().ID("q").Attribute("name", "q").Attribute("value", `it's`),
		Button().Attribute("type", "submit").IfThen(true, func(e Element) Element {
			b, _ := e.Text("Go")
			return b
		}),
	})
	require.NoError(t, err)

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(mustRender(t, form)), body)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	root := nodes[0]
	assert.Equal(t, atom.Form, root.DataAtom)
	assert.Equal(t, "/s?a=1&b=2", attrOf(root, "action"))

	var kids []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, c)
	}
	require.Len(t, kids, 3)
	assert.Equal(t, `Search "all" & <more>`, kids[0].FirstChild.Data)
	assert.Equal(t, atom.Input, kids[1].DataAtom)
	assert.Nil(t, kids[1].FirstChild)
	assert.Equal(t, "it's", attrOf(kids[1], "value"))
	assert.Equal(t, "Go", kids[2].FirstChild.Data)
}

func TestConcurrentRender(t *testing.T) {
	e, err := Ul().AddChildren([]string{"a", "b", "c"}, func(v any) any {
		li, _ := Li().Text(v.(string))
		return li
	})
	require.NoError(t, err)
	want := mustRender(t, e)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.AddClass("x").Render()
			assert.NoError(t, err)
			assert.Equal(t, `<ul class="x"><li>a</li><li>b</li><li>c</li></ul>`, got)
			assert.Equal(t, want, e.String())
		}()
	}
	wg.Wait()
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
