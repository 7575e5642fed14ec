package markup

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/gomarkup/markup/attr"
)

// Element is an immutable markup node. Every mutator returns a new Element
// and leaves the receiver untouched, so values can be shared freely.
type Element struct {
	tag      string
	attrs    *attr.Store
	children []any
}

// New returns an empty element for tag. Surrounding whitespace is trimmed;
// an empty tag, or one holding whitespace or markup characters, fails.
func New(tag string) (Element, error) {
	name := strings.TrimSpace(tag)
	if name == "" || strings.ContainsFunc(name, invalidTagRune) {
		return Element{}, errors.WithStack(&MissingTagError{Tag: tag})
	}
	return Element{tag: name, attrs: attr.New()}, nil
}

func invalidTagRune(r rune) bool {
	switch r {
	case '<', '>', '/', '"', '\'', '=':
		return true
	}
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// MustNew is like New but panics when tag is empty.
func MustNew(tag string) Element {
	e, err := New(tag)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Element) Tag() string { return e.tag }

// IsVoid reports whether the element is rendered without a closing tag.
func (e Element) IsVoid() bool { return IsVoidTag(e.tag) }

// Children returns a copy of the child list.
func (e Element) Children() []any {
	return append([]any(nil), e.children...)
}

// Attributes returns the attributes in insertion order.
func (e Element) Attributes() []attr.Pair { return e.attrs.Pairs() }

// clone copies the attribute store and the child slice so the result can be
// changed without touching e.
func (e Element) clone() Element {
	return Element{
		tag:      e.tag,
		attrs:    e.attrs.Clone(),
		children: append(make([]any, 0, len(e.children)+1), e.children...),
	}
}

// Attribute sets name to value. Names rejected by attr.ValidName are
// ignored.
func (e Element) Attribute(name, value string) Element {
	c := e.clone()
	c.attrs.Set(name, value)
	return c
}

// AttributeIf sets name only when cond holds; otherwise e is returned as is.
func (e Element) AttributeIf(cond bool, name, value string) Element {
	if !cond {
		return e
	}
	return e.Attribute(name, value)
}

// WithAttributes merges pairs in order. Later pairs win on collision.
func (e Element) WithAttributes(pairs ...attr.Pair) Element {
	c := e.clone()
	c.attrs.SetAll(pairs...)
	return c
}

// WithAttributeMap merges m sorted by attribute name.
func (e Element) WithAttributeMap(m map[string]string) Element {
	return e.WithAttributes(attr.FromMap(m)...)
}

func (e Element) ForgetAttribute(name string) Element {
	c := e.clone()
	c.attrs.Forget(name)
	return c
}

// GetAttribute returns the value of name, the first fallback, or "".
func (e Element) GetAttribute(name string, fallback ...string) string {
	def := ""
	if len(fallback) > 0 {
		def = fallback[0]
	}
	return e.attrs.Get(name, def)
}

func (e Element) HasAttribute(name string) bool { return e.attrs.Has(name) }

// AddClass adds class tokens. Each value may hold several space separated
// tokens; duplicates are dropped.
func (e Element) AddClass(values ...string) Element {
	c := e.clone()
	c.attrs.AddClass(values...)
	return c
}

// Class is an alias for AddClass.
func (e Element) Class(values ...string) Element { return e.AddClass(values...) }

func (e Element) ID(value string) Element { return e.Attribute("id", value) }

// Data sets a data-* attribute.
func (e Element) Data(key, value string) Element { return e.Attribute("data-"+key, value) }

// AddChildren appends children, which may be an Element, a string or any
// nesting of slices of them. mapper, when given, is applied to every item
// after flattening. If any resulting item is invalid nothing is appended.
func (e Element) AddChildren(children any, mapper ...Mapper) (Element, error) {
	if children == nil {
		return e, nil
	}
	items := Normalize(children)
	for _, m := range mapper {
		items = MapEach(items, m)
	}
	for _, item := range items {
		if !isChild(item) {
			return e, invalidChild(e.tag, item)
		}
	}
	c := e.clone()
	c.children = append(c.children, items...)
	return c, nil
}

// WithChildren is an alias for AddChildren.
func (e Element) WithChildren(children any, mapper ...Mapper) (Element, error) {
	return e.AddChildren(children, mapper...)
}

func (e Element) AddChild(child any) (Element, error) {
	if !isChild(child) {
		return e, invalidChild(e.tag, child)
	}
	c := e.clone()
	c.children = append(c.children, child)
	return c, nil
}

func (e Element) PrependChild(child any) (Element, error) {
	if !isChild(child) {
		return e, invalidChild(e.tag, child)
	}
	c := e.clone()
	c.children = append([]any{child}, c.children...)
	return c, nil
}

// Text replaces the children with value after escaping it. Besides the five
// markup characters & < > " ' a carriage return is written as &#13;.
func (e Element) Text(value string) (Element, error) {
	return e.HTML(html.EscapeString(value))
}

// HTML replaces the children with value verbatim.
func (e Element) HTML(value string) (Element, error) {
	if e.IsVoid() {
		return e, errors.WithStack(&InvalidHTMLError{Tag: e.tag})
	}
	c := e.clone()
	c.children = []any{value}
	return c, nil
}

// IfThen returns fn(e) when cond holds, e otherwise.
func (e Element) IfThen(cond bool, fn func(Element) Element) Element {
	if !cond {
		return e
	}
	return fn(e)
}

// isChild accepts strings and constructed elements. A zero Element has no
// tag and is rejected.
func isChild(v any) bool {
	switch c := v.(type) {
	case Element:
		return c.tag != ""
	case string:
		return true
	}
	return false
}
