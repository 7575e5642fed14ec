package markup

import (
	"html/template"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Open returns the opening tag. The attribute block and its leading space
// are omitted when there are no attributes.
func (e Element) Open() string {
	if e.attrs.IsEmpty() {
		return "<" + e.tag + ">"
	}
	return "<" + e.tag + " " + e.attrs.Render() + ">"
}

// Close returns the closing tag, or "" for void elements.
func (e Element) Close() string {
	if e.IsVoid() {
		return ""
	}
	return "</" + e.tag + ">"
}

// RenderChildren renders every child in order. Strings are written verbatim
// since they were escaped, or deliberately left raw, on insertion.
func (e Element) RenderChildren() (string, error) {
	var b strings.Builder
	if err := e.writeChildren(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Render returns the full markup for e and its subtree.
func (e Element) Render() (string, error) {
	var b strings.Builder
	if err := e.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteTo writes the markup for e to w. The tree is rendered in full before
// anything is written, so a render error leaves w untouched.
func (e Element) WriteTo(w io.Writer) (int64, error) {
	out, err := e.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}

// String implements fmt.Stringer. It returns "" if the tree holds a child
// that cannot be rendered.
func (e Element) String() string {
	out, err := e.Render()
	if err != nil {
		return ""
	}
	return out
}

// ToHTML returns the markup as template.HTML so html/template embeds it
// without escaping it again.
func (e Element) ToHTML() template.HTML {
	return template.HTML(e.String())
}

func (e Element) write(b *strings.Builder) error {
	if e.tag == "" {
		return errors.WithStack(&MissingTagError{})
	}
	b.WriteString(e.Open())
	if err := e.writeChildren(b); err != nil {
		return err
	}
	b.WriteString(e.Close())
	return nil
}

func (e Element) writeChildren(b *strings.Builder) error {
	for _, child := range e.children {
		switch c := child.(type) {
		case Element:
			if err := c.write(b); err != nil {
				return err
			}
		case string:
			b.WriteString(c)
		default:
			return invalidChild(e.tag, child)
		}
	}
	return nil
}
