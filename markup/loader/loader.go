// Package loader builds markup element trees from YAML documents.
//
// A document is a mapping with a required tag and optional id, class,
// attributes, text, html and children keys. Children are either strings,
// which are inserted as raw markup, or nested mappings.
package loader

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/heathj/gomarkup/markup"
	"github.com/heathj/gomarkup/markup/attr"
)

// Loader decodes YAML element documents.
type Loader struct {
	log logrus.FieldLogger
}

type Option func(*Loader)

// WithLogger sets the logger used for per-node debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

func New(opts ...Option) *Loader {
	l := &Loader{log: logrus.StandardLogger()}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load reads a single document from r using the default loader.
func Load(r io.Reader) (markup.Element, error) {
	return New().Load(r)
}

func (l *Loader) Load(r io.Reader) (markup.Element, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return markup.Element{}, errors.New("empty document")
		}
		return markup.Element{}, errors.Wrap(err, "decode yaml")
	}
	return l.Decode(&doc)
}

func (l *Loader) LoadFile(path string) (markup.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return markup.Element{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	e, err := l.Load(f)
	if err != nil {
		return markup.Element{}, errors.Wrap(err, path)
	}
	return e, nil
}

// Decode builds an element from an already parsed YAML node.
func (l *Loader) Decode(n *yaml.Node) (markup.Element, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return markup.Element{}, errors.New("empty document")
		}
		n = n.Content[0]
	}
	return l.decodeElement(n, 0)
}

// fields of one element mapping, in the order they are applied.
type fields struct {
	tag        string
	id         *yaml.Node
	class      *yaml.Node
	attributes *yaml.Node
	text       *yaml.Node
	html       *yaml.Node
	children   *yaml.Node
}

func (l *Loader) decodeElement(n *yaml.Node, depth int) (markup.Element, error) {
	if n.Kind != yaml.MappingNode {
		return markup.Element{}, errors.Errorf("line %d: expected element mapping", n.Line)
	}

	f, err := collect(n)
	if err != nil {
		return markup.Element{}, err
	}
	e, err := markup.New(f.tag)
	if err != nil {
		return markup.Element{}, errors.Wrapf(err, "line %d", n.Line)
	}

	if f.attributes != nil {
		pairs, err := decodeAttributes(f.attributes)
		if err != nil {
			return markup.Element{}, err
		}
		e = e.WithAttributes(pairs...)
	}
	if f.id != nil {
		e = e.ID(f.id.Value)
	}
	if f.class != nil {
		classes, err := decodeStrings(f.class)
		if err != nil {
			return markup.Element{}, err
		}
		e = e.AddClass(classes...)
	}

	switch {
	case f.text != nil && f.html != nil:
		return markup.Element{}, errors.Errorf("line %d: text and html are exclusive", n.Line)
	case f.text != nil:
		e, err = e.Text(f.text.Value)
	case f.html != nil:
		e, err = e.HTML(f.html.Value)
	}
	if err != nil {
		return markup.Element{}, errors.Wrapf(err, "line %d", n.Line)
	}

	if f.children != nil {
		e, err = l.appendChildren(e, f.children, depth)
		if err != nil {
			return markup.Element{}, err
		}
	}

	l.log.WithFields(logrus.Fields{
		"tag":      e.Tag(),
		"line":     n.Line,
		"depth":    depth,
		"attrs":    len(e.Attributes()),
		"children": len(e.Children()),
	}).Debug("built element")
	return e, nil
}

func collect(n *yaml.Node) (fields, error) {
	var f fields
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch k.Value {
		case "tag":
			if v.Kind != yaml.ScalarNode {
				return f, errors.Errorf("line %d: tag must be a string", v.Line)
			}
			f.tag = v.Value
		case "id":
			if v.Kind != yaml.ScalarNode {
				return f, errors.Errorf("line %d: id must be a string", v.Line)
			}
			f.id = v
		case "class":
			f.class = v
		case "attributes":
			f.attributes = v
		case "text":
			f.text = v
		case "html":
			f.html = v
		case "children":
			f.children = v
		default:
			return f, errors.Errorf("line %d: unknown key %q", k.Line, k.Value)
		}
	}
	return f, nil
}

func decodeAttributes(n *yaml.Node) ([]attr.Pair, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: attributes must be a mapping", n.Line)
	}
	pairs := make([]attr.Pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
		}
		pairs = append(pairs, attr.Pair{Name: k.Value, Value: v.Value})
	}
	return pairs, nil
}

func decodeStrings(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		var out []string
		if err := n.Decode(&out); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return out, nil
	}
	return nil, errors.Errorf("line %d: expected string or list of strings", n.Line)
}

func (l *Loader) appendChildren(e markup.Element, n *yaml.Node, depth int) (markup.Element, error) {
	if n.Kind != yaml.SequenceNode {
		return markup.Element{}, errors.Errorf("line %d: children must be a list", n.Line)
	}
	children := make([]any, 0, len(n.Content))
	for _, c := range n.Content {
		switch c.Kind {
		case yaml.ScalarNode:
			children = append(children, c.Value)
		case yaml.MappingNode:
			child, err := l.decodeElement(c, depth+1)
			if err != nil {
				return markup.Element{}, err
			}
			children = append(children, child)
		default:
			return markup.Element{}, errors.Errorf("line %d: child must be a string or mapping", c.Line)
		}
	}
	e, err := e.AddChildren(children)
	if err != nil {
		return markup.Element{}, errors.Wrapf(err, "line %d", n.Line)
	}
	return e, nil
}
