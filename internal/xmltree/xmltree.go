// Package xmltree loads an XML document into a tree of elements and
// attributes. Text, comments and processing instructions are dropped.
package xmltree

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// ErrMalformed is returned when the input is not well-formed XML.
var ErrMalformed = errors.New("malformed XML document")

// Attr is a single attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the tree. Attribute names are unique; the first
// occurrence wins.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element

	parent *Element
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Value returns the named attribute or "" when absent.
func (e *Element) Value(name string) string {
	v, _ := e.Attr(name)
	return v
}

// Has reports whether the named attribute is present.
func (e *Element) Has(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// ChildrenNamed returns the direct children with the given tag.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Read consumes r and returns the root element. Errors wrap ErrMalformed.
func Read(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var root, current *Element
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err, current)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if current == nil && root != nil {
				return nil, malformed(errors.Errorf("second root element <%s>", t.Name.Local), root)
			}
			el := newElement(t, current)
			if current != nil {
				current.Children = append(current.Children, el)
			} else {
				root = el
			}
			current = el
		case xml.EndElement:
			if current != nil {
				current = current.parent
			}
		}
	}

	if root == nil {
		return nil, errors.Wrap(ErrMalformed, "no root element")
	}
	return root, nil
}

func newElement(t xml.StartElement, parent *Element) *Element {
	el := &Element{Name: t.Name.Local, parent: parent}
	for _, a := range t.Attr {
		if !el.Has(a.Name.Local) {
			el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
		}
	}
	return el
}

func malformed(cause error, at *Element) error {
	err := errors.Wrap(ErrMalformed, cause.Error())
	if at != nil {
		err = errors.WithMessagef(err, "inside <%s>", at.Name)
	}
	return err
}
