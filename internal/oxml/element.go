// Package oxml holds a minimal generic representation of OOXML elements.
// Both the document walker and the math parser consume it, so neither needs
// per-tag unmarshal types for a format with dozens of element kinds.
package oxml

import (
	"encoding/xml"
	"fmt"
)

// Element is one OOXML element: its name, attributes, ordered child elements
// and character data. Character data is the concatenation of all text inside
// the element, which is exact for leaf elements like w:t and m:t.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Parse decodes an XML document into an Element tree.
func Parse(data []byte) (*Element, error) {
	var el Element
	if err := xml.Unmarshal(data, &el); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return &el, nil
}

// Local returns the element's local name, ignoring the namespace.
func (e *Element) Local() string {
	return e.XMLName.Local
}

// Attr returns the value of the attribute with the given local name.
// Namespace prefixes are ignored: w:val and m:val both match "val".
func (e *Element) Attr(local string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value, or def when the attribute is absent.
func (e *Element) AttrOr(local, def string) string {
	if value, ok := e.Attr(local); ok {
		return value
	}
	return def
}

// Find returns the first direct child with the given local name, or nil.
func (e *Element) Find(local string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == local {
			return &e.Children[i]
		}
	}
	return nil
}

// FindAll returns all direct children with the given local name.
func (e *Element) FindAll(local string) []*Element {
	var found []*Element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == local {
			found = append(found, &e.Children[i])
		}
	}
	return found
}

// FindDeep returns the first descendant with the given local name,
// searching depth-first in document order.
func (e *Element) FindDeep(local string) *Element {
	for i := range e.Children {
		child := &e.Children[i]
		if child.XMLName.Local == local {
			return child
		}
		if found := child.FindDeep(local); found != nil {
			return found
		}
	}
	return nil
}
