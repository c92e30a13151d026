package inflate

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Attribute is one name/value pair on an element. Order of appearance in the
// document is preserved: attributes are applied in authoring order.
type Attribute struct {
	Name  string
	Value string
}

// Element is one node of a parsed UI document: a tag name, an ordered
// attribute list and ordered child elements.
type Element struct {
	Tag        string
	Attributes []Attribute
	Children   []*Element
}

// Parse reads a document with a single root element. Text content is
// ignored; UI documents carry structure in elements and attributes only.
func Parse(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed markup: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			element := &Element{Tag: xmlName(t.Name)}
			for _, attr := range t.Attr {
				element.Attributes = append(element.Attributes, Attribute{
					Name:  xmlName(attr.Name),
					Value: attr.Value,
				})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements: %s and %s", root.Tag, element.Tag)
				}
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, element)
			}
			stack = append(stack, element)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("no element found")
	}
	return root, nil
}

// xmlName flattens a possibly-prefixed XML name back to its authored form.
func xmlName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// ParseString parses markup held in a string.
func ParseString(markup string) (*Element, error) {
	return Parse(strings.NewReader(markup))
}
