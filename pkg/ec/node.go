package ec

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is a generic XML element: name, attributes, character data, and
// child elements in document order. The portal's bulk-data schema is looked
// up by registry paths at runtime, so the document is decoded into this
// generic tree rather than a fixed struct per element.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// ParseXML decodes the document in r into its root Node.
func ParseXML(r io.Reader) (*Node, error) {
	var root Node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse xml document: %w", err)
	}
	return &root, nil
}

// Find returns the first element at the slash-separated path below n,
// matching on local element names, or nil if any segment is missing.
func (n *Node) Find(path string) *Node {
	cur := n
	for _, name := range strings.Split(path, "/") {
		var next *Node
		for i := range cur.Children {
			if cur.Children[i].XMLName.Local == name {
				next = &cur.Children[i]
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// FindAll returns every direct child of n named name, in document order.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// TrimmedText returns the element's character data with surrounding
// whitespace removed. Indented documents leave newlines in the chardata of
// container elements; leaf values are what callers want.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}
