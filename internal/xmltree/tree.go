// Package xmltree provides checked access to parsed session documents.
//
// Extractors navigate a session by element and attribute names and expect
// the document to follow the session schema. Every accessor here fails with
// a *types.MalformedSessionError carrying the file path and element path
// when that expectation does not hold, so extractors can fail fast without
// writing their own error messages.
package xmltree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/ecatools/ecaplugin/internal/types"
)

// Tree is a parsed XML document associated with its source path.
type Tree struct {
	doc  *etree.Document
	path string
}

// Parse parses data as XML.
func Parse(data []byte, path string) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &types.MalformedSessionError{
			Path:   path,
			Reason: fmt.Sprintf("invalid XML: %v", err),
		}
	}
	return &Tree{doc: doc, path: path}, nil
}

// Document returns the underlying etree document. Callers must not modify it.
func (t *Tree) Document() *etree.Document {
	return t.doc
}

// Root returns the top-level element.
func (t *Tree) Root() (Node, error) {
	root := t.doc.Root()
	if root == nil {
		return Node{}, &types.MalformedSessionError{
			Path:   t.path,
			Reason: "document has no root element",
		}
	}
	return Node{el: root, path: t.path}, nil
}

// Node is a single element of a Tree.
type Node struct {
	el   *etree.Element
	path string
}

// ElementPath returns the slash-separated path of the element from the
// document root.
func (n Node) ElementPath() string {
	return n.el.GetPath()
}

func (n Node) malformed(format string, args ...any) error {
	return &types.MalformedSessionError{
		Path:    n.path,
		Element: n.ElementPath(),
		Reason:  fmt.Sprintf(format, args...),
	}
}

// HasAttr reports whether the element carries the attribute.
func (n Node) HasAttr(key string) bool {
	return n.el.SelectAttr(key) != nil
}

// Attr returns the value of a required attribute.
func (n Node) Attr(key string) (string, error) {
	a := n.el.SelectAttr(key)
	if a == nil {
		return "", n.malformed("missing attribute %q", key)
	}
	return a.Value, nil
}

// IntAttr returns a required attribute parsed as a base-10 integer.
func (n Node) IntAttr(key string) (int, error) {
	s, err := n.Attr(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, n.malformed("attribute %q: %q is not an integer", key, s)
	}
	return v, nil
}

// Text returns the element's character data with surrounding whitespace
// removed.
func (n Node) Text() string {
	return strings.TrimSpace(n.el.Text())
}

// IntText returns the element's character data parsed as an integer.
func (n Node) IntText() (int, error) {
	s := n.Text()
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, n.malformed("%q is not an integer", s)
	}
	return v, nil
}

// Find returns the first descendant element with the given tag, in
// document order.
func (n Node) Find(tag string) (Node, error) {
	return n.FindWhere(tag, "", "")
}

// FindWhere returns the first descendant element with the given tag whose
// attribute key equals value. An empty key matches any element with the tag.
func (n Node) FindWhere(tag, key, value string) (Node, error) {
	var found *etree.Element
	walk(n.el, func(e *etree.Element) bool {
		if matches(e, tag, key, value) {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		if key == "" {
			return Node{}, n.malformed("missing element <%s>", tag)
		}
		return Node{}, n.malformed("missing element <%s %s=%q>", tag, key, value)
	}
	return Node{el: found, path: n.path}, nil
}

// FindAll returns all descendant elements with the given tag, in document
// order. The element itself is not included.
func (n Node) FindAll(tag string) []Node {
	var nodes []Node
	walk(n.el, func(e *etree.Element) bool {
		if e.Tag == tag {
			nodes = append(nodes, Node{el: e, path: n.path})
		}
		return true
	})
	return nodes
}

func matches(e *etree.Element, tag, key, value string) bool {
	if e.Tag != tag {
		return false
	}
	if key == "" {
		return true
	}
	a := e.SelectAttr(key)
	return a != nil && a.Value == value
}

// walk visits the descendants of e in pre-order (document order). The
// traversal stops when visit returns false.
func walk(e *etree.Element, visit func(*etree.Element) bool) bool {
	for _, c := range e.ChildElements() {
		if !visit(c) {
			return false
		}
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
