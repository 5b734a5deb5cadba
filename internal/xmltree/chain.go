package xmltree

// Chain allows chaining multiple lookups with deferred error checking.
// This avoids repetitive "if err != nil" checks in extractors.
//
// After the first failure every further call returns a zero value and the
// first error is kept.
type Chain struct {
	err error
}

// Attr reads a required attribute, accumulating any error.
func (c *Chain) Attr(n Node, key string) string {
	if c.err != nil {
		return ""
	}
	v, err := n.Attr(key)
	c.err = err
	return v
}

// IntAttr reads a required integer attribute, accumulating any error.
func (c *Chain) IntAttr(n Node, key string) int {
	if c.err != nil {
		return 0
	}
	v, err := n.IntAttr(key)
	c.err = err
	return v
}

// Find looks up the first descendant with the given tag, accumulating any
// error.
func (c *Chain) Find(n Node, tag string) Node {
	if c.err != nil {
		return Node{}
	}
	v, err := n.Find(tag)
	c.err = err
	return v
}

// FindWhere looks up the first descendant with the given tag and attribute
// value, accumulating any error.
func (c *Chain) FindWhere(n Node, tag, key, value string) Node {
	if c.err != nil {
		return Node{}
	}
	v, err := n.FindWhere(tag, key, value)
	c.err = err
	return v
}

// FindAll returns all descendants with the given tag. It returns nil once
// an error has been recorded.
func (c *Chain) FindAll(n Node, tag string) []Node {
	if c.err != nil {
		return nil
	}
	return n.FindAll(tag)
}

// Text returns the element text. It returns "" once an error has been
// recorded.
func (c *Chain) Text(n Node) string {
	if c.err != nil {
		return ""
	}
	return n.Text()
}

// IntText reads the element text as an integer, accumulating any error.
func (c *Chain) IntText(n Node) int {
	if c.err != nil {
		return 0
	}
	v, err := n.IntText()
	c.err = err
	return v
}

// Error returns the accumulated error, if any.
func (c *Chain) Error() error {
	return c.err
}
