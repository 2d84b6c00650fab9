package object

import "io"

// Context is the host-supplied bundle threaded through every Execute
// call: currently just the output sink, but kept as its own type (rather
// than passing an io.Writer directly) so embedders can grow it without
// changing every node's signature.
type Context struct {
	output io.Writer
}

// NewContext wraps out as the guest program's output sink.
func NewContext(out io.Writer) *Context {
	return &Context{output: out}
}

// Output returns the text sink print statements write to.
func (c *Context) Output() io.Writer {
	return c.output
}
