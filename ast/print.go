package ast

import (
	"bytes"
	"io"

	"minipy/object"
)

// Print evaluates Args left to right, prints each separated by a single
// space and terminates with a newline, all written to ctx's output sink.
// It returns the printed text (sans trailing newline) as an owned String,
// which requires mirroring everything written through Object.Print — the
// None literal, each value, and any side effects __str__ dispatch may
// have — into a side buffer as it goes out the real sink.
type Print struct {
	Args []Node
}

type teeWriter struct {
	w   io.Writer
	buf *bytes.Buffer
}

func (t teeWriter) Write(p []byte) (int, error) {
	t.buf.Write(p)
	return t.w.Write(p)
}

func (p *Print) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	var buf bytes.Buffer
	printCtx := object.NewContext(teeWriter{w: ctx.Output(), buf: &buf})

	for i, arg := range p.Args {
		if i > 0 {
			io.WriteString(printCtx.Output(), " ")
		}
		value, err := arg.Execute(closure, ctx)
		if err != nil {
			return object.None(), err
		}
		value.Print(printCtx)
	}
	text := buf.String()
	io.WriteString(ctx.Output(), "\n")

	return object.Own(object.String(text)), nil
}

func (p *Print) String() string {
	return parenthesize("print", stringifyAll(p.Args)...)
}
