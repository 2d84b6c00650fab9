package ast

import (
	"bytes"

	"minipy/object"
)

// Literal wraps a value already known at parse time — a number, string,
// or bool token — so the parser never has to synthesize a tiny
// closure-independent node type of its own for each primitive kind.
type Literal struct {
	Value object.Holder
}

func (l *Literal) Execute(*object.Closure, *object.Context) (object.Holder, error) {
	return l.Value, nil
}

func (l *Literal) String() string {
	var buf bytes.Buffer
	l.Value.Print(object.NewContext(&buf))
	return buf.String()
}
