package ast

import "minipy/object"

// Arithmetic covers Add, Sub, Mult, Div uniformly; Op is one of
// '+', '-', '*', '/' and selects which object operator to dispatch.
type Arithmetic struct {
	Op  byte
	Lhs Node
	Rhs Node
}

func (a *Arithmetic) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	lhs, err := a.Lhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	rhs, err := a.Rhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	switch a.Op {
	case '+':
		return object.Add(lhs, rhs, ctx)
	case '-':
		return object.Sub(lhs, rhs, ctx)
	case '*':
		return object.Mult(lhs, rhs, ctx)
	case '/':
		return object.Div(lhs, rhs, ctx)
	default:
		return object.None(), object.NewRuntimeError(string(a.Op), "unknown arithmetic operator")
	}
}

func (a *Arithmetic) String() string {
	return parenthesize(string(a.Op), stringOf(a.Lhs), stringOf(a.Rhs))
}
