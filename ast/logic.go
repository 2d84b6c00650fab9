package ast

import "minipy/object"

// And and Or short-circuit and consult only Bool operands — truthiness is
// deliberately not applied on this path.
type And struct {
	Lhs Node
	Rhs Node
}

func (a *And) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	lhs, err := a.Lhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	if !isTrueBool(lhs) {
		return object.Own(object.Bool(false)), nil
	}
	rhs, err := a.Rhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.Bool(isTrueBool(rhs))), nil
}

func (a *And) String() string {
	return parenthesize("and", stringOf(a.Lhs), stringOf(a.Rhs))
}

type Or struct {
	Lhs Node
	Rhs Node
}

func (o *Or) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	lhs, err := o.Lhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	if isTrueBool(lhs) {
		return object.Own(object.Bool(true)), nil
	}
	rhs, err := o.Rhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.Bool(isTrueBool(rhs))), nil
}

func (o *Or) String() string {
	return parenthesize("or", stringOf(o.Lhs), stringOf(o.Rhs))
}

// isTrueBool reports whether h is the Bool true value; any other variant,
// including a false Bool, is not coerced — it simply isn't "true" here.
func isTrueBool(h object.Holder) bool {
	b, ok := h.AsBool()
	return ok && bool(b)
}

// Not requires a Bool argument and negates it.
type Not struct {
	Arg Node
}

func (n *Not) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	arg, err := n.Arg.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	b, ok := arg.AsBool()
	if !ok {
		return object.None(), object.NewRuntimeError("not", "operand must be a bool")
	}
	return object.Own(object.Bool(!b)), nil
}

func (n *Not) String() string {
	return parenthesize("not", stringOf(n.Arg))
}
