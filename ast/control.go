package ast

import "minipy/object"

// IfElse evaluates Cond, which must be a Bool, then runs Then or Else.
// A missing Else on a false condition yields empty.
type IfElse struct {
	Cond Node
	Then Node
	Else Node
}

func (i *IfElse) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	cond, err := i.Cond.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	b, ok := cond.AsBool()
	if !ok {
		return object.None(), object.NewRuntimeError("if", "condition must be a bool")
	}
	if b {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(closure, ctx)
	}
	return object.None(), nil
}

func (i *IfElse) String() string {
	if i.Else != nil {
		return parenthesize("if", stringOf(i.Cond), stringOf(i.Then), stringOf(i.Else))
	}
	return parenthesize("if", stringOf(i.Cond), stringOf(i.Then))
}

// Comparison evaluates Lhs and Rhs and applies one of the six comparators
// named by Cmp: "==", "!=", "<", "<=", ">", ">=".
type Comparison struct {
	Cmp string
	Lhs Node
	Rhs Node
}

func (c *Comparison) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	lhs, err := c.Lhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	rhs, err := c.Rhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}

	var result bool
	switch c.Cmp {
	case "==":
		result, err = object.Equal(lhs, rhs, ctx)
	case "!=":
		result, err = object.NotEqual(lhs, rhs, ctx)
	case "<":
		result, err = object.Less(lhs, rhs, ctx)
	case "<=":
		result, err = object.LessOrEqual(lhs, rhs, ctx)
	case ">":
		result, err = object.Greater(lhs, rhs, ctx)
	case ">=":
		result, err = object.GreaterOrEqual(lhs, rhs, ctx)
	default:
		return object.None(), object.NewRuntimeError(c.Cmp, "unknown comparison operator")
	}
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.Bool(result)), nil
}

func (c *Comparison) String() string {
	return parenthesize(c.Cmp, stringOf(c.Lhs), stringOf(c.Rhs))
}
