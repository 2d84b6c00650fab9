package ast

import "minipy/object"

// MethodCall evaluates Object, requires it to be a ClassInstance, checks
// HasMethod for the argument count given, evaluates Args left to right,
// and dispatches.
type MethodCall struct {
	Object Node
	Name   string
	Args   []Node
}

func (m *MethodCall) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	target, err := m.Object.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	inst, ok := target.AsInstance()
	if !ok {
		return object.None(), object.NewRuntimeError(m.Name, "cannot call a method on a non-instance value")
	}
	if !inst.Class.HasMethod(m.Name, len(m.Args)) {
		return object.None(), object.NewRuntimeError(m.Name, "no method with %d argument(s)", len(m.Args))
	}
	args, err := evalArgs(m.Args, closure, ctx)
	if err != nil {
		return object.None(), err
	}
	return inst.Call(m.Name, args, ctx)
}

func (m *MethodCall) String() string {
	return parenthesize("call "+m.Name, append([]string{stringOf(m.Object)}, stringifyAll(m.Args)...)...)
}

// NewInstance constructs a ClassInstance of the class Class evaluates to,
// with an empty field table, then invokes a matching-arity __init__ if
// one exists (its return value is discarded). The returned holder is a
// non-owning Share; the instance's lifetime is the caller's scope's
// responsibility.
type NewInstance struct {
	Class Node
	Args  []Node
}

func (n *NewInstance) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	classHolder, err := n.Class.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	class, ok := classHolder.AsClass()
	if !ok {
		return object.None(), object.NewRuntimeError("new", "cannot construct a non-class value")
	}
	inst := object.NewInstance(class)

	args, err := evalArgs(n.Args, closure, ctx)
	if err != nil {
		return object.None(), err
	}
	if class.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return object.None(), err
		}
	}
	return object.Share(inst), nil
}

func (n *NewInstance) String() string {
	return parenthesize("new", append([]string{stringOf(n.Class)}, stringifyAll(n.Args)...)...)
}

func evalArgs(nodes []Node, closure *object.Closure, ctx *object.Context) ([]object.Holder, error) {
	args := make([]object.Holder, len(nodes))
	for i, n := range nodes {
		v, err := n.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
