package ast

import "minipy/object"

// Compound executes an ordered list of statements, returning empty.
// Errors, including a return signal, propagate immediately.
type Compound struct {
	Stmts []Node
}

func (c *Compound) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	for _, stmt := range c.Stmts {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return object.None(), err
		}
	}
	return object.None(), nil
}

func (c *Compound) String() string {
	return parenthesize("block", stringifyAll(c.Stmts)...)
}

// returnSignal is raised by Return and caught exclusively by MethodBody.
// It implements error only so it can travel the same channel as a
// RuntimeError without being confused for one — nothing outside this
// package constructs it, and outside code can recognize it only through
// AsReturnSignal.
type returnSignal struct {
	value object.Holder
}

func (r *returnSignal) Error() string { return "return signal escaped its method body" }

// AsReturnSignal reports whether err is a return signal and, if so, the
// value it carries. It exists for the top-level evaluator: a return
// executed outside any method body is defensively treated as a
// RuntimeError rather than silently accepted as the program's result, and
// the root package needs this to recognize that case from outside ast.
func AsReturnSignal(err error) (object.Holder, bool) {
	sig, ok := err.(*returnSignal)
	if !ok {
		return object.Holder{}, false
	}
	return sig.value, true
}

// MethodBody runs Body and catches a return signal escaping it, yielding
// the signal's payload as the result; absent a signal, the body's own
// (empty) value is the result.
type MethodBody struct {
	Body Node
}

func (m *MethodBody) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	value, err := m.Body.Execute(closure, ctx)
	if sig, ok := err.(*returnSignal); ok {
		return sig.value, nil
	}
	return value, err
}

func (m *MethodBody) String() string {
	return parenthesize("method-body", stringOf(m.Body))
}

// Return evaluates Expr and raises a return signal carrying the result;
// it is never itself the value a caller sees, since MethodBody intercepts
// it before the call returns.
type Return struct {
	Expr Node
}

func (r *Return) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	value, err := r.Expr.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	return object.None(), &returnSignal{value: value}
}

func (r *Return) String() string {
	return parenthesize("return", stringOf(r.Expr))
}
