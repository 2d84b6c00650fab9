package ast

import (
	"bytes"
	"strings"

	"minipy/object"
)

// VariableValue resolves a dotted identifier chain: the first segment in
// the current closure, then each further segment as a field lookup on the
// ClassInstance the previous segment resolved to.
type VariableValue struct {
	Path []string
}

func (v *VariableValue) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	cur, ok := closure.Get(v.Path[0])
	if !ok {
		return object.None(), object.NewRuntimeError(v.Path[0], "undefined name")
	}
	for _, field := range v.Path[1:] {
		inst, ok := cur.AsInstance()
		if !ok {
			return object.None(), object.NewRuntimeError(field, "cannot access a field on a non-instance value")
		}
		cur, ok = inst.Fields.Get(field)
		if !ok {
			return object.None(), object.NewRuntimeError(field, "undefined field")
		}
	}
	return cur, nil
}

func (v *VariableValue) String() string {
	return strings.Join(v.Path, ".")
}

// FieldRead generalizes VariableValue's trailing segments to an arbitrary
// object expression, not just a leading identifier — needed once a
// dotted chain follows a method call or constructor result, e.g.
// `obj.method().field`.
type FieldRead struct {
	Object Node
	Field  string
}

func (f *FieldRead) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	target, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	inst, ok := target.AsInstance()
	if !ok {
		return object.None(), object.NewRuntimeError(f.Field, "cannot access a field on a non-instance value")
	}
	v, ok := inst.Fields.Get(f.Field)
	if !ok {
		return object.None(), object.NewRuntimeError(f.Field, "undefined field")
	}
	return v, nil
}

func (f *FieldRead) String() string {
	return stringOf(f.Object) + "." + f.Field
}

// Assignment evaluates Rhs and binds Name to it in the closure Execute is
// given — never an enclosing one, since closures here have no parent.
type Assignment struct {
	Name string
	Rhs  Node
}

func (a *Assignment) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	value, err := a.Rhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	closure.Set(a.Name, value)
	return value, nil
}

func (a *Assignment) String() string {
	return parenthesize("assign "+a.Name, stringOf(a.Rhs))
}

// FieldAssignment stores Rhs into Object's field table under Field.
// Object must evaluate to a ClassInstance. Unlike the source this is
// grounded on, the value is written only into the instance's own field
// closure — never mirrored into the enclosing closure.
type FieldAssignment struct {
	Object Node
	Field  string
	Rhs    Node
}

func (f *FieldAssignment) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	target, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	inst, ok := target.AsInstance()
	if !ok {
		return object.None(), object.NewRuntimeError(f.Field, "cannot assign a field on a non-instance value")
	}
	value, err := f.Rhs.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	inst.Fields.Set(f.Field, value)
	return value, nil
}

func (f *FieldAssignment) String() string {
	return parenthesize("set-field "+f.Field, stringOf(f.Object), stringOf(f.Rhs))
}

// NoneNode always evaluates to the empty holder.
type NoneNode struct{}

func (NoneNode) Execute(*object.Closure, *object.Context) (object.Holder, error) {
	return object.None(), nil
}

func (NoneNode) String() string { return "None" }

// Stringify renders Arg the way Object.Print would, but into a scratch
// buffer rather than the real output sink, so it can be used as an
// ordinary expression without side-effecting the guest program's output.
type Stringify struct {
	Arg Node
}

func (s *Stringify) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	value, err := s.Arg.Execute(closure, ctx)
	if err != nil {
		return object.None(), err
	}
	if value.IsEmpty() {
		return object.Own(object.String("None")), nil
	}
	var buf bytes.Buffer
	value.Print(object.NewContext(&buf))
	return object.Own(object.String(buf.String())), nil
}

func (s *Stringify) String() string {
	return parenthesize("str", stringOf(s.Arg))
}
