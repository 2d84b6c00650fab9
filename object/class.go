package object

import "fmt"

// Executor is the AST node contract: every node evaluates against a
// closure and a context to produce a holder, or fails with an error (a
// *RuntimeError, or the ast package's private return signal escaping a
// method body). Package ast's node types satisfy this interface
// structurally; object never imports ast.
type Executor interface {
	Execute(closure *Closure, ctx *Context) (Holder, error)
}

// Method is a named, arity-fixed body operating on self plus formal
// parameters.
type Method struct {
	Name   string
	Params []string
	Body   Executor
}

func (m *Method) Arity() int { return len(m.Params) }

// Class is built from a name, its own method table, and an optional
// parent for single inheritance. Once built, the method table is
// immutable — nothing after NewClass mutates Methods.
type Class struct {
	Name    string
	Methods map[string]*Method
	Parent  *Class
}

// NewClass indexes methods by name and stores parent for chained lookup.
func NewClass(name string, methods []*Method, parent *Class) *Class {
	table := make(map[string]*Method, len(methods))
	for _, m := range methods {
		table[m.Name] = m
	}
	return &Class{Name: name, Methods: table, Parent: parent}
}

// GetMethod walks self then the parent chain, returning the first hit.
func (c *Class) GetMethod(name string) (*Method, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// HasMethod reports whether GetMethod(name) exists with the given arity.
func (c *Class) HasMethod(name string, argc int) bool {
	m, ok := c.GetMethod(name)
	return ok && m.Arity() == argc
}

func (c *Class) Print(ctx *Context) { fmt.Fprintf(ctx.Output(), "Class %s", c.Name) }

// ClassInstance is a live object of a Class: a non-owning reference to
// its class plus its own field closure.
type ClassInstance struct {
	Class  *Class
	Fields *Closure
}

// NewInstance builds an instance with an empty field table.
func NewInstance(class *Class) *ClassInstance {
	return &ClassInstance{Class: class, Fields: NewClosure()}
}

// Call dispatches name on the instance: it builds a fresh closure with
// self bound to a non-owning holder onto the instance, binds each formal
// parameter positionally, then executes the method body against that
// frame. The caller must have already checked HasMethod, but Call
// re-validates and raises a RuntimeError on lookup failure or arity
// mismatch so it is safe to call directly.
func (inst *ClassInstance) Call(name string, args []Holder, ctx *Context) (Holder, error) {
	m, ok := inst.Class.GetMethod(name)
	if !ok {
		return None(), NewRuntimeError(inst.Class.Name, "no method named '%s'", name)
	}
	if m.Arity() != len(args) {
		return None(), NewRuntimeError(name, "expected %d argument(s), got %d", m.Arity(), len(args))
	}

	frame := NewClosure()
	frame.Set("self", Share(inst))
	for i, param := range m.Params {
		frame.Set(param, args[i])
	}
	return m.Body.Execute(frame, ctx)
}

// Print calls __str__/0 if present and prints its result to ctx (so any
// side effects inside __str__ land on whatever sink the caller intended
// — the real output sink for a top-level print, a scratch buffer for
// Stringify); otherwise it prints an implementation-defined identity
// token.
func (inst *ClassInstance) Print(ctx *Context) {
	if inst.Class.HasMethod("__str__", 0) {
		result, err := inst.Call("__str__", nil, ctx)
		if err == nil {
			result.Print(ctx)
			return
		}
	}
	fmt.Fprintf(ctx.Output(), "<%s object at %p>", inst.Class.Name, inst)
}
