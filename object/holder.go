// Package object implements the value model: holders, the primitive
// variants, classes and instances, closures, and the operator semantics
// that dispatch across them. It has no dependency on package ast; AST
// nodes satisfy the Executor interface declared here structurally, which
// is what lets Class.Call invoke a method body without object importing
// ast.
package object

// Object is a printable runtime value. Print is the single operation the
// value model asks of every variant: render self to ctx's output sink.
// Instances take a full Context, not a bare writer, because printing an
// instance may have to dispatch __str__, which needs somewhere to run.
type Object interface {
	Print(ctx *Context)
}

// Holder is the uniform handle the evaluator passes around. An empty
// Holder represents the guest None. Owned marks whether this holder was
// constructed via Own (jointly keeping the referent alive) versus Share
// (borrowing a referent whose lifetime another holder already owns) —
// under Go's garbage collector this distinction carries no behavior, but
// it is kept on the type so the shape of the evaluator mirrors the
// ownership discipline the value model specifies.
type Holder struct {
	obj   Object
	owned bool
}

// None returns the empty holder.
func None() Holder { return Holder{} }

// Own wraps obj in a holder that jointly owns it.
func Own(obj Object) Holder { return Holder{obj: obj, owned: true} }

// Share wraps obj in a non-owning holder; obj's lifetime is guaranteed
// elsewhere.
func Share(obj Object) Holder { return Holder{obj: obj, owned: false} }

// IsEmpty reports whether the holder represents None.
func (h Holder) IsEmpty() bool { return h.obj == nil }

// Object returns the underlying value, or nil for an empty holder.
func (h Holder) Object() Object { return h.obj }

// Owned reports whether this holder was constructed with Own.
func (h Holder) Owned() bool { return h.owned }

// AsNumber downcasts to Number, if that's the concrete variant held.
func (h Holder) AsNumber() (Number, bool) {
	n, ok := h.obj.(Number)
	return n, ok
}

// AsString downcasts to String.
func (h Holder) AsString() (String, bool) {
	s, ok := h.obj.(String)
	return s, ok
}

// AsBool downcasts to Bool.
func (h Holder) AsBool() (Bool, bool) {
	b, ok := h.obj.(Bool)
	return b, ok
}

// AsClass downcasts to *Class.
func (h Holder) AsClass() (*Class, bool) {
	c, ok := h.obj.(*Class)
	return c, ok
}

// AsInstance downcasts to *ClassInstance.
func (h Holder) AsInstance() (*ClassInstance, bool) {
	inst, ok := h.obj.(*ClassInstance)
	return inst, ok
}

// Print writes the holder's value, or the literal None for an empty
// holder, to ctx's output sink.
func (h Holder) Print(ctx *Context) {
	if h.IsEmpty() {
		ctx.Output().Write([]byte("None"))
		return
	}
	h.obj.Print(ctx)
}

// Truthy implements the guest truthiness projection: empty is false,
// Bool is its own value, Number is non-zero, String is non-empty,
// everything else (classes, instances) is false.
func Truthy(h Holder) bool {
	if h.IsEmpty() {
		return false
	}
	switch v := h.obj.(type) {
	case Bool:
		return bool(v)
	case Number:
		return v != 0
	case String:
		return v != ""
	default:
		return false
	}
}
