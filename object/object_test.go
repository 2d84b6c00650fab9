package object

import (
	"bytes"
	"testing"
)

func TestTruthiness(t *testing.T) {
	cases := []struct {
		name string
		h    Holder
		want bool
	}{
		{"empty", None(), false},
		{"true bool", Own(Bool(true)), true},
		{"false bool", Own(Bool(false)), false},
		{"zero number", Own(Number(0)), false},
		{"nonzero number", Own(Number(5)), true},
		{"empty string", Own(String("")), false},
		{"nonempty string", Own(String("x")), true},
	}
	for _, c := range cases {
		if got := Truthy(c.h); got != c.want {
			t.Errorf("%s: Truthy() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMethodResolutionWalksParentChain(t *testing.T) {
	a := NewClass("A", []*Method{
		{Name: "f", Params: nil, Body: constBody(Number(1))},
		{Name: "onlyOnA", Params: nil, Body: constBody(Number(9))},
	}, nil)
	b := NewClass("B", []*Method{{Name: "f", Params: nil, Body: constBody(Number(2))}}, a)

	if m, ok := b.GetMethod("f"); !ok || m.Body.(*constExecutor).v != Number(2) {
		t.Fatalf("B.f should resolve to B's own override")
	}
	if m, ok := b.GetMethod("onlyOnA"); !ok || m.Body.(*constExecutor).v != Number(9) {
		t.Fatalf("B.onlyOnA should resolve up the parent chain to A's")
	}
	if _, ok := b.GetMethod("neitherHasThis"); ok {
		t.Fatalf("expected no method found for a name defined on neither class")
	}
}

func TestInstanceCallBindsSelfAndParams(t *testing.T) {
	getV := &Method{Name: "getV", Params: nil, Body: selfFieldExecutor{"v"}}
	class := NewClass("X", []*Method{getV}, nil)
	inst := NewInstance(class)
	inst.Fields.Set("v", Own(Number(42)))

	ctx := NewContext(&bytes.Buffer{})
	result, err := inst.Call("getV", nil, ctx)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	n, ok := result.AsNumber()
	if !ok || n != 42 {
		t.Fatalf("got %v, want Number(42)", result)
	}
}

func TestInstanceCallArityMismatchIsRuntimeError(t *testing.T) {
	m := &Method{Name: "f", Params: []string{"a"}, Body: constBody(Number(0))}
	inst := NewInstance(NewClass("X", []*Method{m}, nil))
	if _, err := inst.Call("f", nil, NewContext(&bytes.Buffer{})); err == nil {
		t.Fatalf("expected a RuntimeError for arity mismatch")
	}
}

func TestEqualityAndOrdering(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	eq, err := Equal(Own(Number(3)), Own(Number(3)), ctx)
	if err != nil || !eq {
		t.Fatalf("Equal(3, 3) = %v, %v", eq, err)
	}
	lt, err := Less(Own(Number(3)), Own(Number(4)), ctx)
	if err != nil || !lt {
		t.Fatalf("Less(3, 4) = %v, %v", lt, err)
	}
	// Comparison consistency on primitives: Equal(a,b) iff neither a<b nor b<a.
	a, b := Own(Number(7)), Own(Number(7))
	eq2, _ := Equal(a, b, ctx)
	ltAB, _ := Less(a, b, ctx)
	ltBA, _ := Less(b, a, ctx)
	if eq2 != (!ltAB && !ltBA) {
		t.Fatalf("comparison consistency violated for equal numbers")
	}
}

func TestDivisionByZero(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	if _, err := Div(Own(Number(1)), Own(Number(0)), ctx); err == nil {
		t.Fatalf("expected a RuntimeError for division by zero")
	}
}

func TestAddStringsConcatenates(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	result, err := Add(Own(String("a")), Own(String("b")), ctx)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	s, ok := result.AsString()
	if !ok || s != "ab" {
		t.Fatalf("got %v, want String(ab)", result)
	}
}

func TestInstancePrintFallsBackToIdentityWithoutStr(t *testing.T) {
	inst := NewInstance(NewClass("Plain", nil, nil))
	var buf bytes.Buffer
	inst.Print(NewContext(&buf))
	if buf.Len() == 0 {
		t.Fatalf("expected some identity text to be printed")
	}
}

// constExecutor and selfFieldExecutor are minimal object.Executor
// implementations used only to exercise method dispatch without
// importing package ast (which would be a cycle, and which these tests
// have no need for).
type constExecutor struct{ v Object }

func (c *constExecutor) Execute(_ *Closure, _ *Context) (Holder, error) {
	return Own(c.v), nil
}

func constBody(v Object) Executor { return &constExecutor{v: v} }

type selfFieldExecutor struct{ field string }

func (s selfFieldExecutor) Execute(closure *Closure, _ *Context) (Holder, error) {
	self, _ := closure.Get("self")
	inst, _ := self.AsInstance()
	v, _ := inst.Fields.Get(s.field)
	return v, nil
}
