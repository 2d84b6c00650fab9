package ast

import "minipy/object"

// ClassDefinition builds the Class named Name from Methods, resolving
// ParentName (if any) against the current closure, then binds Name to
// the freshly built class in that closure. Building the Class here
// rather than at parse time matches the value model's lifecycle: a
// class is constructed when its "class" statement executes, not when it
// is parsed, so a parent class only has to be bound by the time this
// statement runs, not by the time it is read.
type ClassDefinition struct {
	Name       string
	Methods    []*object.Method
	ParentName string
}

func (c *ClassDefinition) Execute(closure *object.Closure, ctx *object.Context) (object.Holder, error) {
	var parent *object.Class
	if c.ParentName != "" {
		parentHolder, ok := closure.Get(c.ParentName)
		if !ok {
			return object.None(), object.NewRuntimeError(c.ParentName, "undefined name")
		}
		p, ok := parentHolder.AsClass()
		if !ok {
			return object.None(), object.NewRuntimeError(c.ParentName, "parent is not a class")
		}
		parent = p
	}
	class := object.NewClass(c.Name, c.Methods, parent)
	holder := object.Share(class)
	closure.Set(c.Name, holder)
	return holder, nil
}

func (c *ClassDefinition) String() string {
	if c.ParentName != "" {
		return parenthesize("class " + c.Name + "(" + c.ParentName + ")")
	}
	return parenthesize("class " + c.Name)
}
