// Package ast implements the guest language's node contracts from the
// value model's Executor interface. It depends on package object for the
// value model (Closure, Context, Holder) but object never depends on it
// back; Method.Body is typed as object.Executor and every node here
// satisfies that interface structurally.
package ast

import "minipy/object"

// Node is the shape every AST node implements: evaluate against a closure
// and a context, producing a holder or failing with an error. It is
// exactly object.Executor under a name local to this package.
type Node = object.Executor
