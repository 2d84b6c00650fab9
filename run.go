// Package minipy wires the lexer, parser, and evaluator behind a small
// embedding API, as a reusable library entry point rather than having
// the wiring folded directly into the CLI.
package minipy

import (
	"minipy/ast"
	"minipy/object"
	"minipy/parser"
)

// Run tokenizes, parses, and executes source against a fresh empty
// Closure and ctx. It returns the first *lexer.Error, *parser.Error, or
// *object.RuntimeError encountered; guest output has already been
// written to ctx's sink by the time an error (if any) comes back.
//
// A return statement that escapes every method body is deliberately
// turned into a RuntimeError here rather than accepted as the program's
// result.
func Run(source string, ctx *object.Context) error {
	return execute(source, object.NewClosure(), ctx)
}

// Session keeps a single Closure alive across repeated calls to Run, so
// names bound by one chunk of source are visible to the next — what the
// REPL in cmd/minipy needs to feel like one continuous program instead of
// restarting from empty globals on every line.
type Session struct {
	closure *object.Closure
}

// NewSession starts a session with a fresh, empty Closure.
func NewSession() *Session {
	return &Session{closure: object.NewClosure()}
}

// Run parses source and executes it against the session's closure,
// carrying forward any bindings it leaves behind to the next call.
func (s *Session) Run(source string, ctx *object.Context) error {
	return execute(source, s.closure, ctx)
}

func execute(source string, closure *object.Closure, ctx *object.Context) error {
	prog, err := parser.Parse(source)
	if err != nil {
		return err
	}
	_, err = prog.Execute(closure, ctx)
	if err == nil {
		return nil
	}
	if _, ok := ast.AsReturnSignal(err); ok {
		return object.NewRuntimeError("return", "return statement used outside of any method body")
	}
	return err
}
