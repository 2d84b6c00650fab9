package object

import "fmt"

// RuntimeError is raised by the value model and the evaluator: missing
// bindings, missing methods, arity mismatches, type mismatches in
// arithmetic/comparison/logic, division by zero, bad field-assignment
// targets. It is fatal to the execution that raised it and is never
// caught from within the guest language. It is keyed by a site
// description rather than a token, since the value model has no token at
// this layer.
type RuntimeError struct {
	Site string
	Msg  string
}

func (e *RuntimeError) Error() string {
	if e.Site == "" {
		return fmt.Sprintf("runtime error: %s", e.Msg)
	}
	return fmt.Sprintf("runtime error at '%s': %s", e.Site, e.Msg)
}

// NewRuntimeError builds a RuntimeError, formatting Msg the way
// fmt.Sprintf does.
func NewRuntimeError(site, format string, args ...any) *RuntimeError {
	return &RuntimeError{Site: site, Msg: fmt.Sprintf(format, args...)}
}
