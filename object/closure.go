package object

// Closure is a flat mapping from identifier to holder: a method's
// activation frame, or a class instance's field table. Nothing in the
// value model chains closures to an enclosing one — method bodies see
// only self, their own parameters, and whatever they bind locally, and
// If/Compound do not introduce their own scope — so there is no parent
// pointer to walk.
type Closure struct {
	vars map[string]Holder
}

// NewClosure returns an empty closure.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]Holder)}
}

// Get looks up name directly in this closure.
func (c *Closure) Get(name string) (Holder, bool) {
	h, ok := c.vars[name]
	return h, ok
}

// Set binds name to h, overwriting any existing binding.
func (c *Closure) Set(name string, h Holder) {
	c.vars[name] = h
}
