package object

import "strconv"

// Number is a 32-bit signed integer value, the only numeric type the
// guest language has — floating-point arithmetic is out of scope.
type Number int32

func (n Number) Print(ctx *Context) { ctx.Output().Write([]byte(strconv.Itoa(int(n)))) }

// String is an immutable byte string.
type String string

func (s String) Print(ctx *Context) { ctx.Output().Write([]byte(s)) }

// Bool prints as the guest spellings True/False, not Go's true/false.
type Bool bool

func (b Bool) Print(ctx *Context) {
	if b {
		ctx.Output().Write([]byte("True"))
		return
	}
	ctx.Output().Write([]byte("False"))
}
