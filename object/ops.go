package object

// Equal: empty==empty is true, a matching primitive pair compares by
// value, otherwise an instance with __eq__/1 is dispatched and its result
// coerced to bool, otherwise it's a RuntimeError.
func Equal(a, b Holder, ctx *Context) (bool, error) {
	if a.IsEmpty() && b.IsEmpty() {
		return true, nil
	}
	if an, ok := a.AsNumber(); ok {
		if bn, ok := b.AsNumber(); ok {
			return an == bn, nil
		}
	}
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			return as == bs, nil
		}
	}
	if ab, ok := a.AsBool(); ok {
		if bb, ok := b.AsBool(); ok {
			return ab == bb, nil
		}
	}
	if inst, ok := a.AsInstance(); ok && inst.Class.HasMethod("__eq__", 1) {
		result, err := inst.Call("__eq__", []Holder{b}, ctx)
		if err != nil {
			return false, err
		}
		return Truthy(result), nil
	}
	return false, NewRuntimeError("==", "cannot compare these operands for equality")
}

// Less: matching primitives compare natively, otherwise __lt__/1 on the
// left operand is dispatched.
func Less(a, b Holder, ctx *Context) (bool, error) {
	if an, ok := a.AsNumber(); ok {
		if bn, ok := b.AsNumber(); ok {
			return an < bn, nil
		}
	}
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			return as < bs, nil
		}
	}
	if ab, ok := a.AsBool(); ok {
		if bb, ok := b.AsBool(); ok {
			return bool(!ab && bb), nil
		}
	}
	if inst, ok := a.AsInstance(); ok && inst.Class.HasMethod("__lt__", 1) {
		result, err := inst.Call("__lt__", []Holder{b}, ctx)
		if err != nil {
			return false, err
		}
		return Truthy(result), nil
	}
	return false, NewRuntimeError("<", "cannot order these operands")
}

// NotEqual, Greater, LessOrEqual, GreaterOrEqual are derived boolean
// combinations of Equal/Less.
func NotEqual(a, b Holder, ctx *Context) (bool, error) {
	eq, err := Equal(a, b, ctx)
	return !eq, err
}

func Greater(a, b Holder, ctx *Context) (bool, error) {
	return Less(b, a, ctx)
}

func LessOrEqual(a, b Holder, ctx *Context) (bool, error) {
	gt, err := Less(b, a, ctx)
	return !gt, err
}

func GreaterOrEqual(a, b Holder, ctx *Context) (bool, error) {
	lt, err := Less(a, b, ctx)
	return !lt, err
}

// Add: two Numbers add, two Strings concatenate, an instance with
// __add__/1 on the left is dispatched, everything else is a RuntimeError.
func Add(a, b Holder, ctx *Context) (Holder, error) {
	if an, ok := a.AsNumber(); ok {
		if bn, ok := b.AsNumber(); ok {
			return Own(an + bn), nil
		}
	}
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			return Own(as + bs), nil
		}
	}
	if inst, ok := a.AsInstance(); ok && inst.Class.HasMethod("__add__", 1) {
		return inst.Call("__add__", []Holder{b}, ctx)
	}
	return None(), NewRuntimeError("+", "unsupported operand types")
}

func Sub(a, b Holder, _ *Context) (Holder, error) { return numericOp(a, b, "-", func(x, y Number) Number { return x - y }) }
func Mult(a, b Holder, _ *Context) (Holder, error) {
	return numericOp(a, b, "*", func(x, y Number) Number { return x * y })
}

// Div rejects division by zero; every other numeric pairing divides.
func Div(a, b Holder, _ *Context) (Holder, error) {
	an, aok := a.AsNumber()
	bn, bok := b.AsNumber()
	if !aok || !bok {
		return None(), NewRuntimeError("/", "unsupported operand types")
	}
	if bn == 0 {
		return None(), NewRuntimeError("/", "division by zero")
	}
	return Own(an / bn), nil
}

func numericOp(a, b Holder, site string, op func(Number, Number) Number) (Holder, error) {
	an, aok := a.AsNumber()
	bn, bok := b.AsNumber()
	if !aok || !bok {
		return None(), NewRuntimeError(site, "unsupported operand types")
	}
	return Own(op(an, bn)), nil
}
