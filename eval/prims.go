package eval

import (
	"jam/ast"
	"jam/value"
)

// applyPrimitive receives the arguments unevaluated so that cons can hand
// them to the cons policy; every other primitive evaluates its one argument.
func (ev *Evaluator) applyPrimitive(fn *value.Primitive, args []ast.Expr) value.Value {
	if len(args) != fn.Arity() {
		value.Throw(value.ArityError, "primitive function `%s' applied to %d arguments", fn.Prim, len(args))
	}

	if fn.Prim == ast.Cons {
		return ev.cons.EvalCons(args, ev)
	}

	arg := ev.eval(args[0])

	switch fn.Prim {
	case ast.FunctionP:
		return value.ToBool(value.IsFunction(arg))
	case ast.NumberP:
		return value.ToBool(arg.Class() == value.IntClass)
	case ast.ListP:
		return value.ToBool(value.IsList(arg))
	case ast.ConsP:
		return value.ToBool(arg.Class() == value.ConsClass)
	case ast.EmptyP:
		return value.ToBool(arg.Class() == value.EmptyClass)
	case ast.Arity:
		return evalArity(arg)
	case ast.First:
		return checkCons(arg, fn.Prim).First()
	case ast.Rest:
		return checkCons(arg, fn.Prim).Rest()
	}

	panic("eval: unhandled primitive " + fn.Prim.String())
}

func evalArity(arg value.Value) value.Value {
	switch fn := arg.(type) {
	case *value.Closure:
		return value.NewInt(int64(fn.Arity()))
	case *value.Primitive:
		return value.NewInt(int64(fn.Arity()))
	}

	value.Throw(value.TypeError, "primitive function `arity' applied to non-function %s", value.Brief(arg))
	return nil
}

func checkCons(arg value.Value, prim ast.Prim) *value.Cons {
	c, ok := arg.(*value.Cons)
	if !ok {
		value.Throw(value.TypeError, "primitive function `%s' applied to argument %s that is not a cons", prim, value.Brief(arg))
	}
	return c
}
