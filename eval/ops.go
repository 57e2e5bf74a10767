package eval

import (
	"jam/ast"
	"jam/value"
)

func (ev *Evaluator) evalUnOpApp(expr *ast.UnOpApp) value.Value {
	val := ev.eval(expr.Arg)

	switch expr.Op {
	case ast.UnPlus:
		return checkInt(val, "unary operator", expr.Op.String())
	case ast.UnMinus:
		return value.NewInt(-checkInt(val, "unary operator", expr.Op.String()).Value)
	case ast.Not:
		return value.ToBool(!checkBool(val, "unary operator", expr.Op.String()).Value)
	}

	panic("eval: unhandled unary operator " + expr.Op.String())
}

func (ev *Evaluator) evalBinOpApp(expr *ast.BinOpApp) value.Value {
	op := expr.Op

	switch op {
	case ast.Equals, ast.NotEquals:
		l := ev.eval(expr.Left)
		r := ev.eval(expr.Right)
		return value.ToBool(value.Equal(l, r) == (op == ast.Equals))

	case ast.And:
		if !ev.evalBool(expr.Left, op) {
			return value.False
		}
		return value.ToBool(ev.evalBool(expr.Right, op))

	case ast.Or:
		if ev.evalBool(expr.Left, op) {
			return value.True
		}
		return value.ToBool(ev.evalBool(expr.Right, op))
	}

	l := ev.evalInt(expr.Left, op)
	r := ev.evalInt(expr.Right, op)

	switch op {
	case ast.Plus:
		return value.NewInt(l + r)
	case ast.Minus:
		return value.NewInt(l - r)
	case ast.Times:
		return value.NewInt(l * r)
	case ast.Divide:
		if r == 0 {
			value.Throw(value.DivideByZero, "attempt to divide %d by zero", l)
		}
		return value.NewInt(l / r)
	case ast.LessThan:
		return value.ToBool(l < r)
	case ast.GreaterThan:
		return value.ToBool(l > r)
	case ast.LessThanEquals:
		return value.ToBool(l <= r)
	case ast.GreaterThanEquals:
		return value.ToBool(l >= r)
	}

	panic("eval: unhandled binary operator " + op.String())
}

func (ev *Evaluator) evalInt(expr ast.Expr, op ast.BinOp) int64 {
	return checkInt(ev.eval(expr), "binary operator", op.String()).Value
}

func (ev *Evaluator) evalBool(expr ast.Expr, op ast.BinOp) bool {
	return checkBool(ev.eval(expr), "binary operator", op.String()).Value
}

func checkInt(val value.Value, kind, op string) *value.Int {
	i, ok := val.(*value.Int)
	if !ok {
		value.Throw(value.TypeError, "%s `%s' applied to non-integer %s", kind, op, value.Brief(val))
	}
	return i
}

func checkBool(val value.Value, kind, op string) *value.Bool {
	b, ok := val.(*value.Bool)
	if !ok {
		value.Throw(value.TypeError, "%s `%s' applied to non-boolean %s", kind, op, value.Brief(val))
	}
	return b
}
