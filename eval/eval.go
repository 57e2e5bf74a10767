package eval

import (
	"fmt"

	"jam/ast"
	"jam/value"
)

// Evaluator evaluates expressions in one environment under one pair of
// policies. Descending into a closure body or a let body makes a new
// Evaluator with the extended environment; the policies never change.
type Evaluator struct {
	env     *value.Env
	binding BindingPolicy
	cons    ConsPolicy
}

// New returns an Evaluator over the empty environment.
func New(bp BindingPolicy, cp ConsPolicy) *Evaluator {
	return &Evaluator{env: value.EmptyEnv, binding: bp, cons: cp}
}

func (ev *Evaluator) withEnv(env *value.Env) *Evaluator {
	return &Evaluator{env: env, binding: ev.binding, cons: ev.cons}
}

func (ev *Evaluator) Env() *value.Env { return ev.env }

func (ev *Evaluator) String() string {
	return fmt.Sprintf("%s/%s %v", ev.binding, ev.cons, ev.env)
}

// Eval evaluates expr. Any evaluation error aborts the whole computation and
// is returned as a *value.EvalError.
func (ev *Evaluator) Eval(expr ast.Expr) (val value.Value, err error) {
	defer value.Catch(&err)
	return ev.eval(expr), nil
}

func (ev *Evaluator) eval(someExpr ast.Expr) value.Value {
	switch expr := someExpr.(type) {
	case *ast.IntConstant:
		return value.NewInt(expr.Value)
	case *ast.BoolConstant:
		return value.ToBool(expr.Value)
	case *ast.EmptyConstant:
		return value.Empty
	case *ast.Variable:
		return ev.env.Get(expr)
	case *ast.PrimFun:
		return value.PrimitiveFor(expr.Prim)
	case *ast.UnOpApp:
		return ev.evalUnOpApp(expr)
	case *ast.BinOpApp:
		return ev.evalBinOpApp(expr)
	case *ast.App:
		return ev.evalApp(expr)
	case *ast.Map:
		return &value.Closure{Map: expr, Env: ev.env}
	case *ast.If:
		return ev.evalIf(expr)
	case *ast.Let:
		return ev.evalLet(expr)
	}

	panic(fmt.Sprintf("eval: unhandled expression %v of type %T", someExpr, someExpr))
}

// suspend captures expr with this evaluator's environment and policies.
func (ev *Evaluator) suspend(expr ast.Expr) value.Suspension {
	return &suspension{expr: expr, ev: ev}
}

type suspension struct {
	expr ast.Expr
	ev   *Evaluator
}

func (s *suspension) Force() value.Value { return s.ev.eval(s.expr) }
func (s *suspension) String() string     { return "<" + s.expr.String() + ">" }

func (ev *Evaluator) evalIf(expr *ast.If) value.Value {
	test := ev.eval(expr.Test)
	b, ok := test.(*value.Bool)
	if !ok {
		value.Throw(value.TypeError, "non-boolean %s used as test in if", value.Brief(test))
	}
	if b.Value {
		return ev.eval(expr.Conseq)
	}
	return ev.eval(expr.Alt)
}

func (ev *Evaluator) evalApp(expr *ast.App) value.Value {
	rator := ev.eval(expr.Rator)

	switch fn := rator.(type) {
	case *value.Closure:
		return ev.applyClosure(fn, expr.Args)
	case *value.Primitive:
		return ev.applyPrimitive(fn, expr.Args)
	}

	value.Throw(value.TypeError, "%s appears at head of application %s but it is not a function", value.Brief(rator), expr)
	return nil
}

// applyClosure binds the formals to the unevaluated args in one new frame on
// top of the closure's environment, not the caller's.
func (ev *Evaluator) applyClosure(fn *value.Closure, args []ast.Expr) value.Value {
	params := fn.Map.Params
	if len(params) != len(args) {
		value.Throw(value.ArityError, "closure %s of arity %d applied to %d arguments", fn.Inspect(), len(params), len(args))
	}

	bindings := make([]*value.Binding, len(params))
	for i, param := range params {
		bindings[i] = ev.binding.NewBinding(param, args[i], ev)
	}

	return ev.withEnv(fn.Env.Extend(bindings)).eval(fn.Map.Body)
}

// evalLet builds the whole frame from placeholders first, so every
// right-hand side is suspended over the same extended environment and can
// refer to any variable of the let, itself included.
func (ev *Evaluator) evalLet(expr *ast.Let) value.Value {
	bindings := make([]*value.Binding, len(expr.Defs))
	for i, def := range expr.Defs {
		bindings[i] = ev.binding.NewPlaceholder(def.Var)
	}

	newEv := ev.withEnv(ev.env.Extend(bindings))
	for i, def := range expr.Defs {
		bindings[i].Fill(newEv.suspend(def.Rhs))
	}

	return newEv.eval(expr.Body)
}
