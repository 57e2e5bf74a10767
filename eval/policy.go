package eval

import (
	"github.com/pkg/errors"

	"jam/ast"
	"jam/value"
)

// BindingPolicy decides how a variable bound by an application or a let is
// tied to its argument expression.
type BindingPolicy interface {
	// NewBinding binds v to arg, evaluated (now or later) by ev.
	NewBinding(v *ast.Variable, arg ast.Expr, ev *Evaluator) *value.Binding
	// NewPlaceholder makes an unfilled binding for a recursive let.
	NewPlaceholder(v *ast.Variable) *value.Binding
	String() string
}

type callByValue struct{}

func (callByValue) NewBinding(v *ast.Variable, arg ast.Expr, ev *Evaluator) *value.Binding {
	return value.NewValueBinding(v, ev.eval(arg))
}

func (callByValue) NewPlaceholder(v *ast.Variable) *value.Binding {
	return value.NewPlaceholder(v, value.Strict)
}

func (callByValue) String() string { return "value" }

// callByLazy covers call-by-name and call-by-need, which differ only in
// whether the binding's cell keeps the forced value.
type callByLazy struct {
	mode value.Mode
}

func (p callByLazy) NewBinding(v *ast.Variable, arg ast.Expr, ev *Evaluator) *value.Binding {
	return value.NewSuspendedBinding(v, ev.suspend(arg), p.mode)
}

func (p callByLazy) NewPlaceholder(v *ast.Variable) *value.Binding {
	return value.NewPlaceholder(v, p.mode)
}

func (p callByLazy) String() string { return p.mode.String() }

var (
	// CallByValue evaluates an argument once, before binding it.
	CallByValue BindingPolicy = callByValue{}
	// CallByName evaluates an argument every time the variable is read.
	CallByName BindingPolicy = callByLazy{mode: value.ByName}
	// CallByNeed evaluates an argument on the first read and reuses the result.
	CallByNeed BindingPolicy = callByLazy{mode: value.ByNeed}
)

// ConsPolicy decides how the two arguments of cons are evaluated.
type ConsPolicy interface {
	// EvalCons builds the list cell for cons(args[0], args[1]).
	EvalCons(args []ast.Expr, ev *Evaluator) value.Value
	String() string
}

type eagerCons struct{}

func (eagerCons) EvalCons(args []ast.Expr, ev *Evaluator) value.Value {
	head := ev.eval(args[0])
	tail := ev.eval(args[1])
	if !value.IsList(tail) {
		value.Throw(value.TypeError, "second argument %s to cons is not a list", value.Brief(tail))
	}
	return value.NewCons(head, tail)
}

func (eagerCons) String() string { return "value" }

type lazyCons struct {
	mode value.Mode
}

func (p lazyCons) EvalCons(args []ast.Expr, ev *Evaluator) value.Value {
	return value.NewLazyCons(ev.suspend(args[0]), ev.suspend(args[1]), p.mode)
}

func (p lazyCons) String() string { return p.mode.String() }

var (
	// Eager evaluates both arguments of cons immediately.
	Eager ConsPolicy = eagerCons{}
	// LazyName re-evaluates the head or tail every time it is accessed.
	LazyName ConsPolicy = lazyCons{mode: value.ByName}
	// LazyNeed evaluates the head and tail at most once each.
	LazyNeed ConsPolicy = lazyCons{mode: value.ByNeed}
)

// ParseBindingPolicy maps "value", "name" or "need" to a binding policy.
func ParseBindingPolicy(name string) (BindingPolicy, error) {
	switch name {
	case "value":
		return CallByValue, nil
	case "name":
		return CallByName, nil
	case "need":
		return CallByNeed, nil
	}
	return nil, errors.Errorf("unknown binding policy %q (want value, name or need)", name)
}

// ParseConsPolicy maps "value" (or "eager"), "name" (or "lazy-name") and
// "need" (or "lazy-need") to a cons policy.
func ParseConsPolicy(name string) (ConsPolicy, error) {
	switch name {
	case "value", "eager":
		return Eager, nil
	case "name", "lazy-name":
		return LazyName, nil
	case "need", "lazy-need":
		return LazyNeed, nil
	}
	return nil, errors.Errorf("unknown cons policy %q (want value, name or need)", name)
}
