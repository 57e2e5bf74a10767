// Package interp evaluates one parsed Jam program nine different ways: every
// pairing of a binding policy (call-by-value, -name, -need) with a cons
// policy (eager, lazy by name, lazy by need).
package interp

import (
	"github.com/golang/glog"

	"jam/ast"
	"jam/eval"
	"jam/parser"
	"jam/value"
)

// Mode is one (binding policy, cons policy) pair.
type Mode struct {
	Name    string
	Binding eval.BindingPolicy
	Cons    eval.ConsPolicy
}

// Modes lists the nine evaluation modes, binding policy major.
var Modes = []Mode{
	{"valueValue", eval.CallByValue, eval.Eager},
	{"valueName", eval.CallByValue, eval.LazyName},
	{"valueNeed", eval.CallByValue, eval.LazyNeed},
	{"nameValue", eval.CallByName, eval.Eager},
	{"nameName", eval.CallByName, eval.LazyName},
	{"nameNeed", eval.CallByName, eval.LazyNeed},
	{"needValue", eval.CallByNeed, eval.Eager},
	{"needName", eval.CallByNeed, eval.LazyName},
	{"needNeed", eval.CallByNeed, eval.LazyNeed},
}

// LookupMode finds a mode by its name, e.g. "nameNeed".
func LookupMode(name string) (Mode, bool) {
	for _, m := range Modes {
		if m.Name == name {
			return m, true
		}
	}
	return Mode{}, false
}

// ModeFor finds the mode pairing bp with cp.
func ModeFor(bp eval.BindingPolicy, cp eval.ConsPolicy) (Mode, bool) {
	for _, m := range Modes {
		if m.Binding == bp && m.Cons == cp {
			return m, true
		}
	}
	return Mode{}, false
}

// Interpreter holds a parsed program. It keeps no state between runs, so
// every method can be called any number of times.
type Interpreter struct {
	prog ast.Expr
}

func New(prog ast.Expr) *Interpreter {
	return &Interpreter{prog: prog}
}

// Parse parses input and returns an Interpreter for it, or a
// *parser.SyntaxError.
func Parse(input string) (*Interpreter, error) {
	prog, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return New(prog), nil
}

func (i *Interpreter) Program() ast.Expr { return i.prog }

// Eval runs the program under an arbitrary pair of policies.
func (i *Interpreter) Eval(bp eval.BindingPolicy, cp eval.ConsPolicy) (value.Value, error) {
	glog.V(5).Infof("evaluating program under binding=%s cons=%s", bp, cp)

	val, err := eval.New(bp, cp).Eval(i.prog)
	if err != nil {
		glog.V(5).Infof("evaluation under binding=%s cons=%s failed: %v", bp, cp, err)
		return nil, err
	}
	return val, nil
}

// EvalMode runs the program under m.
func (i *Interpreter) EvalMode(m Mode) (value.Value, error) { return i.Eval(m.Binding, m.Cons) }

func (i *Interpreter) ValueValue() (value.Value, error) { return i.Eval(eval.CallByValue, eval.Eager) }
func (i *Interpreter) ValueName() (value.Value, error)  { return i.Eval(eval.CallByValue, eval.LazyName) }
func (i *Interpreter) ValueNeed() (value.Value, error)  { return i.Eval(eval.CallByValue, eval.LazyNeed) }
func (i *Interpreter) NameValue() (value.Value, error)  { return i.Eval(eval.CallByName, eval.Eager) }
func (i *Interpreter) NameName() (value.Value, error)   { return i.Eval(eval.CallByName, eval.LazyName) }
func (i *Interpreter) NameNeed() (value.Value, error)   { return i.Eval(eval.CallByName, eval.LazyNeed) }
func (i *Interpreter) NeedValue() (value.Value, error)  { return i.Eval(eval.CallByNeed, eval.Eager) }
func (i *Interpreter) NeedName() (value.Value, error)   { return i.Eval(eval.CallByNeed, eval.LazyName) }
func (i *Interpreter) NeedNeed() (value.Value, error)   { return i.Eval(eval.CallByNeed, eval.LazyNeed) }

// CallByValue, CallByName and CallByNeed pair a binding policy with eager cons.
func (i *Interpreter) CallByValue() (value.Value, error) { return i.ValueValue() }
func (i *Interpreter) CallByName() (value.Value, error)  { return i.NameValue() }
func (i *Interpreter) CallByNeed() (value.Value, error)  { return i.NeedValue() }

// Result is the outcome of one mode in EvalAll.
type Result struct {
	Mode  Mode
	Value value.Value
	Err   error
}

// EvalAll runs the program under all nine modes, in Modes order.
func (i *Interpreter) EvalAll() []Result {
	results := make([]Result, len(Modes))
	for n, m := range Modes {
		val, err := i.EvalMode(m)
		results[n] = Result{Mode: m, Value: val, Err: err}
	}
	return results
}
