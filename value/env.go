package value

import (
	"strings"

	"jam/ast"
)

// Binding is one named slot of an environment frame.
type Binding struct {
	Var  *ast.Variable
	cell Cell
}

// NewValueBinding binds v to an already computed value.
func NewValueBinding(v *ast.Variable, val Value) *Binding {
	return &Binding{Var: v, cell: newValueCell(Strict, val)}
}

// NewSuspendedBinding binds v to susp; mode is ByName or ByNeed.
func NewSuspendedBinding(v *ast.Variable, susp Suspension, mode Mode) *Binding {
	return &Binding{Var: v, cell: newSuspendedCell(mode, susp)}
}

// NewPlaceholder makes an unfilled binding for a recursive let. It must be
// completed with Fill before its value is read.
func NewPlaceholder(v *ast.Variable, mode Mode) *Binding {
	return &Binding{Var: v, cell: Cell{mode: mode}}
}

// Value reads the binding, evaluating its suspension if the mode calls for it.
func (b *Binding) Value() Value { return b.cell.Get(b.Var.Name) }

// Fill completes a placeholder.
func (b *Binding) Fill(susp Suspension) { b.cell.Fill(susp) }

func (b *Binding) String() string {
	str := "[" + b.Var.Name + ", " + b.cell.mode.String()
	switch b.cell.state {
	case unfilled:
		str += ", unfilled"
	case evaluated:
		str += ", " + b.cell.val.Inspect()
	default:
		str += ", suspended"
	}
	return str + "]"
}

// Env is one frame of bindings plus the enclosing environment. Frames are
// never changed once built; only the bindings inside them are filled in.
type Env struct {
	Parent   *Env
	Bindings []*Binding
}

// EmptyEnv is the environment a program starts in.
var EmptyEnv = &Env{}

// Extend returns a new environment whose innermost frame is bindings.
func (e *Env) Extend(bindings []*Binding) *Env {
	return &Env{Parent: e, Bindings: bindings}
}

// Lookup returns the innermost binding of v, comparing variables by identity.
func (e *Env) Lookup(v *ast.Variable) (*Binding, bool) {
	for env := e; env != nil; env = env.Parent {
		for _, b := range env.Bindings {
			if b.Var == v {
				return b, true
			}
		}
	}
	return nil, false
}

// Get is Lookup followed by a read, raising an unbound variable error if v
// has no binding.
func (e *Env) Get(v *ast.Variable) Value {
	b, ok := e.Lookup(v)
	if !ok {
		Throw(UnboundVariable, "variable %s is unbound", v.Name)
	}
	return b.Value()
}

func (e *Env) String() string {
	var frames []string
	for env := e; env != nil && env != EmptyEnv; env = env.Parent {
		var bs []string
		for _, b := range env.Bindings {
			bs = append(bs, b.String())
		}
		frames = append(frames, "{"+strings.Join(bs, " ")+"}")
	}
	return strings.Join(frames, " ")
}
