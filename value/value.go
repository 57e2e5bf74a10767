package value

import (
	"strconv"
	"strings"

	"jam/ast"
)

// Class is the runtime type of a Value.
type Class int

const (
	IntClass Class = iota
	BoolClass
	EmptyClass
	ConsClass
	ClosureClass
	PrimitiveClass
)

type Value interface {
	Class() Class
	Inspect() string
}

// IsList reports whether v is Empty or a Cons.
func IsList(v Value) bool {
	c := v.Class()
	return c == EmptyClass || c == ConsClass
}

// IsFunction reports whether v is a Closure or a Primitive.
func IsFunction(v Value) bool {
	c := v.Class()
	return c == ClosureClass || c == PrimitiveClass
}

type Int struct {
	Value int64
}

func NewInt(i int64) *Int { return &Int{Value: i} }

func (i *Int) Class() Class    { return IntClass }
func (i *Int) Inspect() string { return strconv.FormatInt(i.Value, 10) }

type Bool struct {
	Value bool
}

func (b *Bool) Class() Class    { return BoolClass }
func (b *Bool) Inspect() string { return strconv.FormatBool(b.Value) }

var True = &Bool{true}
var False = &Bool{false}

// ToBool returns the singleton for b.
func ToBool(b bool) *Bool {
	if b {
		return True
	}
	return False
}

type EmptyList struct{}

func (e *EmptyList) Class() Class    { return EmptyClass }
func (e *EmptyList) Inspect() string { return "()" }

var Empty = &EmptyList{}

// Closure is a Map together with the environment it was evaluated in.
type Closure struct {
	Map *ast.Map
	Env *Env
}

func (c *Closure) Class() Class    { return ClosureClass }
func (c *Closure) Inspect() string { return "(closure: " + c.Map.String() + ")" }
func (c *Closure) Arity() int      { return len(c.Map.Params) }

type Primitive struct {
	Prim  ast.Prim
	arity int
}

func (p *Primitive) Class() Class    { return PrimitiveClass }
func (p *Primitive) Inspect() string { return p.Prim.String() }
func (p *Primitive) Arity() int      { return p.arity }

var primitives [ast.NumPrims]*Primitive

func init() {
	for p := ast.Prim(0); p < ast.NumPrims; p++ {
		arity := 1
		if p == ast.Cons {
			arity = 2
		}
		primitives[p] = &Primitive{Prim: p, arity: arity}
	}
}

// PrimitiveFor returns the singleton Primitive value for p.
func PrimitiveFor(p ast.Prim) *Primitive { return primitives[p] }

// MaxPrintLength bounds how many elements of a list are printed (and, for a
// lazy list, forced) before the rest is elided.
const MaxPrintLength = 1000

// Ellipsis replaces the elements beyond MaxPrintLength.
const Ellipsis = "..."

func inspectList(c *Cons) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(c.First().Inspect())

	var list Value = c.Rest()
	for n := 1; list != Empty; n++ {
		if n == MaxPrintLength {
			sb.WriteString(" " + Ellipsis)
			break
		}
		cons := list.(*Cons)
		sb.WriteString(" ")
		sb.WriteString(cons.First().Inspect())
		list = cons.Rest()
	}

	sb.WriteString(")")
	return sb.String()
}

// Show renders v, reporting evaluation errors raised while forcing lazy list
// elements instead of unwinding.
func Show(v Value) (str string, err error) {
	defer Catch(&err)
	return v.Inspect(), nil
}

// Brief renders v for an error message without forcing anything lazy.
func Brief(v Value) string {
	if v.Class() == ConsClass {
		return "a non-empty list"
	}
	return v.Inspect()
}
