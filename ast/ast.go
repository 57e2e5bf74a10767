package ast

import (
	"strconv"
	"strings"
)

// Expr is any node of a parsed Jam program.
type Expr interface {
	exprNode()
	String() string
}

type IntConstant struct {
	Value int64
}

func (e *IntConstant) exprNode()      {}
func (e *IntConstant) String() string { return strconv.FormatInt(e.Value, 10) }

type BoolConstant struct {
	Value bool
}

func (e *BoolConstant) exprNode()      {}
func (e *BoolConstant) String() string { return strconv.FormatBool(e.Value) }

var TrueConstant = &BoolConstant{Value: true}
var FalseConstant = &BoolConstant{Value: false}

type EmptyConstant struct{}

func (e *EmptyConstant) exprNode()      {}
func (e *EmptyConstant) String() string { return "empty" }

var Empty = &EmptyConstant{}

// Variable is compared by identity: the parser hands out exactly one
// *Variable per name, so lookups never compare strings.
type Variable struct {
	Name string
}

func (e *Variable) exprNode()      {}
func (e *Variable) String() string { return e.Name }

// PrimFun is a reference to a primitive function in operator or value position.
type PrimFun struct {
	Prim Prim
}

func (e *PrimFun) exprNode()      {}
func (e *PrimFun) String() string { return e.Prim.String() }

type UnOpApp struct {
	Op  UnOp
	Arg Expr
}

func (e *UnOpApp) exprNode()      {}
func (e *UnOpApp) String() string { return e.Op.String() + " " + e.Arg.String() }

type BinOpApp struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (e *BinOpApp) exprNode() {}
func (e *BinOpApp) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// App applies Rator to Args. Args are handed over unevaluated; the binding
// or cons policy decides when they run.
type App struct {
	Rator Expr
	Args  []Expr
}

func (e *App) exprNode() {}
func (e *App) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return e.Rator.String() + "(" + strings.Join(args, ", ") + ")"
}

// Map is a lambda: `map x, y to body`.
type Map struct {
	Params []*Variable
	Body   Expr
}

func (e *Map) exprNode() {}
func (e *Map) String() string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.Name
	}
	return "map " + strings.Join(params, ",") + " to " + e.Body.String()
}

type If struct {
	Test   Expr
	Conseq Expr
	Alt    Expr
}

func (e *If) exprNode() {}
func (e *If) String() string {
	return "if " + e.Test.String() + " then " + e.Conseq.String() + " else " + e.Alt.String()
}

type Def struct {
	Var *Variable
	Rhs Expr
}

func (d *Def) String() string { return d.Var.Name + " := " + d.Rhs.String() + ";" }

// Let is parallel and recursive: every Rhs sees every Var of the same Let.
type Let struct {
	Defs []*Def
	Body Expr
}

func (e *Let) exprNode() {}
func (e *Let) String() string {
	str := "let"
	for _, d := range e.Defs {
		str += " " + d.String()
	}
	return str + " in " + e.Body.String()
}
