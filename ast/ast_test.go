package ast

import (
	"testing"
)

func TestString(t *testing.T) {
	x := &Variable{Name: "x"}
	y := &Variable{Name: "y"}
	f := &Variable{Name: "f"}

	expr := &Let{
		Defs: []*Def{{
			Var: f,
			Rhs: &Map{
				Params: []*Variable{x, y},
				Body:   &BinOpApp{Op: Plus, Left: x, Right: &UnOpApp{Op: UnMinus, Arg: y}},
			},
		}},
		Body: &If{
			Test:   TrueConstant,
			Conseq: &App{Rator: f, Args: []Expr{&IntConstant{Value: 1}, &IntConstant{Value: 2}}},
			Alt:    &App{Rator: &PrimFun{Prim: Cons}, Args: []Expr{&IntConstant{Value: 3}, Empty}},
		},
	}

	expected := "let f := map x,y to (x + - y); in if true then f(1, 2) else cons(3, empty)"
	if expr.String() != expected {
		t.Errorf("expr.String() wrong. got=%q", expr.String())
	}
}

func TestLookupPrim(t *testing.T) {
	for p := Prim(0); p < NumPrims; p++ {
		got, ok := LookupPrim(p.String())
		if !ok || got != p {
			t.Errorf("LookupPrim(%q) = %v, %v", p.String(), got, ok)
		}
	}

	if _, ok := LookupPrim("null?"); ok {
		t.Errorf("null? is not a primitive")
	}
}
