package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jam/ast"
)

func TestExprs(t *testing.T) {
	exprTests := []struct {
		input string
		value string
	}{
		{"5  ", "5"},
		{"true ", "true"},
		{"false", "false"},
		{"empty", "empty"},
		{"foo ", "foo"},
		{"(bar)", "bar"},
		{"number?", "number?"},
		{"cons(1, empty)", "cons(1, empty)"},

		{"-90210", "- 90210"},
		{"+bar  ", "+ bar"},
		{"~true ", "~ true"},
		{"~~foo", "~ ~ foo"},

		{"x+1", "(x + 1)"},
		{"a+b+c", "((a + b) + c)"},
		{"a-b-c", "((a - b) - c)"},
		{"a+b*c", "(a + (b * c))"},
		{"a*b+c", "((a * b) + c)"},
		{"a/b*c", "((a / b) * c)"},
		{"2 * 3 + 12", "((2 * 3) + 12)"},
		{"a&b|c", "((a & b) | c)"},
		{"a|b&c", "(a | (b & c))"},
		{"a+1 <= b*2 & c != d", "(((a + 1) <= (b * 2)) & (c != d))"},
		{"x = empty", "(x = empty)"},
		{"-a * b", "(- a * b)"},

		{"map x to 0", "map x to 0"},
		{"map to 0", "map  to 0"},
		{"map x, y to x + y", "map x,y to (x + y)"},
		{"map f to map x to f(f(x))", "map f to map x to f(f(x))"},
		{"f()", "f()"},
		{"f(1)(2, 3)", "f(1)(2, 3)"},
		{"(map x to x)(3)", "map x to x(3)"},

		{"if x < 0 then -x else x", "if (x < 0) then - x else x"},
		{"let a := 4; in a + 1", "let a := 4; in (a + 1)"},
		{"let a := 1; b := a; in let c := b; in c", "let a := 1; b := a; in let c := b; in c"},
		{"// comment\n  1 // more\n", "1"},
	}

	for _, tt := range exprTests {
		expr, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("parse error for %q: %v", tt.input, err)
		}

		if expr.String() != tt.value {
			t.Errorf("program.String() wrong for %q. expected=%q, got=%q", tt.input, tt.value, expr.String())
		}
	}
}

func TestVariablesAreInterned(t *testing.T) {
	expr, err := Parse("let x := 1; in map x to x")
	require.NoError(t, err)

	let := expr.(*ast.Let)
	m := let.Body.(*ast.Map)

	assert.Same(t, let.Defs[0].Var, m.Params[0])
	assert.Same(t, m.Params[0], m.Body)
}

func TestPrimitives(t *testing.T) {
	for p := ast.Prim(0); p < ast.NumPrims; p++ {
		expr, err := Parse(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, expr.(*ast.PrimFun).Prim)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []string{
		" 1 +",
		"let in 5",
		"let a := 1 in a",
		"let a := 1; a := 2; in a",
		"map x, x to x",
		"map x y to x",
		"if true then 1",
		"(1",
		"1 2",
		"f(1,)",
		"f(,1)",
		"let 3 := 1; in 3",
		"#",
		"99999999999999999999",
		"",
	}

	for _, input := range tests {
		expr, err := Parse(input)
		if err == nil {
			t.Errorf("expected a syntax error for %q, got %v", input, expr)
			continue
		}
		_, ok := err.(*SyntaxError)
		assert.True(t, ok, "%q: wrong error type %T", input, err)
	}
}

func TestSyntaxErrorLine(t *testing.T) {
	_, err := Parse("let a := 1;\n    b := ;\nin a")
	require.Error(t, err)
	assert.Equal(t, 2, err.(*SyntaxError).Line)
	assert.Contains(t, err.Error(), "line 2")
}
