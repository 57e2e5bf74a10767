package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jam/eval"
	"jam/parser"
	"jam/value"
)

const appendY = `
let Y      := map f to
                let g := map x to f(map z1, z2 to (x(x))(z1, z2));
                in g(g);
    APPEND := map ap to
                map x, y to
                  if x = empty then y else cons(first(x), ap(rest(x), y));
    l      := cons(1, cons(2, cons(3, empty)));
in (Y(APPEND))(l, l)`

const appendLetRec = `
let append := map x, y to
                if x = empty then y else cons(first(x), append(rest(x), y));
    l      := cons(1, cons(2, cons(3, empty)));
in append(l, l)`

func evalCheck(t *testing.T, name, answer, program string, run func(*Interpreter) (value.Value, error)) {
	t.Helper()

	in, err := Parse(program)
	require.NoError(t, err, name)

	val, err := run(in)
	require.NoError(t, err, name)

	str, err := value.Show(val)
	require.NoError(t, err, name)
	assert.Equal(t, answer, str, name)
}

func TestNumberP(t *testing.T) {
	evalCheck(t, "numberP", "number?", "number?", (*Interpreter).ValueValue)
}

func TestMathOp(t *testing.T) {
	evalCheck(t, "mathOp", "18", "2 * 3 + 12", (*Interpreter).ValueValue)
}

func TestAppend(t *testing.T) {
	evalCheck(t, "append", "(1 2 3 1 2 3)", appendY, (*Interpreter).CallByValue)
}

func TestLetRec(t *testing.T) {
	evalCheck(t, "letRec", "(1 2 3 1 2 3)", appendLetRec, (*Interpreter).CallByValue)
}

func TestParseException(t *testing.T) {
	_, err := Parse(" 1 +")
	require.Error(t, err)
	_, ok := err.(*parser.SyntaxError)
	assert.True(t, ok, "got %T", err)
}

func TestEvalException(t *testing.T) {
	in, err := Parse("1 + number?")
	require.NoError(t, err)

	_, err = in.ValueValue()
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, value.TypeError, kind)
}

func TestForwardRefAllModes(t *testing.T) {
	in, err := Parse("let a := a; in a")
	require.NoError(t, err)

	for _, r := range in.EvalAll() {
		require.Error(t, r.Err, r.Mode.Name)
		kind, _ := value.KindOf(r.Err)
		assert.Equal(t, value.ForwardReference, kind, r.Mode.Name)
	}
}

func TestNamedEntryPoints(t *testing.T) {
	in, err := Parse(appendLetRec)
	require.NoError(t, err)

	entryPoints := map[string]func() (value.Value, error){
		"valueValue": in.ValueValue,
		"valueName":  in.ValueName,
		"valueNeed":  in.ValueNeed,
		"nameValue":  in.NameValue,
		"nameName":   in.NameName,
		"nameNeed":   in.NameNeed,
		"needValue":  in.NeedValue,
		"needName":   in.NeedName,
		"needNeed":   in.NeedNeed,
	}
	require.Len(t, entryPoints, len(Modes))

	for name, run := range entryPoints {
		m, ok := LookupMode(name)
		require.True(t, ok, name)

		val, err := run()
		require.NoError(t, err, name)
		direct, err := in.EvalMode(m)
		require.NoError(t, err, name)

		assert.Equal(t, "(1 2 3 1 2 3)", val.Inspect(), name)
		assert.Equal(t, val.Inspect(), direct.Inspect(), name)
	}

	_, ok := LookupMode("refValue")
	assert.False(t, ok)
}

func TestModeFor(t *testing.T) {
	for _, m := range Modes {
		found, ok := ModeFor(m.Binding, m.Cons)
		require.True(t, ok, m.Name)
		assert.Equal(t, m.Name, found.Name)
	}

	m, ok := ModeFor(eval.CallByNeed, eval.LazyName)
	require.True(t, ok)
	assert.Equal(t, "needName", m.Name)
}

// Terminating programs without infinite structures print the same under
// every mode.
func TestModesAgree(t *testing.T) {
	programs := map[string]string{
		appendY:      "(1 2 3 1 2 3)",
		appendLetRec: "(1 2 3 1 2 3)",
		"let fib := map n to if n < 2 then n else fib(n - 1) + fib(n - 2); in fib(15)": "610",
		`let map2 := map f, l to if l = empty then empty else cons(f(first(l)), map2(f, rest(l)));
		     range := map a, b to if a > b then empty else cons(a, range(a + 1, b));
		 in map2(map x to x * x, range(1, 5))`: "(1 4 9 16 25)",
		`let filter := map p, l to
		                if empty?(l) then empty
		                else if p(first(l)) then cons(first(l), filter(p, rest(l)))
		                else filter(p, rest(l));
		 in filter(map x to x / 2 * 2 = x, cons(1, cons(2, cons(3, cons(4, empty)))))`: "(2 4)",
		"let compose := map f, g to map x to f(g(x)); in (compose(map x to x + 1, map x to x * 2))(5)": "11",
		"cons(number?(1), cons(list?(empty), cons(arity(cons), empty)))":                               "(true true 2)",
		"let l := cons(cons(1, empty), empty); in first(first(l)) = 1 & rest(l) = empty":               "true",
	}

	for program, expected := range programs {
		in, err := Parse(program)
		require.NoError(t, err, program)

		for _, r := range in.EvalAll() {
			require.NoError(t, r.Err, "%s: %s", r.Mode.Name, program)
			str, err := value.Show(r.Value)
			require.NoError(t, err, "%s: %s", r.Mode.Name, program)
			assert.Equal(t, expected, str, "%s: %s", r.Mode.Name, program)
		}
	}
}

func TestIdempotence(t *testing.T) {
	in, err := Parse(`let from := map n to cons(n, from(n + 1));
	                      take := map n, l to if n = 0 then empty else cons(first(l), take(n - 1, rest(l)));
	                      xs   := take(3, from(1));
	                  in cons(first(xs), xs)`)
	require.NoError(t, err)

	for _, m := range Modes {
		if m.Cons.String() == "value" {
			// from never terminates with eager cons
			continue
		}

		first, err1 := in.EvalMode(m)
		second, err2 := in.EvalMode(m)
		require.NoError(t, err1, m.Name)
		require.NoError(t, err2, m.Name)
		s1, _ := value.Show(first)
		s2, _ := value.Show(second)
		assert.Equal(t, "(1 1 2 3)", s1, m.Name)
		assert.Equal(t, s1, s2, m.Name)
	}
}

func TestLongListTruncated(t *testing.T) {
	in, err := Parse("let ones := cons(1, ones); in ones")
	require.NoError(t, err)

	for _, m := range Modes {
		if m.Cons.String() == "value" {
			continue
		}
		val, err := in.EvalMode(m)
		require.NoError(t, err, m.Name)

		str, err := value.Show(val)
		require.NoError(t, err, m.Name)
		assert.True(t, strings.HasSuffix(str, " 1 ...)"), m.Name)
		assert.Equal(t, value.MaxPrintLength, strings.Count(str, "1"), m.Name)
	}

	in, err = Parse(`let range := map a, b to if a > b then empty else cons(a, range(a + 1, b));
	                 in range(1, 1500)`)
	require.NoError(t, err)
	val, err := in.ValueValue()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(val.Inspect(), " 1000 ...)"))
}
