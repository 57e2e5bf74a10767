package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"jam/interp"
)

func init() {
	color.NoColor = true
}

func TestStart(t *testing.T) {
	in := strings.NewReader("2 * 3 + 12\n\nlet a := a; in a\n1 +\n:quit\n99\n")
	var out bytes.Buffer

	Start(in, &out, interp.Modes[0])

	lines := strings.Split(out.String(), PROMPT)
	assert.Equal(t, []string{
		"",
		"18\n",
		"",
		"forward reference: attempt to evaluate a before it is defined, indicating an illegal forward reference\n",
		"   syntax error: line 1: unexpected end of input\n",
		"",
	}, lines)
}

func TestModeCommands(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, interp.Modes[0])

	assert.False(t, r.Exec(":mode nameNeed"))
	assert.Equal(t, "nameNeed", r.mode.Name)

	out.Reset()
	r.Exec("(map x to 1)(1 / 0)")
	assert.Equal(t, "1\n", out.String())

	out.Reset()
	r.Exec(":mode bogus")
	assert.Contains(t, out.String(), `unknown mode "bogus"`)
	assert.Equal(t, "nameNeed", r.mode.Name)

	out.Reset()
	r.Exec(":nope")
	assert.Contains(t, out.String(), "unknown command :nope")

	assert.True(t, r.Exec(":q"))
}

func TestAllModes(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, interp.Modes[0])

	r.Exec(":all")
	out.Reset()
	r.Exec("first(cons(1, 1 / 0))")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(interp.Modes))
	for i, m := range interp.Modes {
		assert.Contains(t, lines[i], m.Name)
		if m.Cons.String() == "value" {
			assert.Contains(t, lines[i], "divide by zero")
		} else {
			assert.True(t, strings.HasSuffix(lines[i], " 1"), lines[i])
		}
	}
}
