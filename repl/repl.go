package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"jam/interp"
	"jam/value"
)

const PROMPT = "jam➤ "

var (
	errorColor = color.New(color.FgRed)
	modeColor  = color.New(color.FgCyan)
)

// Repl evaluates one program per line. Lines starting with ':' are commands:
//
//	:mode NAME   switch to one of the nine modes, e.g. :mode nameNeed
//	:all         toggle evaluating every line under all nine modes
//	:modes       list the modes
//	:quit        leave
type Repl struct {
	out  io.Writer
	mode interp.Mode
	all  bool
}

func New(out io.Writer, mode interp.Mode) *Repl {
	return &Repl{out: out, mode: mode}
}

// Start reads lines from in until EOF or :quit.
func Start(in io.Reader, out io.Writer, mode interp.Mode) {
	r := New(out, mode)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		if r.Exec(scanner.Text()) {
			return
		}
	}
}

// StartInteractive is Start with line editing and history. It fails if
// stdin is not a terminal.
func StartInteractive(out io.Writer, mode interp.Mode) error {
	if _, err := liner.TerminalMode(); err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	r := New(out, mode)
	for {
		input, err := line.Prompt(PROMPT)
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if r.Exec(input) {
			return nil
		}
	}
}

// Exec handles one line of input and reports whether the session should end.
func (r *Repl) Exec(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if strings.HasPrefix(input, ":") {
		return r.command(strings.Fields(input[1:]))
	}

	in, err := interp.Parse(input)
	if err != nil {
		errorColor.Fprintf(r.out, "   syntax error: %v\n", err)
		return false
	}

	if !r.all {
		val, err := in.EvalMode(r.mode)
		PrintResult(r.out, val, err)
		return false
	}

	for _, res := range in.EvalAll() {
		modeColor.Fprintf(r.out, "   %-10s ", res.Mode.Name)
		PrintResult(r.out, res.Value, res.Err)
	}
	return false
}

func (r *Repl) command(args []string) bool {
	if len(args) == 0 {
		errorColor.Fprintln(r.out, "   missing command")
		return false
	}

	switch args[0] {
	case "quit", "q":
		return true
	case "all":
		r.all = !r.all
		fmt.Fprintf(r.out, "   all modes: %v\n", r.all)
	case "modes":
		for _, m := range interp.Modes {
			fmt.Fprintf(r.out, "   %s\n", m.Name)
		}
	case "mode":
		if len(args) != 2 {
			fmt.Fprintf(r.out, "   mode: %s\n", r.mode.Name)
			return false
		}
		m, ok := interp.LookupMode(args[1])
		if !ok {
			errorColor.Fprintf(r.out, "   unknown mode %q\n", args[1])
			return false
		}
		r.mode = m
		fmt.Fprintf(r.out, "   mode: %s\n", r.mode.Name)
	default:
		errorColor.Fprintf(r.out, "   unknown command :%s\n", args[0])
	}
	return false
}

// PrintResult writes a value, or the error that took its place.
func PrintResult(out io.Writer, val value.Value, err error) {
	if err == nil {
		var str string
		str, err = value.Show(val)
		if err == nil {
			fmt.Fprintf(out, "%s\n", str)
			return
		}
	}

	if kind, ok := value.KindOf(err); ok {
		errorColor.Fprintf(out, "%s: %v\n", kind, err)
		return
	}
	errorColor.Fprintf(out, "%v\n", err)
}
