package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jam/interp"
	"jam/repl"
	"jam/value"
)

var modeColor = color.New(color.FgCyan)

type evalCmd struct {
	policy policyFlags
	expr   string
	all    bool
	stdin  io.Reader
	stdout io.Writer
}

func newEvalCmd() *cobra.Command {
	ec := &evalCmd{stdin: os.Stdin, stdout: os.Stdout}

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a Jam program",
		Long: "Evaluate a Jam program and print its value.\n" +
			"\n" +
			"The program is read from the given file, from standard input when the\n" +
			"file is '-', or from the --expr flag. With --all the program runs under\n" +
			"all nine modes and one line is printed per mode.",
		Args: cobra.MaximumNArgs(1),
		Run: runFunc(func(cmd *cobra.Command, args []string) error {
			return ec.run(args)
		}),
	}

	ec.policy.register(cmd)
	cmd.Flags().StringVarP(&ec.expr, "expr", "e", "", "Evaluate this program text instead of a file")
	cmd.Flags().BoolVar(&ec.all, "all", false, "Evaluate under all nine modes")

	return cmd
}

func (ec *evalCmd) run(args []string) error {
	source, err := ec.source(args)
	if err != nil {
		return err
	}

	in, err := interp.Parse(source)
	if err != nil {
		return err
	}

	if ec.all {
		return ec.runAll(in)
	}

	m, err := ec.policy.mode()
	if err != nil {
		return err
	}
	glog.V(5).Infof("eval: running under %s", m.Name)

	val, err := in.EvalMode(m)
	if err == nil {
		var str string
		if str, err = value.Show(val); err == nil {
			fmt.Fprintln(ec.stdout, str)
			return nil
		}
	}
	if kind, ok := value.KindOf(err); ok {
		return errors.Wrap(err, kind.String())
	}
	return err
}

// runAll prints one line per mode. The returned error summarizes the modes
// that failed; their messages are already on the table.
func (ec *evalCmd) runAll(in *interp.Interpreter) error {
	failed := &multierror.Error{ErrorFormat: func(errs []error) string {
		return fmt.Sprintf("evaluation failed under %d of %d modes", len(errs), len(interp.Modes))
	}}

	for _, res := range in.EvalAll() {
		modeColor.Fprintf(ec.stdout, "%-10s ", res.Mode.Name)
		repl.PrintResult(ec.stdout, res.Value, res.Err)

		err := res.Err
		if err == nil {
			_, err = value.Show(res.Value)
		}
		if err != nil {
			failed = multierror.Append(failed, errors.Wrap(err, res.Mode.Name))
		}
	}
	return failed.ErrorOrNil()
}

func (ec *evalCmd) source(args []string) (string, error) {
	switch {
	case ec.expr != "" && len(args) > 0:
		return "", errors.New("cannot use both --expr and a file")
	case ec.expr != "":
		return ec.expr, nil
	case len(args) == 0:
		return "", errors.New("expected a file, '-' or --expr")
	}

	var b []byte
	var err error
	if args[0] == "-" {
		b, err = ioutil.ReadAll(ec.stdin)
	} else {
		b, err = ioutil.ReadFile(args[0])
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", args[0])
	}
	return string(b), nil
}
