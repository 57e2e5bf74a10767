package cmd

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jam/eval"
	"jam/interp"
)

// NewJamCmd creates the root command. glog's flags (-v, --logtostderr and
// friends) are available on every subcommand.
func NewJamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jam",
		Short:         "Jam interpreter",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: "Jam - a small functional language evaluated nine ways\n" +
			"\n" +
			"Every program can run under any pairing of a binding policy\n" +
			"(value, name, need) with a cons policy (value, name, need):\n" +
			"\n" +
			"    $ jam eval -e 'let ones := cons(1, ones); in first(ones)' --cons need\n" +
			"    $ jam eval --all program.jam\n" +
			"    $ jam repl --binding need\n",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// cobra has already parsed glog's flags; mark the go flag set as
			// parsed so glog stops complaining.
			_ = flag.CommandLine.Parse(nil)
		},
	}

	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newReplCmd())

	return cmd
}

// policyFlags are the --binding and --cons flags shared by eval and repl.
type policyFlags struct {
	binding string
	cons    string
}

func (p *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.binding, "binding", "value",
		"Binding policy for let and application: value, name or need")
	cmd.Flags().StringVar(&p.cons, "cons", "value",
		"Cons policy for list construction: value, name or need")
}

func (p *policyFlags) mode() (interp.Mode, error) {
	bp, err := eval.ParseBindingPolicy(p.binding)
	if err != nil {
		return interp.Mode{}, err
	}
	cp, err := eval.ParseConsPolicy(p.cons)
	if err != nil {
		return interp.Mode{}, err
	}

	m, ok := interp.ModeFor(bp, cp)
	if !ok {
		return interp.Mode{}, errors.Errorf("no mode pairs binding=%s with cons=%s", bp, cp)
	}
	return m, nil
}
