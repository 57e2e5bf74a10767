package cmd

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"jam/repl"
)

func newReplCmd() *cobra.Command {
	var policy policyFlags

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Jam session",
		Long: "Start an interactive Jam session.\n" +
			"\n" +
			"Each line is parsed and evaluated as a whole program. Type :modes to\n" +
			"list the modes, :mode NAME to switch, :all to evaluate every line\n" +
			"under all nine modes and :quit to leave.",
		Args: cobra.NoArgs,
		Run: runFunc(func(cmd *cobra.Command, args []string) error {
			m, err := policy.mode()
			if err != nil {
				return err
			}

			fmt.Println("Welcome to the Jam REPL.")
			fmt.Printf("Evaluating under %s.\n", m.Name)

			if err := repl.StartInteractive(os.Stdout, m); err != nil {
				glog.V(3).Infof("line editing unavailable: %v", err)
				repl.Start(os.Stdin, os.Stdout, m)
			}
			return nil
		}),
	}

	policy.register(cmd)

	return cmd
}
