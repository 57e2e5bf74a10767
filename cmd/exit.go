package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errorColor = color.New(color.FgRed)

// detailedError renders err with the stack traces of every error in its
// cause chain.
func detailedError(err error) string {
	msg := errorMessage(err)
	hasstack := false
	for {
		stackerr, ok := err.(interface {
			StackTrace() errors.StackTrace
		})
		if !ok {
			break
		}

		msg += "\n"
		if hasstack {
			msg += "CAUSED BY...\n"
		}
		hasstack = true

		for _, f := range stackerr.StackTrace() {
			msg += fmt.Sprintf("%+v\n", f)
		}

		cause := errors.Cause(err)
		if cause == err || cause == nil {
			break
		}
		err = cause
	}
	return msg
}

func errorMessage(err error) string {
	if multi, ok := err.(*multierror.Error); ok {
		wr := multi.WrappedErrors()
		if len(wr) == 1 {
			return errorMessage(wr[0])
		}
		return multi.Error()
	}
	return err.Error()
}

// runFunc adapts a command body returning an error into a cobra Run func
// that reports the error and exits non-zero.
func runFunc(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			glog.V(3).Info(detailedError(err))
			errorColor.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
			os.Exit(1)
		}
	}
}
