package value

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies an EvalError.
type ErrorKind int

const (
	UnboundVariable ErrorKind = iota
	ForwardReference
	TypeError
	ArityError
	DivideByZero
)

var errorKindNames = [...]string{
	UnboundVariable:  "unbound variable",
	ForwardReference: "forward reference",
	TypeError:        "type error",
	ArityError:       "arity error",
	DivideByZero:     "divide by zero",
}

func (k ErrorKind) String() string { return errorKindNames[k] }

// EvalError is the one error category the evaluator raises. It is thrown with
// Throw at the point of detection and unwinds to eval.Evaluator.Eval.
type EvalError struct {
	Kind ErrorKind
	err  error
}

func (e *EvalError) Error() string { return e.err.Error() }

// Cause returns the underlying error, which carries the stack trace.
func (e *EvalError) Cause() error { return e.err }
func (e *EvalError) Unwrap() error { return e.err }

// Format supports %+v for the stack trace recorded by pkg/errors.
func (e *EvalError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.Kind, e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Throw aborts the evaluation in flight with an EvalError.
func Throw(kind ErrorKind, format string, args ...interface{}) {
	panic(&EvalError{Kind: kind, err: errors.Errorf(format, args...)})
}

// Catch stops an EvalError panic and stores it in *err. Any other panic is
// re-raised. It must be deferred directly.
func Catch(err *error) {
	if r := recover(); r != nil {
		evalErr, ok := r.(*EvalError)
		if !ok {
			panic(r)
		}
		*err = evalErr
	}
}

// KindOf reports the kind of err if it is (or wraps) an EvalError.
func KindOf(err error) (ErrorKind, bool) {
	for err != nil {
		if evalErr, ok := err.(*EvalError); ok {
			return evalErr.Kind, true
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			return 0, false
		}
		err = cause.Cause()
	}
	return 0, false
}
