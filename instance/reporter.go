package instance

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvariantViolation is reported whenever a handle is asked to adopt an
// absent value.
var ErrInvariantViolation = errors.New("attempt to set non-null handle to an absent value")

// Reporter is the policy a Handle invokes before it rejects an absent value.
//
// Reporters are used as type parameters and called on their zero value, so
// implementations are normally empty structs. Report may panic, exit or
// return; when it returns, the operation that triggered it returns the
// error and leaves its target unchanged.
type Reporter interface {
	Report(err error)
}

// PanicReporter panics with the violation. It is the default policy.
type PanicReporter struct{}

func (PanicReporter) Report(err error) {
	panic(err)
}

// LogReporter logs the violation on the global zap logger and returns.
type LogReporter struct{}

func (LogReporter) Report(err error) {
	zap.L().Error("non-null handle invariant violated", zap.Error(err))
}

// ErrorReporter does nothing; the violation only surfaces as the error
// returned by the operation.
type ErrorReporter struct{}

func (ErrorReporter) Report(error) {}

func violation(op string) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, op)
}

// report runs R on a violation raised by op and returns the error for the
// caller in case R returns.
func report[R Reporter](op string) error {
	err := violation(op)
	var r R
	r.Report(err)
	return err
}
