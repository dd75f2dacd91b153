// Package errext lets errors carry extra cross-cutting attributes: a
// user-facing hint and the process exit code the CLI should finish with.
package errext

import (
	"errors"

	"github.com/qaforge/patloc/errext/exitcodes"
)

// HasHint is an error with an attached human-readable hint, usually a
// suggestion on how to fix the underlying configuration problem.
type HasHint interface {
	error
	Hint() string
}

// WithHint attaches a hint to err. A nil err stays nil. If err already
// carried a hint, the hints are combined as "new hint (old hint)".
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return withHint{err, hint}
}

type withHint struct {
	error
	hint string
}

func (wh withHint) Unwrap() error {
	return wh.error
}

func (wh withHint) Hint() string {
	hint := wh.hint
	var prev HasHint
	if errors.As(wh.error, &prev) {
		hint = hint + " (" + prev.Hint() + ")"
	}
	return hint
}

// HasExitCode is an error with an attached process exit code.
type HasExitCode interface {
	error
	ExitCode() exitcodes.ExitCode
}

// WithExitCodeIfNone attaches an exit code to err unless err (or anything it
// wraps) already has one. A nil err stays nil.
func WithExitCodeIfNone(err error, code exitcodes.ExitCode) error {
	if err == nil {
		return nil
	}
	var ec HasExitCode
	if errors.As(err, &ec) {
		return err
	}
	return withExitCode{err, code}
}

type withExitCode struct {
	error
	exitCode exitcodes.ExitCode
}

func (we withExitCode) Unwrap() error {
	return we.error
}

func (we withExitCode) ExitCode() exitcodes.ExitCode {
	return we.exitCode
}

var (
	_ HasHint     = withHint{}
	_ HasExitCode = withExitCode{}
)
