package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/g/internal/cmd"
	"github.com/raphi011/g/internal/shorthand"
)

// UnknownCommandError is returned for a shorthand that is neither builtin
// nor a configured alias.
type UnknownCommandError struct {
	Program     string
	Key         string
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	msg := fmt.Sprintf("Unknown command: %s. Use '%s help' to see all commands.", e.Key, e.Program)
	if len(e.Suggestions) == 0 {
		return msg
	}
	return msg + "\n\nDid you mean this?\n\t" + strings.Join(e.Suggestions, "\n\t")
}

// UsageError is returned when a shorthand is called with too few arguments.
// It wraps the registry's *shorthand.MissingArgumentsError.
type UsageError struct {
	Program string
	Err     error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s. Use '%s help' for usage.", e.Err, e.Program)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExecutionError is returned when git could not be started or exited with a
// non-zero status.
type ExecutionError struct {
	Invocation shorthand.Invocation
	Err        error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("Error: %s: %v", e.Invocation, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Exited reports whether git started and exited non-zero. git has already
// printed its own diagnostics in that case.
func (e *ExecutionError) Exited() bool {
	var exitErr *cmd.ExitError
	return errors.As(e.Err, &exitErr)
}

// ExitCode maps an error returned by Dispatch to a process exit code:
// 0 for nil, git's own status when git ran and failed, 1 otherwise.
func ExitCode(err error) int {
	return cmd.ExitCode(err)
}
