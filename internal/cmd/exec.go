package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/g/internal/log"
)

// Streams are the standard streams handed to a passthrough child.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// ExitError reports a child that started but exited with a non-zero status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err: 0 for nil, the child's
// status for an *ExitError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var osExitErr *exec.ExitError
	if errors.As(err, &osExitErr) && osExitErr.ExitCode() > 0 {
		return osExitErr.ExitCode()
	}
	return 1
}

// PassthroughStreams runs name with the given streams attached and waits for
// it to exit. The child is not killed when ctx is cancelled after it started;
// terminal signals reach it directly through the shared process group.
func PassthroughStreams(ctx context.Context, s Streams, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c := exec.Command(name, args...)
	c.Dir = dir
	c.Stdin = s.Stdin
	c.Stdout = s.Stdout
	c.Stderr = s.Stderr

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err != nil {
		var osExitErr *exec.ExitError
		if errors.As(err, &osExitErr) {
			code := osExitErr.ExitCode()
			if code <= 0 {
				// killed by a signal
				code = 1
			}
			return &ExitError{Code: code, Err: err}
		}
		return err
	}
	return nil
}

// OutputContext runs name and returns its stdout. If the command fails, the
// trimmed stderr becomes the error message when there is any.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	out, err := c.Output()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, err
	}
	return out, nil
}
