package git

import (
	"context"

	"github.com/raphi011/g/internal/cmd"
	"github.com/raphi011/g/internal/shorthand"
)

// Runner executes resolved invocations with passthrough stdio.
type Runner struct {
	// Dir is the working directory for git; empty means the current one.
	Dir     string
	Streams cmd.Streams
}

// NewRunner creates a Runner attached to the process's own streams.
func NewRunner() *Runner {
	return &Runner{Streams: cmd.StdStreams()}
}

// Run executes inv and blocks until it exits.
// A program that cannot be found yields ErrGitNotFound without spawning.
func (r *Runner) Run(ctx context.Context, inv shorthand.Invocation) error {
	if err := CheckGit(inv.Program); err != nil {
		return err
	}
	return cmd.PassthroughStreams(ctx, r.Streams, r.Dir, inv.Program, inv.Args...)
}
