package dispatch

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/g/internal/cmd"
	"github.com/raphi011/g/internal/log"
	"github.com/raphi011/g/internal/output"
	"github.com/raphi011/g/internal/shorthand"
)

// fakeRunner records invocations instead of spawning processes.
type fakeRunner struct {
	calls []shorthand.Invocation
	err   error
}

func (f *fakeRunner) Run(_ context.Context, inv shorthand.Invocation) error {
	f.calls = append(f.calls, inv)
	return f.err
}

type harness struct {
	d      *Dispatcher
	run    *fakeRunner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	ctx    context.Context
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{run: &fakeRunner{}, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.d = New(shorthand.Default(), h.run, opts)
	ctx := log.WithLogger(context.Background(), log.New(h.stderr, false, false))
	h.ctx = output.WithPrinter(ctx, h.stdout)
	return h
}

func TestDispatch_HelpIdenticalForEmptyAndHelp(t *testing.T) {
	t.Parallel()

	empty := newHarness(t, Options{Echo: true})
	require.NoError(t, empty.d.Dispatch(empty.ctx, nil))

	literal := newHarness(t, Options{Echo: true})
	require.NoError(t, literal.d.Dispatch(literal.ctx, []string{"help"}))

	blank := newHarness(t, Options{Echo: true})
	require.NoError(t, blank.d.Dispatch(blank.ctx, []string{""}))

	assert.NotEmpty(t, empty.stdout.String())
	assert.Equal(t, empty.stdout.String(), literal.stdout.String())
	assert.Equal(t, empty.stdout.String(), blank.stdout.String())
	assert.Empty(t, empty.run.calls)
	assert.Empty(t, literal.run.calls)
	assert.Empty(t, blank.run.calls)
	assert.Equal(t, 0, ExitCode(nil))
}

func TestDispatch_HelpTakesPrecedence(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Aliases: map[string]string{"help": "status"}})
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"help", "push"}))
	assert.Contains(t, h.stdout.String(), "Git CLI Shortcuts")
	assert.Empty(t, h.run.calls)
}

func TestDispatch_Unknown(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Echo: true})
	err := h.d.Dispatch(h.ctx, []string{"nonexistent-key"})

	var unknown *UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Unknown command: nonexistent-key. Use 'g help' to see all commands.", err.Error())
	assert.Equal(t, 1, ExitCode(err))
	assert.Empty(t, h.run.calls)
	assert.Empty(t, h.stdout.String())
}

func TestDispatch_UnknownSuggests(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})
	err := h.d.Dispatch(h.ctx, []string{"pshu", "origin", "main"})

	var unknown *UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, unknown.Suggestions, "pushu")
	assert.Contains(t, err.Error(), "Unknown command: pshu. Use 'g help' to see all commands.")
	assert.Contains(t, err.Error(), "Did you mean this?")
}

func TestDispatch_MissingArgumentsNeverSpawns(t *testing.T) {
	t.Parallel()

	reg := shorthand.Default()
	for _, e := range reg.Entries() {
		if reg.Classify(e.Name) != shorthand.ArgsRequired {
			continue
		}
		h := newHarness(t, Options{Echo: true})
		err := h.d.Dispatch(h.ctx, []string{e.Name})

		var usage *UsageError
		require.ErrorAs(t, err, &usage, e.Name)
		var missing *shorthand.MissingArgumentsError
		require.ErrorAs(t, err, &missing, e.Name)
		assert.Equal(t, "Command '"+e.Name+"' requires arguments. Use 'g help' for usage.", err.Error())
		assert.Equal(t, 1, ExitCode(err), e.Name)
		assert.Empty(t, h.run.calls, e.Name)
	}
}

func TestDispatch_OptionalShorthandsRunWithoutArgs(t *testing.T) {
	t.Parallel()

	reg := shorthand.Default()
	for _, e := range reg.Entries() {
		if reg.Classify(e.Name) == shorthand.ArgsRequired {
			continue
		}
		h := newHarness(t, Options{})
		err := h.d.Dispatch(h.ctx, []string{e.Name})
		assert.NoError(t, err, e.Name)
		assert.Len(t, h.run.calls, 1, e.Name)
	}
}

func TestDispatch_EmptyArgumentsAreAbsent(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"init", ""}))
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"push", "origin", ""}))
	require.Len(t, h.run.calls, 2)
	assert.Equal(t, []string{"git", "init"}, h.run.calls[0].Argv())
	assert.Equal(t, []string{"git", "push", "origin"}, h.run.calls[1].Argv())

	err := h.d.Dispatch(h.ctx, []string{"create", ""})
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	assert.Len(t, h.run.calls, 2)
}

func TestDispatch_PushuWithOneArgument(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})
	err := h.d.Dispatch(h.ctx, []string{"pushu", "origin"})

	var missing *shorthand.MissingArgumentsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 2, missing.Want)
	assert.Empty(t, h.run.calls)
}

func TestDispatch_Runs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"create", "feature-x"}, "git checkout -b feature-x"},
		{[]string{"commit"}, "git commit"},
		{[]string{"commit", "Fix bug"}, `git commit -m "Fix bug"`},
		{[]string{"push", "origin", "main"}, "git push origin main"},
		{[]string{"limit", "5"}, "git log -5"},
	}

	for _, tt := range tests {
		h := newHarness(t, Options{Echo: true})
		require.NoError(t, h.d.Dispatch(h.ctx, tt.args))
		require.Len(t, h.run.calls, 1)
		assert.Equal(t, tt.want, h.run.calls[0].String())
		assert.Equal(t, "Running: "+tt.want+"\n", h.stdout.String())
	}
}

func TestDispatch_NoEcho(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Echo: false})
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"status"}))
	assert.Empty(t, h.stdout.String())
	assert.Len(t, h.run.calls, 1)
}

func TestDispatch_DryRun(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Echo: true, DryRun: true})
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"pushu", "origin", "main"}))
	assert.Equal(t, "git push -u origin main\n", h.stdout.String())
	assert.Empty(t, h.run.calls)
}

func TestDispatch_Copy(t *testing.T) {
	t.Parallel()

	var copied string
	h := newHarness(t, Options{DryRun: true, Copy: func(s string) error {
		copied = s
		return nil
	}})
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"loggrep", "fix typo"}))
	assert.Equal(t, `git log --grep="fix typo"`, copied)
}

func TestDispatch_CopyFailureIsWarning(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Copy: func(string) error { return errors.New("no clipboard") }})
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"status"}))
	assert.Contains(t, h.stderr.String(), "Warning: failed to copy to clipboard: no clipboard")
	assert.Len(t, h.run.calls, 1)
}

func TestDispatch_Aliases(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Aliases: map[string]string{"up": "pushu", "status": "log"}})

	require.NoError(t, h.d.Dispatch(h.ctx, []string{"up", "origin", "main"}))
	require.NoError(t, h.d.Dispatch(h.ctx, []string{"status"}))

	require.Len(t, h.run.calls, 2)
	assert.Equal(t, "git push -u origin main", h.run.calls[0].String())
	assert.Equal(t, "git status", h.run.calls[1].String(), "builtins win over aliases")

	err := h.d.Dispatch(h.ctx, []string{"up", "origin"})
	var usage *UsageError
	assert.ErrorAs(t, err, &usage)
}

func TestDispatch_ExecutionFailurePropagatesExitCode(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Echo: true})
	h.run.err = &cmd.ExitError{Code: 128}

	err := h.d.Dispatch(h.ctx, []string{"push"})

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "Error: git push: exit status 128", err.Error())
	assert.Equal(t, 128, ExitCode(err))
	assert.True(t, execErr.Exited())
	assert.Equal(t, "Running: git push\n", h.stdout.String())
}

func TestDispatch_SpawnFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})
	h.run.err = errors.New(`exec: "git": executable file not found in $PATH`)

	err := h.d.Dispatch(h.ctx, []string{"status"})

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Contains(t, err.Error(), "executable file not found")
	assert.False(t, execErr.Exited())
	assert.Equal(t, 1, ExitCode(err))
}

func TestDispatch_CustomProgram(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{}
	d := New(shorthand.Default().WithProgram("/opt/git/bin/git"), run, Options{Program: "gg"})
	ctx := output.WithPrinter(context.Background(), &bytes.Buffer{})

	require.NoError(t, d.Dispatch(ctx, []string{"st"}))
	assert.Equal(t, "/opt/git/bin/git", run.calls[0].Program)

	err := d.Dispatch(ctx, []string{"nope"})
	assert.EqualError(t, err, "Unknown command: nope. Use 'gg help' to see all commands.")
}

func TestNames(t *testing.T) {
	t.Parallel()

	d := New(shorthand.Default(), &fakeRunner{}, Options{Aliases: map[string]string{"up": "pushu"}})
	names := d.Names()
	assert.Contains(t, names, "up")
	assert.Contains(t, names, "help")
	assert.Contains(t, names, "pushu")
	assert.IsIncreasing(t, names)
}

func TestRunnerFunc(t *testing.T) {
	t.Parallel()

	var got shorthand.Invocation
	r := RunnerFunc(func(_ context.Context, inv shorthand.Invocation) error {
		got = inv
		return nil
	})
	d := New(shorthand.Default(), r, Options{})
	ctx := output.WithPrinter(context.Background(), &bytes.Buffer{})
	require.NoError(t, d.Dispatch(ctx, []string{"graph"}))
	assert.Equal(t, []string{"git", "log", "--graph", "--decorate"}, got.Argv())
}
