package dispatch

import (
	"context"
	"slices"

	"github.com/raphi011/g/internal/help"
	"github.com/raphi011/g/internal/log"
	"github.com/raphi011/g/internal/output"
	"github.com/raphi011/g/internal/shorthand"
)

// HelpToken is the literal argument that prints the help text.
const HelpToken = "help"

// maxSuggestions bounds the "did you mean" list for unknown shorthands.
const maxSuggestions = 3

// Runner executes a resolved invocation. It blocks until the child exits.
type Runner interface {
	Run(ctx context.Context, inv shorthand.Invocation) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, inv shorthand.Invocation) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, inv shorthand.Invocation) error {
	return f(ctx, inv)
}

// Options configure a Dispatcher.
type Options struct {
	// Program is the name users type, used in diagnostics ("g").
	Program string
	// Aliases map user alias names to builtin shorthands.
	Aliases map[string]string
	// Echo prints "Running: <command>" before executing.
	Echo bool
	// DryRun prints the command line instead of executing it.
	DryRun bool
	// Copy, when set, receives the command line (clipboard).
	Copy func(cmdline string) error
	// Help controls help rendering. Program defaults to the field above.
	Help help.Options
}

// Dispatcher resolves and executes shorthands.
type Dispatcher struct {
	reg  *shorthand.Registry
	run  Runner
	opts Options
}

// New creates a Dispatcher.
func New(reg *shorthand.Registry, run Runner, opts Options) *Dispatcher {
	if opts.Program == "" {
		opts.Program = "g"
	}
	if opts.Help.Program == "" {
		opts.Help.Program = opts.Program
	}
	if opts.Help.Aliases == nil {
		opts.Help.Aliases = opts.Aliases
	}
	return &Dispatcher{reg: reg, run: run, opts: opts}
}

// Dispatch handles one invocation. args are the positional arguments after
// the global flags: the shorthand followed by its arguments.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if len(args) == 0 || args[0] == "" || args[0] == HelpToken {
		return help.Write(out.Writer(), d.reg.Entries(), d.opts.Help)
	}

	typed, rest := args[0], args[1:]
	key := d.resolveAlias(typed)
	if key != typed {
		l.Debug("alias", "name", typed, "shorthand", key)
	}

	if !d.reg.Has(key) {
		return &UnknownCommandError{
			Program:     d.opts.Program,
			Key:         typed,
			Suggestions: d.reg.Suggest(typed, maxSuggestions, d.aliasNames()...),
		}
	}

	if err := d.reg.Validate(key, shorthand.Present(rest)); err != nil {
		return &UsageError{Program: d.opts.Program, Err: err}
	}

	inv, err := d.reg.Resolve(key, rest)
	if err != nil {
		return err
	}
	cmdline := inv.String()
	l.Debug("resolved", "shorthand", key, "arity", d.reg.Classify(key), "args", shorthand.Present(rest))

	if d.opts.Copy != nil {
		if err := d.opts.Copy(cmdline); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	if d.opts.DryRun {
		out.Println(cmdline)
		return nil
	}

	if d.opts.Echo {
		out.Running(cmdline)
	}

	if err := d.run.Run(ctx, inv); err != nil {
		return &ExecutionError{Invocation: inv, Err: err}
	}
	return nil
}

// resolveAlias maps a user alias to its shorthand. Builtins always win.
func (d *Dispatcher) resolveAlias(name string) string {
	if d.reg.Has(name) {
		return name
	}
	if target, ok := d.opts.Aliases[name]; ok {
		return target
	}
	return name
}

func (d *Dispatcher) aliasNames() []string {
	names := make([]string, 0, len(d.opts.Aliases))
	for name := range d.opts.Aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Names returns every name Dispatch accepts as a first argument: builtin
// shorthands, aliases and the help token. Used for shell completion.
func (d *Dispatcher) Names() []string {
	names := append(d.reg.Keys(), d.aliasNames()...)
	names = append(names, HelpToken)
	slices.Sort(names)
	return slices.Compact(names)
}
