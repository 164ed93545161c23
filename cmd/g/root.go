package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/g/internal/config"
	"github.com/raphi011/g/internal/dispatch"
	"github.com/raphi011/g/internal/git"
	"github.com/raphi011/g/internal/help"
	"github.com/raphi011/g/internal/log"
	"github.com/raphi011/g/internal/output"
	"github.com/raphi011/g/internal/shorthand"
)

// programName is the name users type; it appears in help and diagnostics.
const programName = "g"

// streams are the standard streams g reads from and writes to.
type streams struct {
	in       io.Reader
	out, err io.Writer
}

// rootFlags are the global flags. They are only recognised before the
// shorthand; everything after it belongs to git.
type rootFlags struct {
	verbose bool
	quiet   bool
	dryRun  bool
	copy    bool
}

// Execute runs g with the process arguments and exits with its status.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	cancel()
	os.Exit(code)
}

// run executes one g invocation and returns the process exit code.
func run(ctx context.Context, args []string, s streams) int {
	reg := shorthand.Default()
	cfg := loadConfig(s.err, reg)

	rootCmd := newRootCmd(cfg, reg.WithProgram(cfg.Git), s)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var execErr *dispatch.ExecutionError
	if !errors.As(err, &execErr) || !execErr.Exited() {
		printError(s.err, cfg, err)
	}
	return dispatch.ExitCode(err)
}

// printError writes err to stderr, in the theme's error colour on a terminal.
func printError(stderr io.Writer, cfg config.Config, err error) {
	w, colored := colorOutput(stderr, cfg.Color)
	msg := err.Error()
	if colored {
		msg = themeStyles(cfg.Theme).Error.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

// loadConfig reads the global config and the .g.toml governing the working
// directory. Problems are warnings: g always falls back to working defaults.
func loadConfig(stderr io.Writer, reg *shorthand.Registry) config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}

	if wd, err := os.Getwd(); err == nil {
		local, err := config.LoadLocal(wd)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		} else {
			cfg = config.MergeLocal(cfg, local)
		}
	}

	if err := config.ValidateAliases(cfg.Aliases, reg.Has); err != nil {
		fmt.Fprintf(stderr, "Warning: %v (aliases disabled)\n", err)
		cfg.Aliases = map[string]string{}
	}
	return cfg
}

func newRootCmd(cfg config.Config, reg *shorthand.Registry, s streams) *cobra.Command {
	var flags rootFlags

	out, colored := colorOutput(s.out, cfg.Color)
	helpOpts := help.Options{Program: programName, Aliases: cfg.Aliases}
	if colored {
		helpOpts.Styles = themeStyles(cfg.Theme)
	}

	rootCmd := &cobra.Command{
		Use:   programName + " [flags] <shorthand> [args...]",
		Short: "Git CLI shortcuts",
		Long: `g maps short mnemonic commands to full git invocations.

Run "g help" to list every shorthand.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Create logger (stderr for diagnostics) now that flags are parsed
			ctx := log.WithLogger(cmd.Context(), log.New(s.err, flags.verbose, flags.quiet))

			// Add output printer (stdout for primary data)
			ctx = output.WithPrinter(ctx, out)

			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) > 0 && args[0] != "" && args[0] != dispatch.HelpToken {
				logGitVersion(ctx, reg.Program())
			}

			runner := git.NewRunner()
			runner.Streams.Stdin = s.in
			runner.Streams.Stdout = s.out
			runner.Streams.Stderr = s.err

			opts := dispatch.Options{
				Program: programName,
				Aliases: cfg.Aliases,
				Echo:    cfg.Echo,
				DryRun:  flags.dryRun,
				Help:    helpOpts,
			}
			opts.Help.Flags = cmd.Flags().FlagUsages()
			if flags.copy {
				opts.Copy = clipboard.WriteAll
			}

			return dispatch.New(reg, runner, opts).Dispatch(ctx, args)
		},
		ValidArgsFunction: completeShorthands(dispatch.New(reg, nil, dispatch.Options{Aliases: cfg.Aliases}).Names()),
	}

	rootCmd.SetIn(s.in)
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(s.err)

	// Global flags
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show the git command being executed and its duration")
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Print the git command instead of running it")
	rootCmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the git command to the clipboard")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s -h' for help", err, programName)
	})

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// "g help" is a shorthand handled by the dispatcher, and -h prints the
	// same text. Subcommands keep cobra's help.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		opts := helpOpts
		opts.Flags = cmd.Flags().FlagUsages()
		_ = help.Write(out, reg.Entries(), opts)
	})
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// logGitVersion reports which git g is about to run, in verbose mode.
func logGitVersion(ctx context.Context, program string) {
	l := log.FromContext(ctx)
	if !l.IsVerbose() {
		return
	}
	v, err := git.Version(ctx, program)
	if err != nil {
		l.Debug("git", "program", program, "error", err)
		return
	}
	l.Debug("git", "program", program, "version", v)
}

// completeShorthands completes the first argument with shorthands, aliases
// and "help". Later arguments fall back to file completion.
func completeShorthands(names []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		var matches []string
		for _, name := range names {
			if strings.HasPrefix(name, toComplete) {
				matches = append(matches, name)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}
