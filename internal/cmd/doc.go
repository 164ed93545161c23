// Package cmd runs external programs for g.
//
// Two execution modes exist:
//
//   - [PassthroughStreams] connects the child to the parent's stdin, stdout
//     and stderr ([StdStreams]). Nothing is captured, so editors opened by
//     git commit or an interactive rebase work as if git had been started
//     directly.
//   - [OutputContext] captures stdout and folds trimmed stderr into the
//     returned error. It is used for checks such as git --version.
//
// Programs are always started from an argument vector. No shell is involved,
// so arguments reach the child verbatim.
//
// # Exit Codes
//
// A child that ran and exited non-zero is reported as an [*ExitError]
// carrying its exit status. [ExitCode] maps any error to the status g
// should exit with.
package cmd
