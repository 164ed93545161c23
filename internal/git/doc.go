// Package git runs the git CLI on behalf of g.
//
// g never reimplements git. Every shorthand resolves to an argument vector
// that is handed to the real git binary with the terminal attached, so
// SSH keys, credential helpers, hooks and editors behave exactly as they do
// when git is run by hand.
//
// # Checks
//
//   - [CheckGit]: verifies the configured program can be found
//   - [Version]: reads "git --version" for verbose diagnostics
//
// # Running
//
// [Runner] executes a resolved [shorthand.Invocation] via
// [cmd.PassthroughStreams] after confirming the program exists. A non-zero
// exit is reported as [*cmd.ExitError] so the caller can exit with git's own
// status.
package git
