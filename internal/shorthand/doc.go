// Package shorthand holds the table of g shorthands.
//
// Each [Entry] maps a short mnemonic (create, pushu, loggrep) to a pure
// formatter that turns positional arguments into a git argument vector.
// Arguments are opaque: they are placed into the vector verbatim and never
// pass through a shell.
//
// # Arity
//
// Every entry carries an [Arity]:
//
//   - NoArgs: valid with zero arguments (status, log, push)
//   - ArgsRequired: at least MinArgs arguments must be supplied (create, mv)
//   - Unclassified: in neither set; the formatter substitutes its own
//     defaults (add, commit, pushforce)
//
// Arguments beyond what a formatter uses are ignored. An empty argument
// counts as absent, together with everything after it ([Present]).
//
// [Registry.Validate] rejects an invocation with too few arguments before
// anything is formatted or executed.
//
// # Registry
//
// [Default] returns the builtin registry. It is built once and never mutated.
package shorthand
