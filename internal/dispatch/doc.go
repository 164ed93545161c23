// Package dispatch runs one g invocation.
//
// [Dispatcher.Dispatch] takes the positional arguments that follow the
// global flags and walks them through a fixed sequence:
//
//  1. no arguments, an empty first argument or "help": write the help
//     text and stop
//  2. resolve user aliases to builtin shorthands
//  3. unknown shorthand: [*UnknownCommandError]
//  4. too few arguments: [*UsageError]
//  5. format the git invocation and echo it ("Running: ...")
//  6. execute it through the [Runner] with passthrough stdio
//
// Failures in steps 3 and 4 never reach the runner. A failing git run is
// returned as [*ExecutionError]; [ExitCode] turns any returned error into
// the status g exits with, so git's own exit code propagates.
package dispatch
