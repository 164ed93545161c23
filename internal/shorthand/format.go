package shorthand

import "slices"

// fixed ignores arguments.
func fixed(argv ...string) Formatter {
	return func([]string) []string {
		return slices.Clone(argv)
	}
}

// positional appends up to n present arguments after argv.
func positional(n int, argv ...string) Formatter {
	return func(args []string) []string {
		return append(slices.Clone(argv), leading(n, args)...)
	}
}

// positionalThen places up to n present arguments between argv and suffix.
func positionalThen(n int, argv []string, suffix ...string) Formatter {
	return func(args []string) []string {
		out := append(slices.Clone(argv), leading(n, args)...)
		return append(out, suffix...)
	}
}

// leading returns at most n arguments, stopping at the first empty one.
func leading(n int, args []string) []string {
	return args[:min(n, Present(args))]
}

// firstOr appends the first argument, or def when it is missing or empty.
func firstOr(def string, argv ...string) Formatter {
	return func(args []string) []string {
		if len(args) == 0 || args[0] == "" {
			return append(slices.Clone(argv), def)
		}
		return append(slices.Clone(argv), args[0])
	}
}

// flagValue appends flag and the first argument when it is non-empty.
func flagValue(flag string, argv ...string) Formatter {
	return func(args []string) []string {
		if len(args) == 0 || args[0] == "" {
			return slices.Clone(argv)
		}
		return append(slices.Clone(argv), flag, args[0])
	}
}

// joined appends prefix+args[0] as a single argument.
func joined(prefix string, argv ...string) Formatter {
	return func(args []string) []string {
		return append(slices.Clone(argv), prefix+args[0])
	}
}

// logRange renders since..until.
func logRange(args []string) []string {
	return []string{"log", args[0] + ".." + args[1]}
}

// remoteAdd adds a remote when both name and url are given and lists
// remotes otherwise.
func remoteAdd(args []string) []string {
	if len(args) >= 2 && args[0] != "" && args[1] != "" {
		return []string{"remote", "add", args[0], args[1]}
	}
	return []string{"remote"}
}
