package shorthand

import "fmt"

// Arity classifies how many arguments a shorthand needs.
type Arity int

const (
	// Unclassified shorthands are in neither set; their formatter
	// substitutes defaults for whatever is missing.
	Unclassified Arity = iota
	// NoArgs shorthands are valid without arguments. Some still accept
	// optional ones (init [dir], push [remote] [branch]).
	NoArgs
	// ArgsRequired shorthands need at least MinArgs arguments.
	ArgsRequired
)

func (a Arity) String() string {
	switch a {
	case NoArgs:
		return "no-args"
	case ArgsRequired:
		return "args-required"
	default:
		return "unclassified"
	}
}

// MissingArgumentsError is returned when a shorthand is invoked with fewer
// arguments than it requires.
type MissingArgumentsError struct {
	Key  string
	Got  int
	Want int
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("Command '%s' requires arguments", e.Key)
}

// Classify returns the arity of key. Unknown keys are Unclassified.
func (r *Registry) Classify(key string) Arity {
	if e, ok := r.Lookup(key); ok {
		return e.Arity
	}
	return Unclassified
}

// Validate checks argCount against the arity of key.
// Only ArgsRequired entries can fail; everything else passes here and is
// left to the formatter's own defaults.
func (r *Registry) Validate(key string, argCount int) error {
	e, ok := r.Lookup(key)
	if !ok || e.Arity != ArgsRequired {
		return nil
	}
	if argCount < e.minArgs() {
		return &MissingArgumentsError{Key: key, Got: argCount, Want: e.minArgs()}
	}
	return nil
}

// Present returns how many leading arguments are non-empty. An empty
// argument counts as absent, and so does everything after it.
func Present(args []string) int {
	for i, a := range args {
		if a == "" {
			return i
		}
	}
	return len(args)
}
