package shorthand

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownShorthand is returned when a key is not in the registry.
var ErrUnknownShorthand = errors.New("unknown shorthand")

// Formatter turns positional arguments into git arguments (without the
// program name). Formatters are pure.
type Formatter func(args []string) []string

// Entry is one shorthand.
type Entry struct {
	Name     string
	Category Category
	Usage    string // argument placeholders, e.g. "<remote> <branch>"
	Expands  string // what the shorthand runs, for help output
	Summary  string
	Arity    Arity
	MinArgs  int // only meaningful for ArgsRequired; 0 means 1
	Format   Formatter
}

func (e Entry) minArgs() int {
	if e.MinArgs < 1 {
		return 1
	}
	return e.MinArgs
}

// Registry maps shorthand names to entries. It is immutable once built.
type Registry struct {
	program string
	entries []Entry
	byName  map[string]int
}

// New builds a registry invoking program. It panics on a duplicate or empty
// name, or on an entry without a formatter.
func New(program string, entries []Entry) *Registry {
	r := &Registry{
		program: program,
		entries: slices.Clone(entries),
		byName:  make(map[string]int, len(entries)),
	}
	for i, e := range r.entries {
		if e.Name == "" {
			panic("shorthand with empty name")
		}
		if e.Format == nil {
			panic(fmt.Sprintf("shorthand %s has no formatter", e.Name))
		}
		if _, exists := r.byName[e.Name]; exists {
			panic(fmt.Sprintf("shorthand %s already registered", e.Name))
		}
		r.byName[e.Name] = i
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return New("git", builtin())
})

// Default returns the builtin registry invoking "git".
func Default() *Registry {
	return defaultRegistry()
}

// WithProgram returns a registry sharing r's entries that invokes program
// instead. An empty program returns r.
func (r *Registry) WithProgram(program string) *Registry {
	if program == "" || program == r.program {
		return r
	}
	return &Registry{program: program, entries: r.entries, byName: r.byName}
}

// Program returns the program every resolved invocation starts with.
func (r *Registry) Program() string {
	return r.program
}

// Lookup returns the entry for key.
func (r *Registry) Lookup(key string) (Entry, bool) {
	i, ok := r.byName[key]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.byName[key]
	return ok
}

// Entries returns all entries in table order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Keys returns all shorthand names, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.Name)
	}
	slices.Sort(keys)
	return keys
}

// Resolve validates args against key's arity and formats the invocation.
func (r *Registry) Resolve(key string, args []string) (Invocation, error) {
	e, ok := r.Lookup(key)
	if !ok {
		return Invocation{}, fmt.Errorf("%w: %s", ErrUnknownShorthand, key)
	}
	if err := r.Validate(key, Present(args)); err != nil {
		return Invocation{}, err
	}
	return Invocation{Program: r.program, Args: e.Format(slices.Clone(args))}, nil
}
