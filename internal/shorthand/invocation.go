package shorthand

import "strings"

// Invocation is a resolved command: a program and its argument vector.
type Invocation struct {
	Program string
	Args    []string
}

// Argv returns the program followed by its arguments.
func (i Invocation) Argv() []string {
	return append([]string{i.Program}, i.Args...)
}

// String renders the invocation as a command line for display.
// Arguments that a shell would split or expand are double-quoted; for
// --flag=value only the value is quoted. A single word is left bare, so
// "g commit fix" displays as git commit -m fix.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, displayArg(i.Program))
	for _, a := range i.Args {
		parts = append(parts, displayArg(a))
	}
	return strings.Join(parts, " ")
}

const shellSpecial = " \t\n\"'`$\\|&;<>()*?[]#~!{}"

func displayArg(a string) string {
	if a == "" {
		return `""`
	}
	if !strings.ContainsAny(a, shellSpecial) {
		return a
	}
	if strings.HasPrefix(a, "-") {
		if eq := strings.IndexByte(a, '='); eq > 0 && !strings.ContainsAny(a[:eq], shellSpecial) {
			return a[:eq+1] + quote(a[eq+1:])
		}
	}
	return quote(a)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}
