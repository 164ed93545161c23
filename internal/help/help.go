// Package help renders the g help text: every shorthand grouped by category
// with its expanded git command and a one-line description.
package help

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/g/internal/shorthand"
	"github.com/raphi011/g/internal/ui/static"
	"github.com/raphi011/g/internal/ui/styles"
)

// Title is the first line of the help text.
const Title = "Git CLI Shortcuts - Complete Git Command Tool"

// Options control rendering.
type Options struct {
	Program string            // name the user types, e.g. "g"
	Styles  *styles.Styles    // nil renders plain text
	Aliases map[string]string // user aliases, listed after the builtins
	Flags   string            // pre-formatted global flag usage, optional
}

var examples = []struct{ args, what string }{
	{"create feature-branch", "Create and switch to new branch"},
	{`commit "Add new feature"`, "Commit with message"},
	{"pushu origin main", "Push and set upstream"},
	{"oneline", "View commit history"},
}

// Write renders the help text to w.
func Write(w io.Writer, entries []shorthand.Entry, opts Options) error {
	_, err := io.WriteString(w, Render(entries, opts))
	return err
}

// Render returns the help text.
func Render(entries []shorthand.Entry, opts Options) string {
	st := styles.Plain()
	if opts.Styles != nil {
		st = *opts.Styles
	}
	prog := opts.Program
	if prog == "" {
		prog = "g"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.Heading.Render(Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Usage: %s [flags] <shorthand> [args...]\n\n", prog)

	rows, headings := shorthandRows(entries, opts.Aliases, prog)
	b.WriteString(static.RenderRows(rows, func(row, col int) lipgloss.Style {
		var s lipgloss.Style
		switch {
		case headings[row]:
			s = st.Heading
		case col == 0:
			s = st.Key
		case col == 1:
			s = st.Command
		default:
			s = st.Summary
		}
		return s.PaddingRight(2)
	}))

	b.WriteString("\n")
	b.WriteString(st.Heading.Render("Examples:"))
	b.WriteString("\n")
	exRows := make([][]string, len(examples))
	for i, ex := range examples {
		exRows[i] = []string{"  " + prog + " " + ex.args, "# " + ex.what}
	}
	b.WriteString(static.RenderRows(exRows, nil))

	if opts.Flags != "" {
		b.WriteString("\n")
		b.WriteString(st.Heading.Render("Flags (before the shorthand):"))
		b.WriteString("\n")
		b.WriteString(opts.Flags)
		if !strings.HasSuffix(opts.Flags, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// shorthandRows builds one table for all sections so columns line up across
// categories. Heading rows are marked in the returned set.
func shorthandRows(entries []shorthand.Entry, aliases map[string]string, prog string) ([][]string, map[int]bool) {
	byCat := make(map[shorthand.Category][]shorthand.Entry)
	for _, e := range entries {
		byCat[e.Category] = append(byCat[e.Category], e)
	}

	var rows [][]string
	headings := make(map[int]bool)
	section := func(title string) {
		if len(rows) > 0 {
			rows = append(rows, []string{"", "", ""})
		}
		headings[len(rows)] = true
		rows = append(rows, []string{title + ":", "", ""})
	}

	for _, cat := range shorthand.Categories() {
		list := byCat[cat]
		if len(list) == 0 {
			continue
		}
		section(cat.Title())
		for _, e := range list {
			rows = append(rows, []string{usage(prog, e.Name, e.Usage), e.Expands, e.Summary})
		}
	}

	if len(aliases) > 0 {
		section("USER ALIASES")
		for _, name := range slices.Sorted(maps.Keys(aliases)) {
			target := aliases[name]
			rows = append(rows, []string{usage(prog, name, ""), prog + " " + target, "Alias for " + target})
		}
	}
	return rows, headings
}

func usage(prog, name, args string) string {
	return "  " + strings.TrimSpace(prog+" "+name+" "+args)
}
