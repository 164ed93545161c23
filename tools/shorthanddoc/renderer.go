package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/raphi011/g/internal/shorthand"
)

// RenderMarkdown writes the shorthand reference as markdown.
func RenderMarkdown(w io.Writer, reg *shorthand.Registry) error {
	byCat := make(map[shorthand.Category][]shorthand.Entry)
	for _, e := range reg.Entries() {
		byCat[e.Category] = append(byCat[e.Category], e)
	}

	// Header
	fmt.Fprintf(w, "# Shorthand Reference\n\n")
	fmt.Fprintf(w, "Arguments in `<angle brackets>` are required, `[square brackets]` are optional.\n\n")

	// Summary
	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Category | Shorthands |\n")
	fmt.Fprintf(w, "|----------|------------|\n")

	total := 0
	for _, cat := range shorthand.Categories() {
		entries := byCat[cat]
		if len(entries) == 0 {
			continue
		}
		title := sectionTitle(cat)
		fmt.Fprintf(w, "| [%s](#%s) | %d |\n", title, toAnchor(title), len(entries))
		total += len(entries)
	}
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", total)

	// Render each category section
	for _, cat := range shorthand.Categories() {
		if entries := byCat[cat]; len(entries) > 0 {
			renderCategorySection(w, reg, sectionTitle(cat), entries)
		}
	}

	return nil
}

func renderCategorySection(w io.Writer, reg *shorthand.Registry, title string, entries []shorthand.Entry) {
	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintf(w, "| Shorthand | Runs | Arguments | Description |\n")
	fmt.Fprintf(w, "|-----------|------|-----------|-------------|\n")

	for _, e := range entries {
		usage := strings.TrimSpace("g " + e.Name + " " + e.Usage)
		fmt.Fprintf(w, "| `%s` | `%s` | %s | %s |\n",
			escape(usage), escape(e.Expands), arguments(reg, e), escape(e.Summary))
	}
	fmt.Fprintf(w, "\n")
}

// arguments describes the arity of an entry for the reference table.
func arguments(reg *shorthand.Registry, e shorthand.Entry) string {
	switch reg.Classify(e.Name) {
	case shorthand.ArgsRequired:
		n := max(e.MinArgs, 1)
		if n == 1 {
			return "required"
		}
		return fmt.Sprintf("%d required", n)
	case shorthand.NoArgs:
		if e.Usage == "" {
			return "none"
		}
		return "optional"
	default:
		return "optional, defaulted"
	}
}

// sectionTitle turns "FILE OPERATIONS" into "File Operations".
func sectionTitle(cat shorthand.Category) string {
	words := strings.Fields(strings.ToLower(cat.Title()))
	for i, word := range words {
		if word == "&" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// escape protects pipes inside markdown table cells.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

var anchorRe = regexp.MustCompile(`[^a-z0-9-]`)

// toAnchor converts a heading to a markdown anchor.
func toAnchor(heading string) string {
	// Replace spaces with hyphens and lowercase
	anchor := strings.ToLower(strings.ReplaceAll(heading, " ", "-"))
	// Remove special characters
	return anchorRe.ReplaceAllString(anchor, "")
}
