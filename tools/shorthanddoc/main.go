// Package main provides a CLI tool to generate the markdown reference of
// every g shorthand from the builtin registry.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/g/internal/shorthand"
)

func main() {
	var outputFile string

	flag.StringVar(&outputFile, "out", "docs/SHORTHANDS.md", "output markdown file")
	flag.Parse()

	// Ensure output directory exists
	outputDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output directory: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reg := shorthand.Default()
	if err := RenderMarkdown(f, reg); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering markdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d shorthands\n", outputFile, len(reg.Entries()))
}
