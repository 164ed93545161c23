package main

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/g/internal/ui/styles"
)

// colorOutput returns the writer primary output should go through and
// whether it is worth styling. mode is the validated config value.
func colorOutput(w io.Writer, mode string) (io.Writer, bool) {
	switch mode {
	case "never":
		return w, false
	case "always":
		return &colorprofile.Writer{Forward: w, Profile: colorprofile.ANSI256}, true
	}

	if !isTerminal(w) {
		return w, false
	}
	// Downsamples to what the terminal supports and honours NO_COLOR.
	cw := colorprofile.NewWriter(w, os.Environ())
	if cw.Profile == colorprofile.NoTTY {
		return w, false
	}
	return cw, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// themeStyles builds help styles for the configured theme.
func themeStyles(name string) *styles.Styles {
	theme, ok := styles.Lookup(name)
	if !ok {
		theme = styles.DefaultTheme
	}
	st := styles.New(theme)
	return &st
}
