// Package styles provides the lipgloss palette used by g's help output.
//
// Themes only hold colours. [New] turns a theme into the set of styles the
// help renderer applies; [Plain] returns styles that emit no escape codes at
// all, for output that is not going to a terminal.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for help output
type Theme struct {
	Primary color.Color // section headings
	Accent  color.Color // shorthand names
	Normal  color.Color // expanded commands
	Muted   color.Color // descriptions
	Error   color.Color // diagnostics
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Normal:  lipgloss.Color("252"), // light gray
		Muted:   lipgloss.Color("244"), // gray
		Error:   lipgloss.Color("196"), // red
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Normal:  lipgloss.Color("#f8f8f2"), // foreground
		Muted:   lipgloss.Color("#6272a4"), // comment
		Error:   lipgloss.Color("#ff5555"), // red
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		Accent:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Normal:  lipgloss.Color("#eceff4"), // nord6 (snow storm)
		Muted:   lipgloss.Color("#4c566a"), // nord3 (polar night)
		Error:   lipgloss.Color("#bf616a"), // nord11 (aurora red)
	}

	// NoneTheme keeps formatting (bold) but uses terminal default colors
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}
)

var themes = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
	"none":    NoneTheme,
}

// Lookup returns the preset theme called name.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Styles are the styles applied to each part of the help output.
type Styles struct {
	Heading lipgloss.Style
	Key     lipgloss.Style
	Command lipgloss.Style
	Summary lipgloss.Style
	Error   lipgloss.Style
}

// New builds styles from a theme.
func New(t Theme) Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Key:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Command: lipgloss.NewStyle().Foreground(t.Normal),
		Summary: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
	}
}

// Plain returns styles that render text unchanged.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{Heading: s, Key: s, Command: s, Summary: s, Error: s}
}
