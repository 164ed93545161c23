package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Valid enum values for configuration fields.
var (
	ValidColorModes = []string{"auto", "always", "never"}
	ValidThemeNames = []string{"default", "dracula", "nord", "none"}
)

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateAliasNames rejects alias names that could never be typed as a
// single shell word.
func validateAliasNames(aliases map[string]string) error {
	for name, target := range aliases {
		if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 || strings.HasPrefix(name, "-") {
			return fmt.Errorf("invalid alias name %q", name)
		}
		if target == "" {
			return fmt.Errorf("alias %q has no target", name)
		}
	}
	return nil
}

// ValidateAliases checks every alias against the builtin shorthands:
// targets must exist and names must not shadow a builtin.
// Returns the first problem found, in alias name order.
func ValidateAliases(aliases map[string]string, isBuiltin func(string) bool) error {
	for _, name := range slices.Sorted(maps.Keys(aliases)) {
		if isBuiltin(name) {
			return fmt.Errorf("alias %q shadows a builtin shorthand", name)
		}
		target := aliases[name]
		if !isBuiltin(target) {
			if _, isAlias := aliases[target]; isAlias {
				return fmt.Errorf("alias %q points at alias %q: aliases must target builtin shorthands", name, target)
			}
			return fmt.Errorf("alias %q points at unknown shorthand %q", name, target)
		}
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
