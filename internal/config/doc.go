// Package config loads the optional, read-only g configuration.
//
// g runs fine without any configuration. When present, settings are read from
// ~/.config/g/config.toml and from a .g.toml file in the current repository.
// g never writes either file.
//
// # Configuration Sources (highest priority first)
//
//   - G_GIT env var: git program to invoke
//   - .g.toml in the working directory or a parent, up to the repo root
//     (aliases and echo only)
//   - G_CONFIG env var: alternative path for the global file
//   - ~/.config/g/config.toml
//   - Default values
//
// # Key Settings
//
//   - git: program invoked for every shorthand (default: "git")
//   - echo: print "Running: <command>" before executing (default: true)
//   - color: "auto", "always" or "never" for help output (default: "auto")
//   - theme: help colour theme (default: "default")
//
// # Aliases
//
// User aliases point at builtin shorthands:
//
//	[aliases]
//	s = "status"
//	up = "pushu"
//
// An alias may not shadow a builtin shorthand and may not point at another
// alias.
package config
