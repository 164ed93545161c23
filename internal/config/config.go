package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultGit is the program invoked when nothing else is configured.
const DefaultGit = "git"

// Config holds the g configuration.
type Config struct {
	Git     string            `toml:"git"`
	Echo    bool              `toml:"echo"`
	Color   string            `toml:"color"`
	Theme   string            `toml:"theme"`
	Aliases map[string]string `toml:"aliases"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Git:     DefaultGit,
		Echo:    true,
		Color:   "auto",
		Theme:   "default",
		Aliases: map[string]string{},
	}
}

// rawConfig distinguishes unset fields from zero values.
type rawConfig struct {
	Git     string            `toml:"git"`
	Echo    *bool             `toml:"echo"`
	Color   string            `toml:"color"`
	Theme   string            `toml:"theme"`
	Aliases map[string]string `toml:"aliases"`
}

// configPath returns the path of the global config file.
func configPath() (string, error) {
	if p := os.Getenv("G_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "g", "config.toml"), nil
}

// Load reads the global config and applies env overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return withEnv(Default()), nil
	}
	cfg, err := LoadFile(path)
	return withEnv(cfg), err
}

// LoadFile reads a config file at path. A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates config TOML.
func Parse(data []byte) (Config, error) {
	var raw rawConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	cfg := Default()
	if raw.Git != "" {
		cfg.Git = raw.Git
	}
	if raw.Echo != nil {
		cfg.Echo = *raw.Echo
	}
	if raw.Color != "" {
		cfg.Color = raw.Color
	}
	if raw.Theme != "" {
		cfg.Theme = raw.Theme
	}
	if raw.Aliases != nil {
		cfg.Aliases = raw.Aliases
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := validateEnum(c.Color, "color", ValidColorModes); err != nil {
		return err
	}
	if err := validateEnum(c.Theme, "theme", ValidThemeNames); err != nil {
		return err
	}
	return validateAliasNames(c.Aliases)
}

// withEnv applies environment overrides.
func withEnv(c Config) Config {
	if g := os.Getenv("G_GIT"); g != "" {
		c.Git = g
	}
	return c
}
