package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file.
const LocalConfigFileName = ".g.toml"

// LocalConfig holds per-repo overrides. Only settings that cannot change
// which program runs are allowed here.
type LocalConfig struct {
	Echo    *bool             `toml:"echo"`
	Aliases map[string]string `toml:"aliases"`
}

// FindLocal walks up from dir looking for .g.toml. The walk stops at the
// first directory containing .git, or at the filesystem root.
// Returns "" when no file is found.
func FindLocal(dir string) string {
	for {
		candidate := filepath.Join(dir, LocalConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadLocal reads the .g.toml governing dir.
// Returns nil (no error) if there is none.
func LoadLocal(dir string) (*LocalConfig, error) {
	path := FindLocal(dir)
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var local LocalConfig
	md, err := toml.Decode(string(data), &local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := validateAliasNames(local.Aliases); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &local, nil
}

// MergeLocal returns global with local overrides applied.
// Local aliases replace global aliases of the same name.
func MergeLocal(global Config, local *LocalConfig) Config {
	if local == nil {
		return global
	}
	merged := global
	if local.Echo != nil {
		merged.Echo = *local.Echo
	}
	merged.Aliases = maps.Clone(global.Aliases)
	if merged.Aliases == nil {
		merged.Aliases = map[string]string{}
	}
	maps.Copy(merged.Aliases, local.Aliases)
	return merged
}
