package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the operation defaults applied when a caller omits them.
type Config struct {
	// DefaultRemote is the remote used by push when none is given.
	DefaultRemote string `yaml:"default_remote"`
	// DefaultBranch is the branch used by push when none is given.
	DefaultBranch string `yaml:"default_branch"`
	// GitBinary is the git executable to invoke.
	GitBinary string `yaml:"git_binary"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultRemote: "origin",
		DefaultBranch: "main",
		GitBinary:     "git",
	}
}

// Load reads config.yaml from the capstan config directory.
// A missing file yields the defaults; a malformed file is an error.
func Load() (Config, error) {
	dir := Dir()
	if dir == "" {
		return Default(), nil
	}
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

// LoadFrom reads the config file at the given path, filling any omitted
// field from the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Re-apply defaults for fields the file left empty.
	defaults := Default()
	if cfg.DefaultRemote == "" {
		cfg.DefaultRemote = defaults.DefaultRemote
	}
	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = defaults.DefaultBranch
	}
	if cfg.GitBinary == "" {
		cfg.GitBinary = defaults.GitBinary
	}
	return cfg, nil
}
