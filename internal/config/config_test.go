package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFrom_FullFile(t *testing.T) {
	path := writeConfig(t, "default_remote: upstream\ndefault_branch: trunk\ngit_binary: /usr/local/bin/git\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.DefaultRemote != "upstream" {
		t.Errorf("DefaultRemote = %q, want %q", cfg.DefaultRemote, "upstream")
	}
	if cfg.DefaultBranch != "trunk" {
		t.Errorf("DefaultBranch = %q, want %q", cfg.DefaultBranch, "trunk")
	}
	if cfg.GitBinary != "/usr/local/bin/git" {
		t.Errorf("GitBinary = %q, want %q", cfg.GitBinary, "/usr/local/bin/git")
	}
}

func TestLoadFrom_PartialFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, "default_remote: upstream\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.DefaultRemote != "upstream" {
		t.Errorf("DefaultRemote = %q, want %q", cfg.DefaultRemote, "upstream")
	}
	if cfg.DefaultBranch != "main" {
		t.Errorf("DefaultBranch = %q, want default %q", cfg.DefaultBranch, "main")
	}
	if cfg.GitBinary != "git" {
		t.Errorf("GitBinary = %q, want default %q", cfg.GitBinary, "git")
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := writeConfig(t, "default_remote: [unterminated\n")

	_, err := LoadFrom(path)
	if err == nil {
		t.Error("LoadFrom() expected error for malformed YAML, got nil")
	}
}
