package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	return path
}

func TestLoad_SetsUnsetVariables(t *testing.T) {
	t.Setenv("CAPSTAN_TEST_AUTHOR", "")
	os.Unsetenv("CAPSTAN_TEST_AUTHOR")

	path := writeEnvFile(t, "CAPSTAN_TEST_AUTHOR=jamie\n")
	if err := Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("CAPSTAN_TEST_AUTHOR") })

	if got := os.Getenv("CAPSTAN_TEST_AUTHOR"); got != "jamie" {
		t.Errorf("CAPSTAN_TEST_AUTHOR = %q, want %q", got, "jamie")
	}
}

func TestLoad_EnvironmentWins(t *testing.T) {
	t.Setenv("CAPSTAN_TEST_REMOTE", "from-env")

	path := writeEnvFile(t, "CAPSTAN_TEST_REMOTE=from-file\n")
	if err := Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := os.Getenv("CAPSTAN_TEST_REMOTE"); got != "from-env" {
		t.Errorf("CAPSTAN_TEST_REMOTE = %q, want existing env value", got)
	}
}

func TestLoad_MissingFileIsNil(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "no-such.env")); err != nil {
		t.Errorf("Load() = %v, want nil for missing file", err)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"plain", "KEY=value", "KEY", "value", true},
		{"export prefix", "export KEY=value", "KEY", "value", true},
		{"double quoted", `KEY="quoted value"`, "KEY", "quoted value", true},
		{"single quoted", "KEY='quoted value'", "KEY", "quoted value", true},
		{"spaces around equals", "KEY = value", "KEY", "value", true},
		{"no equals", "KEYvalue", "", "", false},
		{"empty key", "=value", "", "", false},
		{"empty value ok", "KEY=", "KEY", "", true},
		{"mismatched quotes kept", `KEY="value'`, "KEY", `"value'`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := parseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("parseLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if key != tt.wantKey || value != tt.wantValue {
				t.Errorf("parseLine(%q) = (%q, %q), want (%q, %q)", tt.line, key, value, tt.wantKey, tt.wantValue)
			}
		})
	}
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	os.Unsetenv("CAPSTAN_TEST_SKIP")
	path := writeEnvFile(t, "# a comment\n\nCAPSTAN_TEST_SKIP=yes\n")
	if err := Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("CAPSTAN_TEST_SKIP") })

	if got := os.Getenv("CAPSTAN_TEST_SKIP"); got != "yes" {
		t.Errorf("CAPSTAN_TEST_SKIP = %q, want %q", got, "yes")
	}
}
