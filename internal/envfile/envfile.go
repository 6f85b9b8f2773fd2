// Package envfile loads environment variables from .env files.
//
// Capstan shells out to git, which honors GIT_* variables (author identity,
// GIT_SSH_COMMAND, GIT_CONFIG_*). Loading .env.local and .env lets users set
// these per repository without exporting them shell-wide. Variables already
// set in the environment always take precedence over file values.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist. Returns an error only for read failures.
func Load(path string) error {
	vars, err := parse(path)
	if err != nil {
		return err
	}
	for key, value := range vars {
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	return nil
}

// parse reads KEY=VALUE pairs from the file, skipping blanks and comments.
// A missing file yields an empty map, not an error.
func parse(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	vars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseLine(line)
		if ok {
			vars[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vars, nil
}

// parseLine extracts KEY=VALUE from a line, handling an optional "export "
// prefix and optional single or double quotes around the value.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimPrefix(line, "export ")

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	value = unquote(value)
	return key, value, true
}

// unquote strips one matching pair of surrounding quotes, if present.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
