package main

import (
	"testing"

	"github.com/seawall/capstan/internal/output"
)

func TestNewCloneCmd_ArgBounds(t *testing.T) {
	cmd := newCloneCmd()

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected error for zero args")
	}
	if err := cmd.Args(cmd, []string{"url"}); err != nil {
		t.Errorf("unexpected error for one arg: %v", err)
	}
	if err := cmd.Args(cmd, []string{"url", "dest"}); err != nil {
		t.Errorf("unexpected error for two args: %v", err)
	}
	if err := cmd.Args(cmd, []string{"url", "dest", "extra"}); err == nil {
		t.Error("expected error for three args")
	}
}

func TestNewCommitCmd_MessageFlagRequired(t *testing.T) {
	cmd := newCommitCmd()

	flag := cmd.Flags().Lookup("message")
	if flag == nil {
		t.Fatal("--message flag not defined")
	}
	if flag.Shorthand != "m" {
		t.Errorf("shorthand = %q, want %q", flag.Shorthand, "m")
	}
	if required, ok := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]; !ok || len(required) == 0 {
		t.Error("--message flag is not marked required")
	}
}

func TestNewPushCmd_ArgBounds(t *testing.T) {
	cmd := newPushCmd()

	if err := cmd.Args(cmd, []string{}); err != nil {
		t.Errorf("unexpected error for zero args: %v", err)
	}
	if err := cmd.Args(cmd, []string{"origin", "main"}); err != nil {
		t.Errorf("unexpected error for two args: %v", err)
	}
	if err := cmd.Args(cmd, []string{"origin", "main", "extra"}); err == nil {
		t.Error("expected error for three args")
	}
}

func TestNewBranchCmd_CheckoutDefault(t *testing.T) {
	cmd := newBranchCmd()

	flag := cmd.Flags().Lookup("checkout")
	if flag == nil {
		t.Fatal("--checkout flag not defined")
	}
	if flag.DefValue != "true" {
		t.Errorf("checkout default = %q, want %q", flag.DefValue, "true")
	}
}

func TestOpFailed(t *testing.T) {
	tests := []struct {
		name     string
		errText  string
		fallback string
		wantMsg  string
	}{
		{"uses error text", "fatal: rejected", "push failed", "fatal: rejected"},
		{"falls back when empty", "", "push failed", "push failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := opFailed(tt.errText, tt.fallback)
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
			if output.GetExitCode(err) != output.ExitOpFailed {
				t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitOpFailed)
			}
		})
	}
}

func TestCommitFailureText(t *testing.T) {
	tests := []struct {
		name    string
		errText string
		stdout  string
		want    string
	}{
		{"staging error wins", "staging a.txt failed", "ignored", "staging a.txt failed"},
		{"commit stdout fallback", "", "nothing to commit\n", "nothing to commit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commitFailureText(tt.errText, tt.stdout); got != tt.want {
				t.Errorf("commitFailureText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatBool(t *testing.T) {
	if formatBool(true) != "yes" || formatBool(false) != "no" {
		t.Error("formatBool mapping wrong")
	}
}
