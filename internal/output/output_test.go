package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_SuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	if err := printer.Success(map[string]any{"message": "done", "clean": true}); err != nil {
		t.Fatalf("Success() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["message"] != "done" {
		t.Errorf("message = %v, want %q", got["message"], "done")
	}
	if got["clean"] != true {
		t.Errorf("clean = %v, want true", got["clean"])
	}
}

func TestPrinter_SuccessHumanMessage(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "branch created"}); err != nil {
		t.Fatalf("Success() error: %v", err)
	}
	if !strings.Contains(buf.String(), "branch created") {
		t.Errorf("output = %q, want to contain %q", buf.String(), "branch created")
	}
}

func TestPrinter_ErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewOpFailedError("push rejected"))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["error"] != "push rejected" {
		t.Errorf("error = %v, want %q", got["error"], "push rejected")
	}
	if int(got["code"].(float64)) != ExitOpFailed {
		t.Errorf("code = %v, want %d", got["code"], ExitOpFailed)
	}
}

func TestPrinter_ErrorHumanToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(errors.New("something broke"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !strings.Contains(errOut.String(), "something broke") {
		t.Errorf("stderr = %q, want to contain message", errOut.String())
	}
}

func TestPrinter_ErrorUntypedDefaultsToUserError(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(errors.New("plain"))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if int(got["code"].(float64)) != ExitUserError {
		t.Errorf("code = %v, want %d", got["code"], ExitUserError)
	}
}

func TestPrinter_WarnJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Warn("checkout %s skipped", "feature")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["warning"] != "checkout feature skipped" {
		t.Errorf("warning = %v, want formatted message", got["warning"])
	}
}

func TestPrinter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	type envelope struct {
		Success bool `json:"success"`
	}
	if err := printer.WriteJSON(envelope{Success: true}); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"success": true`) {
		t.Errorf("output = %q, want success field", buf.String())
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.KeyValue("Branch", "main")
	if got := buf.String(); got != "Branch: main\n" {
		t.Errorf("KeyValue output = %q, want %q", got, "Branch: main\n")
	}
}
