package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCmd runs the root command with args and returns captured stdout and
// any error.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	// restore stdout
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String(), err
}

// writeScript writes content to a temporary script file and returns its path.
func writeScript(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write script file: %v", err)
	}
	return path
}

func TestVersionCmd(t *testing.T) {
	output, err := executeCmd(t, "version")
	if err != nil {
		t.Fatalf("version command error = %v", err)
	}

	if !strings.Contains(output, "aimsmodel dev") {
		t.Errorf("output missing version\nGot: %s", output)
	}
}

func TestRunValidate_ValidScript(t *testing.T) {
	path := writeScript(t, `
store: map
steps:
  - op: add
    entries: [{id: a}]
  - op: add
    mapping: {b: {id: b}}
  - op: remove
    id: a
  - op: clear
`)

	output, err := executeCmd(t, "validate", "-f", path)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}

	expectedPhrases := []string{
		"Script is valid!",
		"Store: map",
		"Steps: 4 (add 2, remove 1, set 0, clear 1)",
	}

	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunValidate_InvalidScript(t *testing.T) {
	path := writeScript(t, `
store: sequence
steps:
  - op: add
    entries: [{id: a}]
`)

	_, err := executeCmd(t, "validate", "-f", path)
	if err == nil {
		t.Fatal("validate command expected error for invalid script, got nil")
	}

	if !strings.Contains(err.Error(), "not supported by a sequence store") {
		t.Errorf("error should mention the unsupported op, got: %v", err)
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, err := executeCmd(t, "validate", "-f", "/nonexistent/path/script.yaml")
	if err == nil {
		t.Fatal("validate command expected error for missing file, got nil")
	}

	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error should mention 'failed to read', got: %v", err)
	}
}

func TestRunReplay_Map(t *testing.T) {
	path := writeScript(t, `
steps:
  - op: add
    entries:
      - {id: a, v: 1}
      - {id: b, v: 2}
  - op: remove
    id: a
  - op: remove
    id: a
`)

	output, err := executeCmd(t, "replay", "-f", path)
	if err != nil {
		t.Fatalf("replay command error = %v", err)
	}

	expectedPhrases := []string{
		"Replayed 3 steps against map store",
		"[0] add    events=1 size=2",
		"[1] remove events=1 size=1",
		"[2] remove events=0 size=1",
		"Total events: 2",
		"Final data:",
		"id: b",
	}

	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
	if strings.Contains(output, "id: a") {
		t.Errorf("final data should not contain removed entry a\nGot: %s", output)
	}
}

func TestRunReplay_Sequence(t *testing.T) {
	path := writeScript(t, `
store: sequence
steps:
  - op: clear
  - op: set
    entries:
      - {name: only}
`)

	output, err := executeCmd(t, "replay", "-f", path)
	if err != nil {
		t.Fatalf("replay command error = %v", err)
	}

	expectedPhrases := []string{
		"Replayed 2 steps against sequence store",
		"[0] clear  events=0 size=0",
		"[1] set    events=1 size=1",
		"Total events: 1",
		"name: only",
	}

	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunReplay_InvalidScript(t *testing.T) {
	path := writeScript(t, "steps: []\n")

	_, err := executeCmd(t, "replay", "-f", path)
	if err == nil {
		t.Fatal("replay command expected error for script without steps, got nil")
	}

	if !strings.Contains(err.Error(), "failed to load script") {
		t.Errorf("error should mention 'failed to load script', got: %v", err)
	}
}
