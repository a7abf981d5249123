package cli

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/devicelab-dev/uitestext/pkg/config"
	"github.com/devicelab-dev/uitestext/pkg/core"
)

const testSnapshot = `<?xml version="1.0" encoding="UTF-8"?>
<hierarchy>
  <window automationId="main" name="Main" x="0" y="0" width="800" height="600">
    <button automationId="ok" name="OK" x="10" y="10" width="80" height="30"/>
    <pane automationId="panel" x="0" y="100" width="800" height="400">
      <text automationId="hint" name="Hidden hint" visible="false" x="10" y="110" width="200" height="20"/>
      <text automationId="welcome" name="Welcome back" x="10" y="140" width="200" height="20"/>
    </pane>
  </window>
</hierarchy>`

// setup writes the snapshot into a fresh home directory so no config from
// the developer's machine is picked up.
func setup(t *testing.T) (dir, snapshot string) {
	t.Helper()
	dir = t.TempDir()
	config.ResetHome()
	t.Setenv("UITESTEXT_HOME", dir)
	t.Setenv("UITESTEXT_CONFIG", "")
	t.Setenv("UITESTEXT_POINTER", "")
	t.Cleanup(config.ResetHome)

	snapshot = filepath.Join(dir, "window.xml")
	if err := os.WriteFile(snapshot, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, snapshot
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run(append([]string{"uitestext"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestHierarchyCommand(t *testing.T) {
	_, snapshot := setup(t)

	out, _, err := run(t, "hierarchy", snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `window id="main" name="Main"
  button id="ok" name="OK"
  pane id="panel"
    text id="hint" name="Hidden hint" [invisible]
    text id="welcome" name="Welcome back"
`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestHierarchyCommand_WithCompact(t *testing.T) {
	_, snapshot := setup(t)

	out, _, err := run(t, "hierarchy", "--compact", snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected header + 5 rows, got %d", len(records))
	}
	if diff := cmp.Diff(csvHeader, records[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	want := []string{"2", "button", "ok", "OK", "", "normal", "10", "10", "80", "30"}
	if diff := cmp.Diff(want, records[2]); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestHierarchyCommand_Args(t *testing.T) {
	setup(t)

	if _, _, err := run(t, "hierarchy"); err == nil {
		t.Error("expected error without snapshot argument")
	}
	if _, _, err := run(t, "hierarchy", "/nonexistent/window.xml"); err == nil {
		t.Error("expected error for missing snapshot")
	}
}

func TestFindCommand(t *testing.T) {
	_, snapshot := setup(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"by id", []string{"--id", "ok"}, `button id="ok" name="OK" at (10, 10) 80x30`},
		{"by id and type", []string{"--type", "pane", "--id", "panel"}, `pane id="panel" at (0, 100) 800x400`},
		{"by prop", []string{"--prop", "Name~=welcome"}, `text id="welcome" name="Welcome back" at (10, 140) 200x20`},
		{"by props", []string{"--prop", "ControlType=text", "--prop", "Name=Hidden hint"}, `text id="hint" name="Hidden hint" [invisible] at (10, 110) 200x20`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(append([]string{"find"}, tt.args...), snapshot)
			out, _, err := run(t, args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFindCommand_Errors(t *testing.T) {
	_, snapshot := setup(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"not found", []string{"--id", "missing"}, core.ErrElementNotFound},
		{"type mismatch", []string{"--type", "edit", "--id", "ok"}, core.ErrElementNotFound},
		{"no selection", nil, core.ErrInvalidArgument},
		{"bad prop", []string{"--prop", "nonsense"}, core.ErrInvalidArgument},
		{"bad type", []string{"--type", "blink", "--id", "ok"}, core.ErrInvalidArgument},
		{"undeclared", []string{"--declared", "LoginButton"}, core.ErrMissingIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(append([]string{"find"}, tt.args...), snapshot)
			_, _, err := run(t, args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExistsCommand(t *testing.T) {
	_, snapshot := setup(t)

	tests := []struct {
		id   string
		want string
	}{
		{"ok", "true\n"},
		{"missing", "false\n"},
	}

	for _, tt := range tests {
		out, _, err := run(t, "exists", "--id", tt.id, snapshot)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != tt.want {
			t.Errorf("exists --id %s = %q, want %q", tt.id, out, tt.want)
		}
	}
}

func TestClickCommand_DryRun(t *testing.T) {
	_, snapshot := setup(t)

	out, stderr, err := run(t, "--verbose", "click", "--id", "ok", snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "clicked *[AutomationId=\"ok\"]\n" {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(stderr, "dry-run click at (50, 25)") {
		t.Errorf("expected dry-run record, got %q", stderr)
	}
	if !strings.Contains(stderr, "button ok clicked.") {
		t.Errorf("expected click record, got %q", stderr)
	}
}

func TestClickCommand_FirstVisibleChild(t *testing.T) {
	_, snapshot := setup(t)

	_, stderr, err := run(t, "--verbose", "click", "--first-visible-child", "--id", "panel", snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// hint is invisible, so welcome is clicked
	if !strings.Contains(stderr, "text welcome clicked.") {
		t.Errorf("expected welcome to be clicked, got %q", stderr)
	}

	_, _, err = run(t, "click", "--first-visible-child", "--id", "ok", snapshot)
	if !errors.Is(err, core.ErrElementNotFound) {
		t.Errorf("expected ErrElementNotFound for button without text, got %v", err)
	}
}

func TestClickCommand_DeclaredControl(t *testing.T) {
	dir, snapshot := setup(t)
	logFile := filepath.Join(dir, "run.log")
	cfgPath := filepath.Join(dir, "custom.yaml")
	content := `
controls:
  OkButton:
    type: button
    automationId: ok
pointer:
  backend: dry-run
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "--config", cfgPath, "--log-file", logFile, "click", "--declared", "OkButton", snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "clicked") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "OkButton ok clicked.") {
		t.Errorf("expected declared name in log, got %s", data)
	}
}

func TestClickCommand_DefaultConfigFromHome(t *testing.T) {
	dir, snapshot := setup(t)
	content := "controls:\n  Panel:\n    type: pane\n    automationId: panel\n"
	if err := os.WriteFile(filepath.Join(dir, "uitestext.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "exists", "--declared", "Panel", snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("output = %q", out)
	}
}

func TestClickCommand_UnknownPointer(t *testing.T) {
	_, snapshot := setup(t)

	_, _, err := run(t, "--pointer", "vnc", "click", "--id", "ok", snapshot)
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseProps(t *testing.T) {
	props, err := parseProps([]string{"AutomationId=ok", "Name~=Sav", "ClassName=a=b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := core.PropertyExpressions{
		{Name: "AutomationId", Value: "ok"},
		{Name: "Name", Value: "Sav", Operator: core.OpContains},
		{Name: "ClassName", Value: "a=b"},
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", "=value", "novalue"} {
		if _, err := parseProps([]string{bad}); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("parseProps(%q): expected ErrInvalidArgument, got %v", bad, err)
		}
	}
}
