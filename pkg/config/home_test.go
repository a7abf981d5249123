package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetHome_EnvVar(t *testing.T) {
	ResetHome()
	t.Setenv("UITESTEXT_HOME", "/custom/path")

	got := GetHome()
	if got != "/custom/path" {
		t.Errorf("GetHome() = %q, want %q", got, "/custom/path")
	}
}

func TestGetHome_FallbackNotEmpty(t *testing.T) {
	ResetHome()
	t.Setenv("UITESTEXT_HOME", "")

	// cwd, unless the test binary happens to live in a bin/ directory
	if got := GetHome(); got == "" {
		t.Error("GetHome() returned empty string")
	}
}

func TestGetHome_Cached(t *testing.T) {
	ResetHome()
	t.Setenv("UITESTEXT_HOME", "/first")

	first := GetHome()

	t.Setenv("UITESTEXT_HOME", "/second")
	second := GetHome()

	if first != second {
		t.Errorf("GetHome() not cached: first=%q, second=%q", first, second)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	ResetHome()
	t.Setenv("UITESTEXT_HOME", home)

	if got := DefaultConfigPath(); got != "" {
		t.Errorf("DefaultConfigPath() = %q, want empty", got)
	}

	path := filepath.Join(home, "uitestext.yml")
	if err := os.WriteFile(path, []byte("controls: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := DefaultConfigPath(); got != path {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, path)
	}
}
