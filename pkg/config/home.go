package config

import (
	"os"
	"path/filepath"
	"sync"
)

const envHome = "UITESTEXT_HOME"

var (
	homeOnce sync.Once
	homeDir  string
)

// GetHome returns the uitestext home directory.
//
// Resolution order:
//  1. $UITESTEXT_HOME environment variable
//  2. Parent of the binary's directory (if binary is in <home>/bin/)
//  3. Current working directory (development fallback)
func GetHome() string {
	homeOnce.Do(func() {
		homeDir = resolveHome()
	})
	return homeDir
}

// DefaultConfigPath returns the config file used when --config is not
// given: the first of FileNames present in the home directory, or "" if
// none is.
func DefaultConfigPath() string {
	home := GetHome()
	for _, name := range FileNames {
		path := filepath.Join(home, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func resolveHome() string {
	if env := os.Getenv(envHome); env != "" {
		return env
	}

	// Binary-relative: <home>/bin/uitestext
	if execPath, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
			execPath = resolved
		}
		binDir := filepath.Dir(execPath)
		if filepath.Base(binDir) == "bin" {
			return filepath.Dir(binDir)
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}

	return "."
}

// ResetHome resets the cached home directory (for testing).
func ResetHome() {
	homeOnce = sync.Once{}
	homeDir = ""
}
