// Package config handles configuration for uitestext.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/uitestext/pkg/control"
	"github.com/devicelab-dev/uitestext/pkg/core"
	"github.com/devicelab-dev/uitestext/pkg/logger"
)

// FileNames are the config file names LoadFromDir looks for, in order.
var FileNames = []string{"uitestext.yaml", "uitestext.yml"}

// Config represents the workspace configuration (uitestext.yaml).
type Config struct {
	// Declared controls, keyed by name
	Controls map[string]ControlConfig `yaml:"controls"`

	Log     LogConfig     `yaml:"log"`
	Pointer PointerConfig `yaml:"pointer"`
}

// ControlConfig declares a named control.
type ControlConfig struct {
	Type         core.ControlType `yaml:"type"`
	AutomationID string           `yaml:"automationId"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// PointerConfig selects the click backend.
type PointerConfig struct {
	Backend  string `yaml:"backend"`  // dry-run or robot
	SettleMs int    `yaml:"settleMs"` // Pause between move and click
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, core.ErrInvalidConfig.
			WithMessage(fmt.Sprintf("parse %s", path)).
			WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for uitestext.yaml or uitestext.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range FileNames {
		configPath := filepath.Join(dir, name)
		if _, err := os.Stat(configPath); err == nil {
			return Load(configPath)
		}
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// Validate checks values that YAML decoding cannot.
// Controls without an automation id are allowed; finding them fails later.
func (c *Config) Validate() error {
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return core.ErrInvalidConfig.WithMessage("log rotation limits must not be negative")
	}
	if c.Pointer.SettleMs < 0 {
		return core.ErrInvalidConfig.WithMessage("pointer.settleMs must not be negative")
	}
	return nil
}

// Registry builds a control registry from the declared controls.
func (c *Config) Registry() *control.Registry {
	names := make([]string, 0, len(c.Controls))
	for name := range c.Controls {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]control.Definition, 0, len(names))
	for _, name := range names {
		cc := c.Controls[name]
		defs = append(defs, control.Definition{Name: name, Type: cc.Type, AutomationID: cc.AutomationID})
	}
	return control.NewRegistry(defs...)
}

// Options converts the log section to logger options.
func (l LogConfig) Options() logger.Options {
	return logger.Options{
		File:       l.File,
		Level:      l.Level,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// Settle returns the pause between pointer move and click.
func (p PointerConfig) Settle() time.Duration {
	return time.Duration(p.SettleMs) * time.Millisecond
}
