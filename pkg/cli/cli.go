// Package cli provides the command-line interface for uitestext.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uitestext/pkg/config"
	"github.com/devicelab-dev/uitestext/pkg/control"
	"github.com/devicelab-dev/uitestext/pkg/host/pagesource"
	"github.com/devicelab-dev/uitestext/pkg/input"
	"github.com/devicelab-dev/uitestext/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file declaring controls, logging and pointer settings",
		EnvVars: []string{"UITESTEXT_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "pointer",
		Usage:   "Click backend (dry-run, robot); overrides the config file",
		EnvVars: []string{"UITESTEXT_POINTER"},
	},
	&cli.StringFlag{
		Name:  "log-file",
		Usage: "Write a rotated JSON log to this file",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"UITESTEXT_VERBOSE"},
	},
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:    "uitestext",
		Usage:   "Find, probe and click controls in a UI hierarchy snapshot",
		Version: Version,
		Description: `uitestext loads a UI hierarchy snapshot (page source XML) and runs
control lookups and clicks against it.

Examples:
  uitestext hierarchy window.xml
  uitestext find --id login window.xml
  uitestext --config uitestext.yaml exists --declared LoginButton window.xml
  uitestext --pointer robot click --id panel --first-visible-child window.xml`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			hierarchyCommand,
			findCommand,
			existsCommand,
			clickCommand,
		},
		After: func(c *cli.Context) error {
			logger.Close()
			return nil
		},
		Writer:    stdout,
		ErrWriter: stderr,
	}
}

// Execute runs the CLI.
func Execute() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session is what every command works against: the declared controls and
// a host over the snapshot named by the single argument.
type session struct {
	host     *pagesource.Host
	registry *control.Registry
	root     *control.Control
}

func openSession(c *cli.Context) (*session, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("expected one snapshot file argument, got %d", c.NArg())
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err := setupLogging(c, cfg); err != nil {
		return nil, err
	}

	backend := c.String("pointer")
	if backend == "" {
		backend = cfg.Pointer.Backend
	}
	pointer, err := input.New(backend, cfg.Pointer.Settle())
	if err != nil {
		return nil, err
	}

	host, err := pagesource.LoadFile(c.Args().First(), pointer)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	logger.Debug("loaded snapshot %s", c.Args().First())

	return &session{
		host:     host,
		registry: cfg.Registry(),
		root:     control.FromNode(host, host.Root()),
	}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

func setupLogging(c *cli.Context, cfg *config.Config) error {
	opts := cfg.Log.Options()
	if f := c.String("log-file"); f != "" {
		opts.File = f
	}
	if c.Bool("verbose") {
		opts.Level = "debug"
		opts.Console = c.App.ErrWriter
	}
	return logger.Init(opts)
}
