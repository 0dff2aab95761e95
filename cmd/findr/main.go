package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"findr/cmd/findr/i18n"
	"findr/pkg/lib"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errAborted = fmt.Errorf("%w by user", lib.ErrInterrupted)

// app carries what every command needs once flags and config are resolved.
type app struct {
	cfg        Config
	configPath string
	copy       i18n.Copy
	log        *slog.Logger
	logCloser  io.Closer

	stdin  *os.File
	stdout io.Writer
	stderr io.Writer
}

func newApp() *app {
	return &app{
		log:       slog.New(slog.DiscardHandler),
		logCloser: nopCloser{},
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// setup resolves the configuration for cmd and opens the log file.
func (a *app) setup(cmd *cobra.Command) error {
	environ := env.ToMap(os.Environ())

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		dir, err := resolveConfigDir(environ)
		if err != nil {
			return err
		}
		path = filepath.Join(dir, configFile)
	}
	a.configPath = path

	cfg, err := loadConfig(path, environ)
	if err != nil {
		return err
	}
	if err := applyFlags(&cfg, cmd.Flags()); err != nil {
		return err
	}
	a.cfg = cfg
	a.copy = i18n.For(i18n.Match(cfg.Lang))

	log, closer, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log, a.logCloser = log, closer
	a.log.Debug("config loaded", "path", path, "lang", cfg.Lang, "no_tui", cfg.NoTUI)
	return nil
}

func (a *app) close() {
	a.logCloser.Close()
}

// programOptions keeps stdout free for the registration payload.
func (a *app) programOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithInput(a.stdin),
		tea.WithOutput(a.stderr),
	}
	if a.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

func main() {
	a := newApp()
	root := newRootCommand(a)

	root.SilenceErrors = true
	root.SilenceUsage = true

	err := root.Execute()
	a.close()
	if err != nil {
		lib.Exit(err)
	}
}
