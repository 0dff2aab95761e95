package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// appName is the single source of truth for the application name.
const appName = "findr"

const configFile = "config.yml"

var envConfigDir = strings.ToUpper(appName) + "_CONFIG_DIR"

// Config is the resolved configuration of a run.
// Priority: flags > FINDR_* env vars > config.yml > defaults.
type Config struct {
	Settings `yaml:",inline"`
	Games    []Game `yaml:"games"`
}

// Settings are the scalar options, the ones that env vars and flags can set.
type Settings struct {
	Lang      string `yaml:"lang" env:"FINDR_LANG"`
	LogFile   string `yaml:"log_file" env:"FINDR_LOG_FILE"`
	LogLevel  string `yaml:"log_level" env:"FINDR_LOG_LEVEL"`
	NoTUI     bool   `yaml:"no_tui" env:"FINDR_NO_TUI"`
	AltScreen bool   `yaml:"alt_screen" env:"FINDR_ALT_SCREEN"`
}

// Game is an open game listed by `findr find`.
type Game struct {
	Name    string `yaml:"name"`
	Host    string `yaml:"host"`
	Players int    `yaml:"players"`
}

func defaultConfig() Config {
	return Config{
		Settings: Settings{
			Lang:      "en",
			LogLevel:  "info",
			AltScreen: true,
		},
	}
}

// resolveConfigDir returns the base config directory.
// Priority: $FINDR_CONFIG_DIR > $XDG_CONFIG_HOME/findr > ~/.config/findr
func resolveConfigDir(environ map[string]string) (string, error) {
	if v := environ[envConfigDir]; v != "" {
		return v, nil
	}
	if v := environ["XDG_CONFIG_HOME"]; v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads path over the defaults, then applies environ.
// A missing file is not an error; an unreadable or malformed one is.
func loadConfig(path string, environ map[string]string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := parseEnv(&cfg.Settings, environ); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseEnv overlays the FINDR_* variables present in environ onto target.
// Variables that are not set leave the field untouched.
func parseEnv(target *Settings, environ map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyFlags overrides cfg with the flags the user set explicitly.
func applyFlags(cfg *Config, flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("lang") {
		cfg.Lang, err = flags.GetString("lang")
		if err != nil {
			return err
		}
	}
	if flags.Changed("log-file") {
		cfg.LogFile, err = flags.GetString("log-file")
		if err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, err = flags.GetString("log-level")
		if err != nil {
			return err
		}
	}
	if flags.Changed("no-tui") {
		cfg.NoTUI, err = flags.GetBool("no-tui")
		if err != nil {
			return err
		}
	}
	return nil
}
