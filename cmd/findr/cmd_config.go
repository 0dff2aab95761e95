package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

//go:embed cmd_config_init.yml
var initConfigYAML []byte

const configInitHeader = "# findr configuration\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n" +
	"# Every key can be overridden with a FINDR_* environment variable or a flag.\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n\n"

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the " + appName + " config directory",
		// The config commands must work even when config.yml is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		force bool
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config.yml",
		Long: "Create the " + appName + " config directory and write a starter config.yml.\n\n" +
			"The default config directory is resolved in this order:\n" +
			"  $FINDR_CONFIG_DIR > $XDG_CONFIG_HOME/findr > ~/.config/findr",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				var err error
				dir, err = resolveConfigDir(env.ToMap(os.Environ()))
				if err != nil {
					return err
				}
			}
			path, err := initConfig(dir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "initialised %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yml")
	cmd.Flags().StringVar(&dir, "dir", "", "target config directory (default: auto-resolved)")
	return cmd
}

// initConfig writes the starter config into dir and returns its path.
func initConfig(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, configFile)
	if err := writeInitFile(path, configInitHeader, initConfigYAML, force); err != nil {
		return "", err
	}
	return path, nil
}

func writeInitFile(path, header string, content []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	fmt.Fprint(f, header)
	_, err = f.Write(content)
	return err
}
