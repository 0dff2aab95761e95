package main

import "github.com/spf13/cobra"

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Create or find a game",
		Long: appName + " opens on a landing screen offering to create or find a game.\n" +
			"Creating a game starts the registration form; the completed registration\n" +
			"is written to stdout as YAML for the account service to pick up.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.home()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.config/"+appName+"/"+configFile+")")
	flags.String("lang", "", "interface language (en, fr)")
	flags.String("log-file", "", "write debug logs to this file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("no-tui", false, "plain prompts instead of the interactive screens")

	root.AddCommand(newRegisterCommand(a))
	root.AddCommand(newFindCommand(a))
	root.AddCommand(newConfigCommand())
	return root
}

// home shows the landing screen, then runs the flow that was picked.
func (a *app) home() error {
	var (
		in  intent
		err error
	)
	if a.cfg.NoTUI {
		in, err = runHomeAccessible(a.copy, a.stdin, a.stderr)
	} else {
		in, err = runHomeTUI(a.copy, a.programOptions()...)
	}
	if err != nil {
		return err
	}
	a.log.Info("landing choice", "intent", in.String())

	switch in {
	case intentCreate:
		return a.register()
	case intentFind:
		return a.find()
	}
	return errAborted
}
