package main

import (
	"fmt"

	"findr/cmd/findr/signup"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRegisterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Fill in the registration form",
		Long: "Open the registration form. Once submitted, the registration is written\n" +
			"to stdout as a YAML document (email, password, username).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.register()
		},
	}
}

func (a *app) register() error {
	var (
		reg signup.Registration
		err error
	)
	if a.cfg.NoTUI {
		reg, err = a.registerLines()
	} else {
		reg, err = a.registerTUI()
	}
	if err != nil {
		return err
	}

	if err := (yamlSink{w: a.stdout}).Deliver(reg); err != nil {
		return err
	}
	fmt.Fprintln(a.stderr, a.copy.Registered)
	return nil
}

func (a *app) registerTUI() (signup.Registration, error) {
	final, err := tea.NewProgram(newRegisterModel(a.copy, a.log), a.programOptions()...).Run()
	if err != nil {
		return signup.Registration{}, fmt.Errorf("registration screen: %w", err)
	}
	m, ok := final.(registerModel)
	if !ok {
		return signup.Registration{}, fmt.Errorf("unexpected model type %T", final)
	}
	reg, ok := m.Submitted()
	if !ok {
		return signup.Registration{}, errAborted
	}
	return reg, nil
}

func (a *app) registerLines() (signup.Registration, error) {
	// Prompts go to stderr so stdout only carries the payload.
	rl, err := newLineReader(a.stdin, a.stderr)
	if err != nil {
		return signup.Registration{}, err
	}
	defer rl.Close()

	var reg signup.Registration
	form := signup.New(
		signup.WithLogger(a.log),
		signup.WithSubmit(func(r signup.Registration) { reg = r }),
	)
	if err := runLineRegistration(rl, a.stderr, a.copy, form); err != nil {
		return signup.Registration{}, err
	}
	return reg, nil
}
