package main

import (
	"errors"
	"fmt"
	"io"

	"findr/cmd/findr/i18n"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// intent is what the user picked on the landing screen.
type intent int

const (
	intentNone intent = iota
	intentCreate
	intentFind
)

func (i intent) String() string {
	switch i {
	case intentCreate:
		return "create"
	case intentFind:
		return "find"
	default:
		return "none"
	}
}

func parseIntent(s string) intent {
	switch s {
	case intentCreate.String():
		return intentCreate
	case intentFind.String():
		return intentFind
	}
	return intentNone
}

// newHomeForm builds the landing menu. The chosen option is written to choice.
func newHomeForm(c i18n.Copy, choice *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(c.HomeTitle).
				Options(
					huh.NewOption(c.CreateGame, intentCreate.String()),
					huh.NewOption(c.FindGame, intentFind.String()),
				).
				Value(choice),
		),
	).WithShowHelp(false)
}

// homeResult maps the state of the landing form to an intent.
// The second value is false while the form is still open.
func homeResult(state huh.FormState, choice string) (intent, bool) {
	switch state {
	case huh.StateCompleted:
		return parseIntent(choice), true
	case huh.StateAborted:
		return intentNone, true
	}
	return intentNone, false
}

// homeModel is the landing screen: a header above the huh menu.
type homeModel struct {
	form   *huh.Form
	choice *string
	copy   i18n.Copy
	intent intent
	done   bool
}

func newHomeModel(c i18n.Copy) homeModel {
	choice := intentCreate.String()
	return homeModel{
		form:   newHomeForm(c, &choice),
		choice: &choice,
		copy:   c,
	}
}

func (m homeModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.done = true
		return m, tea.Quit
	}

	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}
	if in, done := homeResult(m.form.State, *m.choice); done {
		m.intent = in
		m.done = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m homeModel) View() string {
	if m.done {
		return ""
	}
	return styleHeader.Render(m.copy.AppName) + "\n\n" + m.form.View()
}

// runHomeTUI shows the landing screen and returns the chosen intent.
func runHomeTUI(c i18n.Copy, opts ...tea.ProgramOption) (intent, error) {
	final, err := tea.NewProgram(newHomeModel(c), opts...).Run()
	if err != nil {
		return intentNone, err
	}
	m, ok := final.(homeModel)
	if !ok {
		return intentNone, fmt.Errorf("unexpected model type %T", final)
	}
	if m.intent == intentNone {
		return intentNone, errAborted
	}
	return m.intent, nil
}

// runHomeAccessible asks the same question as plain prompts, for --no-tui.
func runHomeAccessible(c i18n.Copy, in io.Reader, out io.Writer) (intent, error) {
	choice := intentCreate.String()
	form := newHomeForm(c, &choice).
		WithAccessible(true).
		WithInput(in).
		WithOutput(out)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return intentNone, errAborted
		}
		return intentNone, err
	}
	return parseIntent(choice), nil
}
