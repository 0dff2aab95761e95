package main

import (
	"log/slog"
	"strings"

	"findr/cmd/findr/i18n"
	"findr/cmd/findr/signup"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusButton is the focus index of the Register button, after the inputs.
var focusButton = len(signup.Fields)

type registerKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func newRegisterKeys(c i18n.Copy) registerKeys {
	return registerKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", c.HelpNext)),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", c.HelpPrev)),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", c.HelpSubmit)),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", c.HelpQuit)),
	}
}

func (k registerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Quit}
}

func (k registerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// submission receives the registration handed off by the form.
// It is shared by pointer so it survives the model copies bubbletea makes.
type submission struct {
	reg  signup.Registration
	done bool
}

// registerModel is the registration screen. It owns one signup.Form and
// mirrors every keystroke and focus change into it.
type registerModel struct {
	form   *signup.Form
	inputs []textinput.Model
	focus  int
	copy   i18n.Copy
	keys   registerKeys
	help   help.Model
	result *submission
	log    *slog.Logger
}

func newRegisterModel(c i18n.Copy, log *slog.Logger) registerModel {
	result := &submission{}
	form := signup.New(
		signup.WithLogger(log),
		signup.WithSubmit(func(r signup.Registration) {
			result.reg = r
			result.done = true
		}),
	)

	inputs := make([]textinput.Model, len(signup.Fields))
	for i, f := range signup.Fields {
		in := textinput.New()
		in.Placeholder = c.Placeholder(f)
		in.Prompt = "  "
		switch f {
		case signup.Password:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		case signup.Username:
			in.Prompt = "@ "
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	return registerModel{
		form:   form,
		inputs: inputs,
		copy:   c,
		keys:   newRegisterKeys(c),
		help:   help.New(),
		result: result,
		log:    log,
	}
}

// Submitted returns the handed-off registration, if the form was submitted.
func (m registerModel) Submitted() (signup.Registration, bool) {
	return m.result.reg, m.result.done
}

func (m registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Debug("registration abandoned", "touched", len(m.form.TouchedFields()))
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		case key.Matches(msg, m.keys.Submit):
			if m.focus != focusButton {
				return m, m.moveFocus(1)
			}
			// The button is inert until every field is valid.
			if m.form.Submit() {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.focus == focusButton {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.form.Set(signup.Fields[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

// moveFocus moves the focus by delta, wrapping around. The field being left
// is marked as touched.
func (m *registerModel) moveFocus(delta int) tea.Cmd {
	n := len(m.inputs) + 1
	if m.focus != focusButton {
		m.inputs[m.focus].Blur()
		m.form.Touch(signup.Fields[m.focus])
	}
	m.focus = ((m.focus+delta)%n + n) % n
	if m.focus == focusButton {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

func (m registerModel) View() string {
	var sb strings.Builder

	sb.WriteString(styleHeader.Render(m.copy.AppName) + "\n\n")
	sb.WriteString(styleTitle.Render(m.copy.RegisterHead) + "\n")

	for i, f := range signup.Fields {
		style := styleInput
		hint := ""
		if m.form.Invalid(f) {
			style = styleInputInvalid
			hint = m.copy.Hint(f)
		}
		sb.WriteString(style.Render(m.inputs[i].View()) + "\n")
		// An empty line keeps the layout still while the hint is hidden.
		sb.WriteString(styleHint.Render(hint) + "\n")
	}

	button := styleButtonDisabled
	if m.form.CanSubmit() {
		button = styleButton
		if m.focus == focusButton {
			button = styleButtonFocused
		}
	}
	label := m.copy.RegisterButton
	if m.focus == focusButton {
		label = "› " + label
	}
	sb.WriteString(button.Render(label) + "\n")

	sb.WriteString(styleHelp.Render(m.help.View(m.keys)))
	return sb.String()
}
