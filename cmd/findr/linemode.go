package main

import (
	"errors"
	"fmt"
	"io"

	"findr/cmd/findr/i18n"
	"findr/cmd/findr/signup"

	"github.com/chzyer/readline"
)

// lineReader is the part of *readline.Instance used by line mode.
type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	ReadPassword(prompt string) ([]byte, error)
}

func newLineReader(in io.ReadCloser, out io.Writer) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("starting line editor: %w", err)
	}
	return rl, nil
}

// runLineRegistration fills form one field at a time. Answering a prompt
// counts as leaving the field, so an invalid answer shows its hint and the
// same field is asked again.
func runLineRegistration(rl lineReader, w io.Writer, c i18n.Copy, form *signup.Form) error {
	fmt.Fprintln(w, c.RegisterHead)
	fmt.Fprintln(w)

	for _, f := range signup.Fields {
		for {
			v, err := readField(rl, c, f)
			if err != nil {
				if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
					return errAborted
				}
				return fmt.Errorf("reading %s: %w", f, err)
			}
			form.Set(f, v)
			form.Touch(f)
			if !form.Invalid(f) {
				break
			}
			fmt.Fprintln(w, "  "+c.Hint(f))
		}
	}

	if !form.Submit() {
		// Every field was accepted above, so this is a bug.
		return errors.New("registration is not submittable")
	}
	return nil
}

func readField(rl lineReader, c i18n.Copy, f signup.Field) (string, error) {
	prompt := c.Placeholder(f) + ": "
	switch f {
	case signup.Password:
		b, err := rl.ReadPassword(prompt)
		return string(b), err
	case signup.Username:
		prompt = "@ " + prompt
	}
	rl.SetPrompt(prompt)
	return rl.Readline()
}
