package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"findr/cmd/findr/signup"
	"findr/pkg/lib"

	"github.com/chzyer/readline"
)

// fakeLines answers prompts from a queue and records what was asked.
type fakeLines struct {
	answers []string
	end     error
	prompt  string
	asked   []string
}

func (f *fakeLines) SetPrompt(p string) { f.prompt = p }

func (f *fakeLines) Readline() (string, error) { return f.next(f.prompt) }

func (f *fakeLines) ReadPassword(p string) ([]byte, error) {
	s, err := f.next(p)
	return []byte(s), err
}

func (f *fakeLines) next(prompt string) (string, error) {
	f.asked = append(f.asked, prompt)
	if len(f.answers) == 0 {
		if f.end != nil {
			return "", f.end
		}
		return "", io.EOF
	}
	s := f.answers[0]
	f.answers = f.answers[1:]
	return s, nil
}

func runLines(t *testing.T, rl *fakeLines) (*signup.Form, *[]signup.Registration, string, error) {
	t.Helper()
	var got []signup.Registration
	form := signup.New(signup.WithSubmit(func(r signup.Registration) { got = append(got, r) }))
	var out bytes.Buffer
	err := runLineRegistration(rl, &out, testCopy, form)
	return form, &got, out.String(), err
}

func TestLineRegistration_AllValid(t *testing.T) {
	rl := &fakeLines{answers: []string{"a@b.co", "abcdef", "ab_1"}}
	_, got, out, err := runLines(t, rl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []signup.Registration{{Email: "a@b.co", Password: "abcdef", Username: "ab_1"}}
	if len(*got) != 1 || (*got)[0] != want[0] {
		t.Fatalf("submitted %+v, want %+v", *got, want)
	}
	wantAsked := []string{"Email: ", "Password: ", "@ username: "}
	if strings.Join(rl.asked, "|") != strings.Join(wantAsked, "|") {
		t.Fatalf("prompts = %q, want %q", rl.asked, wantAsked)
	}
	for _, f := range signup.Fields {
		if strings.Contains(out, testCopy.Hint(f)) {
			t.Errorf("hint for %s printed for a valid answer", f)
		}
	}
}

func TestLineRegistration_ReasksInvalidField(t *testing.T) {
	rl := &fakeLines{answers: []string{"nope", "a@b.co", "short", "abcdef", "bad name", "ab_1"}}
	form, got, out, err := runLines(t, rl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rl.asked) != 6 {
		t.Fatalf("asked %d times, want 6: %q", len(rl.asked), rl.asked)
	}
	for _, f := range signup.Fields {
		if strings.Count(out, testCopy.Hint(f)) != 1 {
			t.Errorf("hint for %s printed %d times, want 1", f, strings.Count(out, testCopy.Hint(f)))
		}
		if !form.Touched(f) {
			t.Errorf("%s not touched", f)
		}
	}
	if len(*got) != 1 || (*got)[0].Username != "ab_1" {
		t.Fatalf("submitted %+v", *got)
	}
}

func TestLineRegistration_Aborts(t *testing.T) {
	for name, end := range map[string]error{
		"interrupt": readline.ErrInterrupt,
		"eof":       io.EOF,
	} {
		t.Run(name, func(t *testing.T) {
			rl := &fakeLines{answers: []string{"a@b.co"}, end: end}
			_, got, _, err := runLines(t, rl)
			if !errors.Is(err, lib.ErrInterrupted) {
				t.Fatalf("err = %v, want an interruption", err)
			}
			if len(*got) != 0 {
				t.Fatalf("submitted after abort: %+v", *got)
			}
		})
	}
}

func TestLineRegistration_ReadError(t *testing.T) {
	rl := &fakeLines{end: errors.New("tty gone")}
	_, _, _, err := runLines(t, rl)
	if err == nil || errors.Is(err, lib.ErrInterrupted) {
		t.Fatalf("err = %v, want a plain read error", err)
	}
	if !strings.Contains(err.Error(), "reading email") {
		t.Fatalf("err = %v, want it to name the field", err)
	}
}
