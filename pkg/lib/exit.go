package lib

import (
	"errors"
	"fmt"
	"os"
)

// ErrInterrupted marks errors caused by the user leaving a prompt or screen.
var ErrInterrupted = errors.New("interrupted")

// ExitCode returns the process exit code for err: 0 for nil, 130 for an
// interruption, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInterrupted):
		return 130
	default:
		return 1
	}
}

// Exit prints the error and exits the program with ExitCode(err).
// Interruptions exit quietly.
func Exit(err error) {
	code := ExitCode(err)
	if code == 1 {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}
