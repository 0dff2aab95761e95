package signup

import (
	"regexp"
	"unicode/utf8"
)

// MinPasswordLen is the shortest accepted password, in characters.
const MinPasswordLen = 6

var (
	// emailRe is a structural check only: something, '@', something, '.', something.
	emailRe    = regexp.MustCompile(`.+@.+\..+`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return s != "" && emailRe.MatchString(s)
}

// ValidPassword reports whether s is at least MinPasswordLen characters long.
func ValidPassword(s string) bool {
	return s != "" && utf8.RuneCountInString(s) >= MinPasswordLen
}

// ValidUsername reports whether s is made only of ASCII letters, digits and underscores.
func ValidUsername(s string) bool {
	return s != "" && usernameRe.MatchString(s)
}

// Valid applies the predicate of field f to s.
// Unknown fields are never valid.
func Valid(f Field, s string) bool {
	switch f {
	case Email:
		return ValidEmail(s)
	case Password:
		return ValidPassword(s)
	case Username:
		return ValidUsername(s)
	}
	return false
}
