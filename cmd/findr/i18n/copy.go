package i18n

import (
	"findr/cmd/findr/signup"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Copy holds the user-visible strings of both screens.
type Copy struct {
	AppName      string
	HomeTitle    string
	CreateGame   string
	FindGame     string
	RegisterHead string

	EmailPlaceholder    string
	PasswordPlaceholder string
	UsernamePlaceholder string

	EmailHint    string
	PasswordHint string
	UsernameHint string

	RegisterButton string
	FindPrompt     string
	Registered     string
	Aborted        string

	HelpNext   string
	HelpPrev   string
	HelpSubmit string
	HelpQuit   string
}

var (
	tags      = []language.Tag{language.English, language.French}
	supported = language.NewMatcher(tags)
)

// Match returns the closest supported tag for the requested language name,
// English when nothing matches.
func Match(lang string) language.Tag {
	if lang == "" {
		return language.English
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := supported.Match(tag)
	if conf == language.No {
		return language.English
	}
	return tags[idx]
}

// For returns the copy for tag. Unsupported tags get English copy.
func For(tag language.Tag) Copy {
	p := message.NewPrinter(Match(tag.String()))
	return Copy{
		AppName:      p.Sprintf("app.name"),
		HomeTitle:    p.Sprintf("home.title"),
		CreateGame:   p.Sprintf("home.create"),
		FindGame:     p.Sprintf("home.find"),
		RegisterHead: p.Sprintf("register.title"),

		EmailPlaceholder:    p.Sprintf("register.email.placeholder"),
		PasswordPlaceholder: p.Sprintf("register.password.placeholder"),
		UsernamePlaceholder: p.Sprintf("register.username.placeholder"),

		EmailHint:    p.Sprintf("register.email.hint"),
		PasswordHint: p.Sprintf("register.password.hint", signup.MinPasswordLen),
		UsernameHint: p.Sprintf("register.username.hint"),

		RegisterButton: p.Sprintf("register.submit"),
		FindPrompt:     p.Sprintf("find.prompt"),
		Registered:     p.Sprintf("register.done"),
		Aborted:        p.Sprintf("register.aborted"),

		HelpNext:   p.Sprintf("help.next"),
		HelpPrev:   p.Sprintf("help.prev"),
		HelpSubmit: p.Sprintf("help.submit"),
		HelpQuit:   p.Sprintf("help.quit"),
	}
}

// Hint returns the hint shown under f while it is displayed as invalid.
func (c Copy) Hint(f signup.Field) string {
	switch f {
	case signup.Email:
		return c.EmailHint
	case signup.Password:
		return c.PasswordHint
	case signup.Username:
		return c.UsernameHint
	}
	return ""
}

// Placeholder returns the placeholder of the input for f.
func (c Copy) Placeholder(f signup.Field) string {
	switch f {
	case signup.Email:
		return c.EmailPlaceholder
	case signup.Password:
		return c.PasswordPlaceholder
	case signup.Username:
		return c.UsernamePlaceholder
	}
	return ""
}
