package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "app.name", "Findr")
	message.SetString(lang, "home.title", "Welcome to Findr")
	message.SetString(lang, "home.create", "Create a Game")
	message.SetString(lang, "home.find", "Find a Game")

	message.SetString(lang, "register.title", "Register for Findr!")
	message.SetString(lang, "register.email.placeholder", "Email")
	message.SetString(lang, "register.password.placeholder", "Password")
	message.SetString(lang, "register.username.placeholder", "username")
	message.SetString(lang, "register.email.hint", "Email must include an @ symbol and a period")
	message.SetString(lang, "register.password.hint", "Password must be at least %d characters")
	message.SetString(lang, "register.username.hint", "Username can only contain letters, numbers, and underscores")
	message.SetString(lang, "register.submit", "Register")
	message.SetString(lang, "register.done", "Registration complete.")
	message.SetString(lang, "register.aborted", "Registration cancelled.")

	message.SetString(lang, "find.prompt", "Find a game: ")

	message.SetString(lang, "help.next", "next field")
	message.SetString(lang, "help.prev", "previous field")
	message.SetString(lang, "help.submit", "register")
	message.SetString(lang, "help.quit", "quit")
}
