package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.French

	message.SetString(lang, "app.name", "Findr")
	message.SetString(lang, "home.title", "Bienvenue sur Findr")
	message.SetString(lang, "home.create", "Créer une partie")
	message.SetString(lang, "home.find", "Trouver une partie")

	message.SetString(lang, "register.title", "Inscris-toi sur Findr !")
	message.SetString(lang, "register.email.placeholder", "Email")
	message.SetString(lang, "register.password.placeholder", "Mot de passe")
	message.SetString(lang, "register.username.placeholder", "pseudo")
	message.SetString(lang, "register.email.hint", "L'email doit contenir un @ et un point")
	message.SetString(lang, "register.password.hint", "Le mot de passe doit faire au moins %d caractères")
	message.SetString(lang, "register.username.hint", "Le pseudo ne peut contenir que des lettres, des chiffres et des underscores")
	message.SetString(lang, "register.submit", "S'inscrire")
	message.SetString(lang, "register.done", "Inscription terminée.")
	message.SetString(lang, "register.aborted", "Inscription annulée.")

	message.SetString(lang, "find.prompt", "Trouver une partie : ")

	message.SetString(lang, "help.next", "champ suivant")
	message.SetString(lang, "help.prev", "champ précédent")
	message.SetString(lang, "help.submit", "s'inscrire")
	message.SetString(lang, "help.quit", "quitter")
}
