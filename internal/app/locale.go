package app

import (
	"net/http"

	"golang.org/x/text/language"
)

var supportedLocales = []language.Tag{
	language.English,
	language.Russian,
	language.Ukrainian,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// changeLocale stores the best supported match for the requested locale,
// falling back to the Accept-Language header and then to English.
func (app *Application) changeLocale(r *http.Request) (View, error) {
	_, index := language.MatchStrings(localeMatcher, r.Form.Get("locale"), r.Header.Get("Accept-Language"))

	locale := supportedLocales[index]
	app.putSession(r.Context(), SessionKeyLocale, locale.String())

	return app.schedule(r)
}
