package vo

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleIT Locale = "it"
)

// Locales in the order pages and alternates are emitted
var Locales = []Locale{LocaleEN, LocaleIT}

// ResolveLocale maps any token to a supported locale, it never fails. Only
// the exact token "it" selects Italian, everything else is English. ok is
// false when the token got coerced, it only feeds the fallback metric and
// the warn log and is no error path.
func ResolveLocale(raw string) (locale Locale, ok bool) {
	switch raw {
	case string(LocaleIT):
		return LocaleIT, true
	case string(LocaleEN):
		return LocaleEN, true
	default:
		return LocaleEN, false
	}
}

// HTMLLang value for <html lang> and inLanguage
func (l Locale) HTMLLang() string {
	if l == LocaleIT {
		return "it-IT"
	}
	return "en-GB"
}

func (l Locale) String() string {
	return string(l)
}
