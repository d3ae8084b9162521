package layout

import (
	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Counts are passed to the tooltip pre-formatted so the printer does not
// apply locale digit grouping.
const (
	tooltipKey     = "%s: %s votes, %s ideas"
	placeholderKey = "No teams visible with the current filter."
)

func init() {
	_ = message.SetString(language.English, tooltipKey, tooltipKey)
	_ = message.SetString(language.English, placeholderKey, placeholderKey)

	_ = message.SetString(language.Finnish, tooltipKey, "%s: %s ääntä, %s ideaa")
	_ = message.SetString(language.Finnish, placeholderKey, "Ei tiimejä näkyvissä valitulla suodatuksella.")
}

// ParseLocale resolves a locale string to one of the supported languages.
// An empty string means English.
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		return language.English, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, teambubbles.ErrUnknownLocale
	}

	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return language.English, nil

	case "fi":
		return language.Finnish, nil

	default:
		return language.Und, teambubbles.ErrUnknownLocale
	}
}
