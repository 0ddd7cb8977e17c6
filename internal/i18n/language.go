// Package i18n resolves display languages and localized UI strings.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported display language code.
type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// Default is the fallback language for labels and translations.
const Default = English

// Supported lists every display language in indexing order.
var Supported = []Language{English, German}

// ErrUnsupportedLanguage is returned by Parse for codes outside Supported.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Parse resolves a user-supplied code such as "de", "DE" or "de-AT" to a
// supported language. Region and script subtags are ignored.
func Parse(code string) (Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: empty code", ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	for _, l := range Supported {
		if base.String() == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// Valid reports whether l is one of Supported.
func Valid(l Language) bool {
	for _, s := range Supported {
		if s == l {
			return true
		}
	}
	return false
}
