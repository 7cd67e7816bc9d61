package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang represents a supported language
type Lang string

const (
	ES Lang = "es"
	EN Lang = "en"
)

// DefaultLang is used for any missing or unsupported language value.
const DefaultLang = ES

var (
	spanishTag = language.MustParse("es-ES")
	englishTag = language.AmericanEnglish
)

// ParseLang maps a request language to Lang. Only the exact values "es" and
// "en" are recognized; anything else, including "EN" or "en-US", is ES.
func ParseLang(s string) Lang {
	if Lang(strings.TrimSpace(s)) == EN {
		return EN
	}
	return DefaultLang
}

// Tag returns the locale used for number and date conventions (es-ES, en-US).
func (l Lang) Tag() language.Tag {
	if l == EN {
		return englishTag
	}
	return spanishTag
}

func (l Lang) String() string {
	return string(l)
}

// FromAcceptLanguage returns the language of the highest-weighted tag of an
// Accept-Language header, defaulting to ES.
func FromAcceptLanguage(header string) Lang {
	if strings.TrimSpace(header) == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	base, confidence := tags[0].Base()
	if confidence != language.Exact {
		return DefaultLang
	}
	return ParseLang(base.String())
}
