package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Lang
	}{
		{name: "spanish", input: "es", want: ES},
		{name: "english", input: "en", want: EN},
		{name: "padded english", input: "  en ", want: EN},
		{name: "upper case english", input: "EN", want: ES},
		{name: "mixed case english", input: "En", want: ES},
		{name: "english region tag", input: "en-US", want: ES},
		{name: "british english tag", input: "en-GB", want: ES},
		{name: "spanish region tag", input: "es-MX", want: ES},
		{name: "empty", input: "", want: ES},
		{name: "unsupported language", input: "fr", want: ES},
		{name: "unsupported region of unsupported language", input: "pt-BR", want: ES},
		{name: "garbage", input: "not a language", want: ES},
		{name: "undetermined", input: "und", want: ES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLang(tt.input))
		})
	}
}

func TestParseLangIsIdempotent(t *testing.T) {
	for _, input := range []string{"", "de", "xx-YY", "en", "es"} {
		first := ParseLang(input)
		assert.Equal(t, first, ParseLang(input))
		assert.Equal(t, first, ParseLang(string(first)))
	}
}

func TestLangTag(t *testing.T) {
	assert.Equal(t, "es-ES", ES.Tag().String())
	assert.Equal(t, "en-US", EN.Tag().String())
	assert.Equal(t, "es-ES", Lang("fr").Tag().String())
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Lang
	}{
		{"", ES},
		{"en-US,en;q=0.9,es;q=0.8", EN},
		{"es-CO,es;q=0.9", ES},
		{"fr-FR,en;q=0.5", ES},
		{"es;q=0.2,en;q=0.9", EN},
		{";;;", ES},
		{"en-GB", EN},
		{"EN-us", EN},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromAcceptLanguage(tt.header), tt.header)
	}
}
