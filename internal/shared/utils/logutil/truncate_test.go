package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "empty string", input: "", maxLen: 10, expected: ""},
		{name: "empty string with zero maxLen", input: "", maxLen: 0, expected: "..."},
		{name: "negative maxLen", input: "hola", maxLen: -1, expected: "..."},
		{name: "shorter than maxLen", input: "hello", maxLen: 10, expected: "hello"},
		{name: "equal to maxLen", input: "hello", maxLen: 5, expected: "hello"},
		{name: "longer than maxLen", input: "hello world", maxLen: 5, expected: "hello..."},
		{name: "multi-byte within limit", input: "Bogotá", maxLen: 6, expected: "Bogotá"},
		{name: "multi-byte cut", input: "cumpleaños feliz", maxLen: 10, expected: "cumpleaños..."},
		{name: "cut right after accent", input: "ñandú", maxLen: 1, expected: "ñ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateForLog(tt.input, tt.maxLen))
		})
	}
}
