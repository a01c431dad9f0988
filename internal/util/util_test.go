package util

import "testing"

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase word", input: "john", expected: "John"},
		{name: "all caps", input: "DOE", expected: "Doe"},
		{name: "mixed case", input: "mCdOnAlD", expected: "Mcdonald"},
		{name: "already capitalized", input: "Jane", expected: "Jane"},
		{name: "single rune", input: "j", expected: "J"},
		{name: "unicode first rune", input: "élodie", expected: "Élodie"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Capitalize(tt.input); got != tt.expected {
				t.Fatalf("Capitalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "uppercase address", input: "John.Doe@Example.COM", expected: "john.doe@example.com"},
		{name: "already normalized", input: "jane@example.com", expected: "jane@example.com"},
		{name: "surrounding whitespace", input: "  jane@example.com \n", expected: "jane@example.com"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeEmail(tt.input); got != tt.expected {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
