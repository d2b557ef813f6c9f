package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCategoryString(t *testing.T) {
	tests := map[Category]string{
		Argument:     "Argument Error",
		Input:        "Input Error",
		Parse:        "Parse Error",
		Runtime:      "Runtime Error",
		Category(99): "Error",
	}
	for category, want := range tests {
		if got := category.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", category, got, want)
		}
	}
}

func TestConstructors(t *testing.T) {
	tests := map[string]struct {
		err      *CLIError
		category Category
		cause    error
	}{
		"argument": {NewArgumentError("bad flag"), Argument, nil},
		"input":    {NewInputError(ErrFileNotFound, "no such file"), Input, ErrFileNotFound},
		"parse":    {NewParseError(ErrMalformedJSON, "bad json"), Parse, ErrMalformedJSON},
		"runtime":  {NewRuntimeError("boom"), Runtime, nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.err.Category != tt.category {
				t.Errorf("category = %v, want %v", tt.err.Category, tt.category)
			}
			if tt.err.Unwrap() != tt.cause {
				t.Errorf("Unwrap() = %v, want %v", tt.err.Unwrap(), tt.cause)
			}
		})
	}
}

func TestErrorsIsSeesCause(t *testing.T) {
	err := NewInputError(ErrFileNotFound, "input file not found: x.json", "check the path")

	if !errors.Is(err, ErrFileNotFound) {
		t.Error("errors.Is should match the wrapped sentinel")
	}
	if errors.Is(err, ErrMalformedJSON) {
		t.Error("errors.Is should not match an unrelated sentinel")
	}
}

func TestFormat(t *testing.T) {
	err := NewParseError(ErrMalformedJSON, "data.json is not valid JSON",
		"fix the JSON syntax", "validate with a linter")

	got := err.Format()
	for _, want := range []string{
		"Parse Error: data.json is not valid JSON\n",
		"  - fix the JSON syntax\n",
		"  - validate with a linter\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() = %q, missing %q", got, want)
		}
	}
}

func TestFormatWithoutRemediation(t *testing.T) {
	got := NewRuntimeError("boom").Format()
	if got != "Runtime Error: boom\n" {
		t.Errorf("Format() = %q", got)
	}
}
