package validation

import (
	"strings"
	"unicode/utf8"

	"sqlgate/apperr"
)

// MaxPromptLength bounds the natural-language text forwarded for translation.
const MaxPromptLength = 10000

// ErrQueryRequired is returned for empty or whitespace-only input.
var ErrQueryRequired = apperr.New(apperr.Validation, "query required").WithCode("VALIDATION")

// ValidatePrompt checks natural-language input before it is sent to the
// translation service and returns it trimmed.
func ValidatePrompt(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrQueryRequired
	}

	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return "", apperr.New(apperr.Validation, "query is too long").WithCode("VALIDATION")
	}

	// A single character repeated is never a request ("aaaa", "????").
	if isRepeatedCharacters(trimmed) {
		return "", apperr.New(apperr.Validation, "query is not a meaningful request").WithCode("VALIDATION")
	}

	return trimmed, nil
}

func isRepeatedCharacters(s string) bool {
	if utf8.RuneCountInString(s) < 3 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}
