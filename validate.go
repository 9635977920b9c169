package spirits

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is wrapped by every error a Validator returns.
var ErrInvalidPattern = errors.New("invalid pattern")

// DefaultCharset is the set of characters accepted by ValidateCharset:
// ASCII letters and digits, the metacharacters, the escape, and "[]_-:".
const DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789?*.\\[]_-:"

// Validator checks pattern text before it is compiled. Returned errors should
// wrap ErrInvalidPattern.
type Validator func(text string) error

// Charset returns a Validator that rejects patterns containing characters
// outside allowed.
func Charset(allowed string) Validator {
	return func(text string) error {
		for i, r := range text {
			if !strings.ContainsRune(allowed, r) {
				return fmt.Errorf("spirits: character %q at offset %d in %q: %w", r, i, text, ErrInvalidPattern)
			}
		}
		return nil
	}
}

// ValidateCharset rejects patterns with characters outside DefaultCharset.
func ValidateCharset(text string) error {
	return Charset(DefaultCharset)(text)
}

// RejectDanglingEscape rejects patterns whose final backslash escapes
// nothing. Such a pattern can never match.
func RejectDanglingEscape(text string) error {
	escaped := false
	for _, r := range text {
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
		}
	}
	if escaped {
		return fmt.Errorf("spirits: dangling escape at end of %q: %w", text, ErrInvalidPattern)
	}
	return nil
}

// All combines validators, returning the first error.
func All(validators ...Validator) Validator {
	return func(text string) error {
		for _, v := range validators {
			if err := v(text); err != nil {
				return err
			}
		}
		return nil
	}
}
