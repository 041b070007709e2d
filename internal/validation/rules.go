// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/keyshred/internal/errors"
)

// MaxKeyIDLength is the longest key identifier accepted over the API.
const MaxKeyIDLength = 255

// keyIDRegex allows the characters used by key management systems in identifiers.
var keyIDRegex = regexp.MustCompile(`^[A-Za-z0-9._:/\-]+$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// KeyID validates the character set of a key identifier. Length is checked
// separately with validation.Length(1, MaxKeyIDLength).
var KeyID = validation.NewStringRuleWithError(
	func(s string) bool {
		return keyIDRegex.MatchString(s)
	},
	validation.NewError("validation_key_id", "must contain only letters, digits and . _ : / -"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
