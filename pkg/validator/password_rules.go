package validator

import "regexp"

const registrationPasswordLength = 8

var (
	passwordUppercaseRegex = regexp.MustCompile(`[A-Z]`)
	passwordDigitRegex     = regexp.MustCompile(`[0-9]`)
	passwordAlnumRegex     = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// ValidPassword validates a registration password: exactly 8 characters,
// at least one uppercase ASCII letter, at least one digit, and nothing
// but ASCII letters and digits (no symbols, no whitespace). The checks
// short-circuit on the first failure; the verdict does not depend on
// their order since all are required.
func ValidPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != registrationPasswordLength {
				return false
			}
			if !passwordUppercaseRegex.MatchString(value) {
				return false
			}
			if !passwordDigitRegex.MatchString(value) {
				return false
			}
			return passwordAlnumRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be exactly 8 letters and digits with at least one uppercase letter and one digit",
			TranslationKey: "validation.registration_password",
			TranslationValues: map[string]any{
				"field":  field,
				"length": registrationPasswordLength,
			},
		},
	}
}
