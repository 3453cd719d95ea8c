package validator

import "regexp"

// Local part, @, domain, and a case-insensitive .br suffix. Anchored at
// both ends: trailing garbage after a valid-looking address is rejected.
var emailBRRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[bB][rR]$`)

// ValidEmailBR validates that a string is an e-mail address under the
// Brazilian top-level domain. The local part accepts letters, digits and
// . _ % + -; the domain accepts letters, digits, dots and hyphens and
// must end with ".br" in any letter case. This is a fixed-format check,
// not an RFC 5322 parse.
func ValidEmailBR(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailBRRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid e-mail address ending with .br",
			TranslationKey: "validation.email_br",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
