package validator

import "regexp"

// Two capitalized words separated by a single space. The separator is a
// literal space rather than \s so that tabs and embedded newlines are
// rejected along with any other stray whitespace.
var fullNameRegex = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)

// ValidFullName validates that a string is a first name and a surname,
// each starting with one uppercase unaccented Latin letter followed by
// one or more lowercase letters. No digits, symbols, accents, or
// leading/trailing whitespace are accepted; the match spans the entire
// string.
func ValidFullName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return fullNameRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a first name and surname, each capitalized (e.g., Alan Turing)",
			TranslationKey: "validation.full_name",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
