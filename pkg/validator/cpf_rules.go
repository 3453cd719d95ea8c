package validator

import (
	"regexp"

	"github.com/dmitrymomot/cadastro/pkg/sanitizer"
)

const cpfDigitCount = 11

// Literal punctuation template: three digit triplets separated by dots,
// hyphen, two-digit suffix.
var cpfFormatRegex = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// ValidCPF validates the format of a CPF (Cadastro de Pessoas Físicas)
// number: exactly 11 digits once punctuation is stripped, not all 11
// digits identical, and the original string laid out as ddd.ddd.ddd-dd.
//
// This is a format-only check. It does not compute the official two
// check digits, so arithmetically impossible CPFs in the right shape
// (e.g. 123.456.789-00) are accepted; uniform sequences like
// 000.000.000-00 are rejected.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			digits := sanitizer.ExtractDigits(value)
			if len(digits) != cpfDigitCount {
				return false
			}
			if allSameByte(digits) {
				return false
			}
			return cpfFormatRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a CPF in the format 000.000.000-00 with non-uniform digits",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func allSameByte(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
