package validator

import "regexp"

// Brazilian mobile numbers: two-digit area code, then a nine-digit
// number that starts with 9. Three accepted layouts, each anchored at
// both ends; mutually exclusive by punctuation.
var mobilePhoneRegexes = []*regexp.Regexp{
	regexp.MustCompile(`^\(\d{2}\) 9\d{4}-\d{4}$`),
	regexp.MustCompile(`^\(\d{2}\) 9\d{8}$`),
	regexp.MustCompile(`^\d{2} 9\d{8}$`),
}

// ValidMobilePhone validates that a string is a Brazilian mobile phone
// number in one of three layouts: "(dd) 9dddd-dddd", "(dd) 9dddddddd"
// or "dd 9dddddddd". The verdict is a plain OR over the templates.
func ValidMobilePhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, re := range mobilePhoneRegexes {
				if re.MatchString(value) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a mobile phone in the format (dd) 9dddd-dddd, (dd) 9dddddddd or dd 9dddddddd",
			TranslationKey: "validation.mobile_phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
