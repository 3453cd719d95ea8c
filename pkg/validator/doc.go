// Package validator provides stateless, format-only validation rules for
// Brazilian registration data: personal names, .br e-mail addresses,
// registration passwords, CPF numbers, and mobile phone numbers.
//
// Every exported validation function constructs and returns a Rule value
// that pairs a boolean Check predicate with translation-friendly error
// metadata. Rules are evaluated with the Apply helper, which aggregates
// failures into a ValidationErrors slice satisfying the error interface.
//
// # Architecture
//
// Each source file holds one rule family (`name_rules.go`,
// `email_rules.go`, `password_rules.go`, `cpf_rules.go`,
// `phone_rules.go`). All rules are single-pass matches against fixed,
// fully anchored patterns compiled once at package init; there is no
// hidden state, so the package is goroutine-safe and allocation-light.
//
// Every Check is a total function over the string domain: it returns a
// verdict for any input, including empty strings and strings with
// unexpected characters, and never panics. A malformed input is a normal
// false, not a failure.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidFullName("name", name),
//	    validator.ValidEmailBR("email", email),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// Callers that only need the boolean verdict can invoke the rule's Check
// directly: validator.ValidCPF("cpf", input).Check().
package validator
