package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// selfTestVectors holds the literal accept/reject examples for each
// validator. Uniform CPF sequences such as 000.000.000-00 are rejected
// by the digit-repetition rule even though they fit the punctuation
// template.
var selfTestVectors = []struct {
	field   string
	valid   []string
	invalid []string
}{
	{
		field:   "name",
		valid:   []string{"Alan Turing", "Noam Chomsky", "Ada Lovelace"},
		invalid: []string{"1Alan", "Alan", "A1an", "alan turing", "Alan turing"},
	},
	{
		field:   "email",
		valid:   []string{"a@a.br", "divulga@ufpa.br", "user.name+tag@domain.com.br"},
		invalid: []string{"@", "a@.br", "a@a.com"},
	},
	{
		field:   "password",
		valid:   []string{"518R2r5e", "F123456A", "1234567T", "ropsSoq0"},
		invalid: []string{"F1234567A", "abcdefgH", "1234567HI", "abcdefg1"},
	},
	{
		field:   "cpf",
		valid:   []string{"123.456.789-09"},
		invalid: []string{"000.000.000-00", "123.456.789-0", "111.111.11-11", "123456789-09"},
	},
	{
		field:   "phone",
		valid:   []string{"(91) 99999-9999", "(91) 999999999", "91 999999999"},
		invalid: []string{"(91) 59999-9999", "99 99999-9999", "(94)95555-5555"},
	},
}

// newSelfTestCmd creates the selftest subcommand, which runs every
// validator over its example lists and reports any verdict that does
// not match the expectation. Exit code 0 means all verdicts matched.
func newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run all validators against their built-in example lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failures := 0

			for _, vec := range selfTestVectors {
				f := fieldByName(vec.field)
				for _, input := range vec.valid {
					if !f.rule(input).Check() {
						failures++
						fmt.Fprintf(out, "FAIL %s: %q should be valid\n", vec.field, input)
					}
				}
				for _, input := range vec.invalid {
					if f.rule(input).Check() {
						failures++
						fmt.Fprintf(out, "FAIL %s: %q should be invalid\n", vec.field, input)
					}
				}
			}

			if failures > 0 {
				return fmt.Errorf("selftest: %d verdict(s) did not match", failures)
			}
			fmt.Fprintln(out, "selftest: all verdicts match")
			return nil
		},
	}
}

func fieldByName(name string) field {
	for _, f := range fields {
		if f.name == name {
			return f
		}
	}
	panic("unknown selftest field: " + name)
}
