package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cadastro/pkg/i18n"
	"github.com/dmitrymomot/cadastro/pkg/sanitizer"
	"github.com/dmitrymomot/cadastro/pkg/validator"
)

// runMenu drives the interactive numbered menu: options 1-5 prompt for
// one line each and delegate to the matching validator, 0 exits. The
// menu is a thin adapter around the validation rules; it owns all
// console I/O and none of the verdict logic.
func runMenu(cmd *cobra.Command, tr *i18n.Translator) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, tr.T("menu.title"))
		for _, f := range fields {
			fmt.Fprintln(out, tr.T(f.menuKey))
		}
		fmt.Fprintln(out, tr.T("menu.option.exit"))
		fmt.Fprint(out, tr.T("menu.choose"))

		option, err := readLine(scanner)
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		switch option {
		case "0":
			fmt.Fprintln(out, tr.T("menu.bye"))
			return nil
		case "1", "2", "3", "4", "5":
			f := fields[option[0]-'1']
			fmt.Fprint(out, tr.T(f.promptKey))

			value, err := readLine(scanner)
			if err != nil {
				if err == io.EOF {
					fmt.Fprintln(out)
					return nil
				}
				return err
			}

			if applyErr := validator.Apply(f.rule(value)); applyErr != nil {
				verrs := validator.ExtractValidationErrors(applyErr)
				fmt.Fprintln(out, tr.Reject(verrs[0]))
			} else {
				fmt.Fprintln(out, tr.T(f.acceptKey))
			}
		default:
			fmt.Fprintln(out, tr.T("menu.invalid_option"))
		}
	}
}

// readLine reads one input line without its terminator. io.EOF reports
// a closed input stream (Ctrl-D or end of a pipe).
func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return sanitizer.TrimLine(scanner.Text()), nil
}
