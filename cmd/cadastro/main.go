// Package main is the entry point for the cadastro binary.
// It validates Brazilian registration data (name, e-mail, password, CPF,
// mobile phone) either through an interactive menu or one-shot
// subcommands suitable for scripting.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cadastro/pkg/config"
	"github.com/dmitrymomot/cadastro/pkg/i18n"
	"github.com/dmitrymomot/cadastro/pkg/logger"
	"github.com/dmitrymomot/cadastro/pkg/sanitizer"
	"github.com/dmitrymomot/cadastro/pkg/validator"
)

// CLIConfig holds the environment-driven CLI configuration.
type CLIConfig struct {
	Language string `env:"CADASTRO_LANG" envDefault:"pt-BR"`
	LogLevel string `env:"CADASTRO_LOG_LEVEL" envDefault:"info"`
}

// errRejected signals a failed validation to main without any extra
// output: the localized verdict has already been printed.
var errRejected = errors.New("input rejected")

// field wires one validator into the menu and its subcommand.
type field struct {
	name      string
	menuKey   string
	promptKey string
	acceptKey string
	rule      func(value string) validator.Rule
}

var fields = []field{
	{
		name:      "name",
		menuKey:   "menu.option.name",
		promptKey: "prompt.name",
		acceptKey: "accept.name",
		rule:      func(v string) validator.Rule { return validator.ValidFullName("name", v) },
	},
	{
		name:      "email",
		menuKey:   "menu.option.email",
		promptKey: "prompt.email",
		acceptKey: "accept.email",
		rule:      func(v string) validator.Rule { return validator.ValidEmailBR("email", v) },
	},
	{
		name:      "password",
		menuKey:   "menu.option.password",
		promptKey: "prompt.password",
		acceptKey: "accept.password",
		rule:      func(v string) validator.Rule { return validator.ValidPassword("password", v) },
	},
	{
		name:      "cpf",
		menuKey:   "menu.option.cpf",
		promptKey: "prompt.cpf",
		acceptKey: "accept.cpf",
		rule:      func(v string) validator.Rule { return validator.ValidCPF("cpf", v) },
	},
	{
		name:      "phone",
		menuKey:   "menu.option.phone",
		promptKey: "prompt.phone",
		acceptKey: "accept.phone",
		rule:      func(v string) validator.Rule { return validator.ValidMobilePhone("phone", v) },
	},
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newRootCmd creates the root command. Without a subcommand it runs the
// interactive numbered menu.
func newRootCmd() *cobra.Command {
	var cfg CLIConfig

	rootCmd := &cobra.Command{
		Use:   "cadastro",
		Short: "Validate Brazilian registration data",
		Long: `Validates user-supplied registration strings against fixed formatting
rules: personal name, .br e-mail, 8-character password, CPF and mobile
phone number.

Run without arguments for an interactive menu, or use a subcommand for
scripting; subcommands exit 0 when the input is valid and 1 otherwise:

  cadastro cpf 123.456.789-09
  echo "(91) 99999-9999" | cadastro phone`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
				cfg.Language = lang
			}
			return setupLogger(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, i18n.New(cfg.Language))
		},
	}

	rootCmd.PersistentFlags().StringP("lang", "l", "", "Message language (pt-BR, en); overrides CADASTRO_LANG")

	for _, f := range fields {
		rootCmd.AddCommand(newCheckCmd(f, &cfg))
	}
	rootCmd.AddCommand(newSelfTestCmd())

	return rootCmd
}

// newCheckCmd creates the one-shot subcommand for a single validator.
// The value comes from the argument, or from one stdin line when absent.
func newCheckCmd(f field, cfg *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   f.name + " [value]",
		Short: "Validate a " + f.name,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := inputValue(cmd, args)
			if err != nil {
				return err
			}

			tr := i18n.New(cfg.Language)
			if applyErr := validator.Apply(f.rule(value)); applyErr != nil {
				verrs := validator.ExtractValidationErrors(applyErr)
				if len(verrs) == 0 {
					return applyErr
				}
				fmt.Fprintln(cmd.OutOrStdout(), tr.Reject(verrs[0]))
				slog.Debug("validation rejected", "field", f.name)
				return errRejected
			}

			fmt.Fprintln(cmd.OutOrStdout(), tr.T(f.acceptKey))
			slog.Debug("validation accepted", "field", f.name)
			return nil
		},
	}
}

// inputValue returns the first positional argument, or one line read
// from stdin when no argument was given. Only the line terminator is
// stripped; interior and trailing spaces reach the validator untouched.
func inputValue(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read value from stdin: %w", err)
	}
	return sanitizer.TrimLine(line), nil
}

func setupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	slog.SetDefault(logger.New(logger.WithLevel(lvl)))
	return nil
}
