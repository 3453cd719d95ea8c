// Package i18n renders validator translation keys and CLI strings in
// Portuguese (Brazil) or English using golang.org/x/text message
// catalogs. Portuguese is the default; unknown language tags fall back
// to it through the matcher.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/cadastro/pkg/validator"
)

var (
	ptBR = language.MustParse("pt-BR")

	supported = []language.Tag{ptBR, language.English}
	matcher   = language.NewMatcher(supported)
)

type entry struct {
	tag language.Tag
	key string
	msg string
}

func init() {
	entries := []entry{
		// Validator failure messages, keyed by ValidationError.TranslationKey.
		{ptBR, "validation.full_name", "Nome inválido! Deve ter Nome Sobrenome com iniciais maiúsculas."},
		{language.English, "validation.full_name", "Invalid name! Use First Last with capitalized initials."},
		{ptBR, "validation.email_br", "E-mail inválido! Deve terminar com .br."},
		{language.English, "validation.email_br", "Invalid e-mail! It must end with .br."},
		{ptBR, "validation.registration_password", "Senha inválida! Deve ter 8 caracteres, uma maiúscula e um número."},
		{language.English, "validation.registration_password", "Invalid password! It must have 8 characters, one uppercase letter and one digit."},
		{ptBR, "validation.cpf", "CPF inválido! Use o formato xxx.xxx.xxx-xx."},
		{language.English, "validation.cpf", "Invalid CPF! Use the format xxx.xxx.xxx-xx."},
		{ptBR, "validation.mobile_phone", "Telefone inválido! Use um dos formatos: (xx) 9xxxx-xxxx, (xx) 9xxxxxxxx ou xx 9xxxxxxxx."},
		{language.English, "validation.mobile_phone", "Invalid phone! Use one of: (xx) 9xxxx-xxxx, (xx) 9xxxxxxxx or xx 9xxxxxxxx."},

		// Accept messages per field.
		{ptBR, "accept.name", "✓ Nome válido!"},
		{language.English, "accept.name", "✓ Valid name!"},
		{ptBR, "accept.email", "✓ E-mail válido!"},
		{language.English, "accept.email", "✓ Valid e-mail!"},
		{ptBR, "accept.password", "✓ Senha válida!"},
		{language.English, "accept.password", "✓ Valid password!"},
		{ptBR, "accept.cpf", "✓ CPF válido!"},
		{language.English, "accept.cpf", "✓ Valid CPF!"},
		{ptBR, "accept.phone", "✓ Telefone válido!"},
		{language.English, "accept.phone", "✓ Valid phone!"},

		// Menu and prompts.
		{ptBR, "menu.title", "=== Sistema de Validação ==="},
		{language.English, "menu.title", "=== Validation System ==="},
		{ptBR, "menu.option.name", "1. Validar Nome"},
		{language.English, "menu.option.name", "1. Validate Name"},
		{ptBR, "menu.option.email", "2. Validar E-mail"},
		{language.English, "menu.option.email", "2. Validate E-mail"},
		{ptBR, "menu.option.password", "3. Validar Senha"},
		{language.English, "menu.option.password", "3. Validate Password"},
		{ptBR, "menu.option.cpf", "4. Validar CPF"},
		{language.English, "menu.option.cpf", "4. Validate CPF"},
		{ptBR, "menu.option.phone", "5. Validar Telefone"},
		{language.English, "menu.option.phone", "5. Validate Phone"},
		{ptBR, "menu.option.exit", "0. Sair"},
		{language.English, "menu.option.exit", "0. Exit"},
		{ptBR, "menu.choose", "Escolha uma opção: "},
		{language.English, "menu.choose", "Choose an option: "},
		{ptBR, "menu.invalid_option", "Opção inválida! Tente novamente."},
		{language.English, "menu.invalid_option", "Invalid option! Try again."},
		{ptBR, "menu.bye", "Programa encerrado!"},
		{language.English, "menu.bye", "Goodbye!"},
		{ptBR, "prompt.name", "Digite o nome (Ex: Nome Sobrenome): "},
		{language.English, "prompt.name", "Enter the name (e.g. First Last): "},
		{ptBR, "prompt.email", "Digite o e-mail (Ex: usuario@dominio.br): "},
		{language.English, "prompt.email", "Enter the e-mail (e.g. user@domain.br): "},
		{ptBR, "prompt.password", "Digite a senha (8 caracteres, letras e números): "},
		{language.English, "prompt.password", "Enter the password (8 characters, letters and digits): "},
		{ptBR, "prompt.cpf", "Digite o CPF (Ex: 123.456.789-00): "},
		{language.English, "prompt.cpf", "Enter the CPF (e.g. 123.456.789-00): "},
		{ptBR, "prompt.phone", "Digite o telefone (Ex: (11) 91234-5678): "},
		{language.English, "prompt.phone", "Enter the phone (e.g. (11) 91234-5678): "},
	}

	for _, e := range entries {
		if err := message.SetString(e.tag, e.key, e.msg); err != nil {
			panic(err)
		}
	}
}

// Translator renders message keys for a matched language.
type Translator struct {
	printer *message.Printer
}

// New returns a Translator for the given BCP 47 language tag. Unknown or
// unsupported tags fall back to pt-BR.
func New(lang string) *Translator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = ptBR
	}
	matched, _, _ := matcher.Match(tag)
	return &Translator{printer: message.NewPrinter(matched)}
}

// T renders a message key. Keys without a catalog entry render as the
// key itself, which keeps missing translations visible rather than
// silent.
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Reject renders the localized rejection message for a single
// validation error, falling back to the untranslated Message when the
// error carries no translation key.
func (t *Translator) Reject(err validator.ValidationError) string {
	if err.TranslationKey == "" {
		return "✗ " + err.Message
	}
	return "✗ " + t.T(err.TranslationKey)
}
