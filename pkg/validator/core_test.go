package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cadastro/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "must end with .br",
		})
		assert.Equal(t, "validation failed: email: must end with .br", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "name",
			Message: "must be two capitalized words",
		})
		errs.Add(validator.ValidationError{
			Field:   "cpf",
			Message: "wrong format",
		})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "name: must be two capitalized words")
		assert.Contains(t, errorMsg, "cpf: wrong format")
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	t.Run("Has, Get and Fields", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "phone", Message: "wrong template"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "missing leading 9"})
		errs.Add(validator.ValidationError{Field: "cpf", Message: "wrong format"})

		assert.True(t, errs.Has("phone"))
		assert.False(t, errs.Has("email"))
		assert.Equal(t, []string{"wrong template", "missing leading 9"}, errs.Get("phone"))
		assert.Empty(t, errs.Get("email"))
		assert.Equal(t, []string{"phone", "cpf"}, errs.Fields())
		assert.False(t, errs.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidFullName("name", "Alan Turing"),
			validator.ValidEmailBR("email", "divulga@ufpa.br"),
			validator.ValidCPF("cpf", "123.456.789-09"),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates all failing rules", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidFullName("name", "alan turing"),
			validator.ValidEmailBR("email", "a@a.com"),
			validator.ValidPassword("password", "518R2r5e"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("password"))
	})

	t.Run("with no rules returns nil", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from validation error", func(t *testing.T) {
		err := validator.Apply(validator.ValidCPF("cpf", "000.000.000-00"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, "cpf", verrs[0].Field)
	})

	t.Run("extracts from wrapped error", func(t *testing.T) {
		err := validator.Apply(validator.ValidMobilePhone("phone", "99 99999-9999"))
		wrapped := fmt.Errorf("request rejected: %w", err)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("phone"))
	})

	t.Run("returns nil for nil and foreign errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("not a validation error")))
	})
}

func TestIsValidationError(t *testing.T) {
	err := validator.Apply(validator.ValidPassword("password", "abcdefg1"))
	assert.True(t, validator.IsValidationError(err))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("something else")))
}
