package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("name", "Jane")
		assert.True(t, rule.Check())
		assert.Equal(t, "name", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("name", "").Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("name", " \t\n ").Check())
	})

	t.Run("passes for string with leading/trailing whitespace but content", func(t *testing.T) {
		assert.True(t, validator.RequiredString("name", "  Jane  ").Check())
	})
}

func TestIsBlank(t *testing.T) {
	assert.True(t, validator.IsBlank(""))
	assert.True(t, validator.IsBlank("   "))
	assert.True(t, validator.IsBlank("\t\r\n"))
	assert.False(t, validator.IsBlank(" x "))

	t.Run("byte order mark is blank", func(t *testing.T) {
		assert.True(t, validator.IsBlank("\uFEFF"))
		assert.True(t, validator.IsBlank(" \uFEFF "))
		assert.False(t, validator.RequiredString("password", "\uFEFF").Check())
	})

	t.Run("unicode separators are blank", func(t *testing.T) {
		assert.True(t, validator.IsBlank("\u00A0"))
		assert.True(t, validator.IsBlank("\u3000"))
		assert.True(t, validator.IsBlank("\u2028\u2029"))
		assert.True(t, validator.IsBlank("\v\f"))
	})

	t.Run("next line is content", func(t *testing.T) {
		assert.False(t, validator.IsBlank("\u0085"))
		assert.True(t, validator.RequiredString("password", "\u0085").Check())
	})
}
