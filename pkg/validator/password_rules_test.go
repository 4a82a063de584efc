package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/splitkit/pkg/validator"
)

func TestValidPassword(t *testing.T) {
	t.Parallel()

	t.Run("boundary", func(t *testing.T) {
		assert.Error(t, validator.Apply(validator.ValidPassword("password", "12345")))
		assert.NoError(t, validator.Apply(validator.ValidPassword("password", "123456")))
	})

	t.Run("long passwords pass", func(t *testing.T) {
		for n := 6; n < 40; n += 7 {
			pw := strings.Repeat("x", n)
			assert.NoError(t, validator.Apply(validator.ValidPassword("password", pw)), "length %d", n)
		}
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		// 5 Cyrillic letters are 10 bytes
		assert.Error(t, validator.Apply(validator.ValidPassword("password", "парол")))
		assert.NoError(t, validator.Apply(validator.ValidPassword("password", "пароль")))
		assert.NoError(t, validator.Apply(validator.ValidPassword("password", "🔑🔑🔑🔑🔑🔑")))
	})

	t.Run("error metadata", func(t *testing.T) {
		err := validator.Apply(validator.ValidPassword("password", ""))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.ReasonPasswordTooShort, verrs[0].Reason)
		assert.Equal(t, "validation.password_too_short", verrs[0].TranslationKey)
		assert.Equal(t, validator.MinPasswordLength, verrs[0].TranslationValues["min"])
		assert.ErrorIs(t, err, validator.ErrPasswordTooShort)
	})
}

func TestPasswordMinLength(t *testing.T) {
	t.Parallel()

	assert.Error(t, validator.Apply(validator.PasswordMinLength("password", "1234567", 8)))
	assert.NoError(t, validator.Apply(validator.PasswordMinLength("password", "12345678", 8)))

	err := validator.Apply(validator.PasswordMinLength("password", "abc", 10))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "must be at least 10 characters long", verrs[0].Message)
}
