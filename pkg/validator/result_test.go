package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/splitkit/pkg/validator"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		res := validator.Evaluate(validator.ValidName("name", "A"))
		assert.True(t, res.OK())
		assert.Empty(t, res.Reason())
		assert.NoError(t, res.Err())
		_, failed := res.Failure()
		assert.False(t, failed)
		assert.Equal(t, validator.Valid, res)
	})

	t.Run("invalid", func(t *testing.T) {
		res := validator.Evaluate(validator.ValidName("name", ""))
		assert.False(t, res.OK())
		assert.Equal(t, validator.ReasonEmptyName, res.Reason())

		fail, ok := res.Failure()
		require.True(t, ok)
		assert.Equal(t, "name", fail.Field)

		err := res.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrEmptyName)
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
	})
}

func TestValidateHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidateEmail("a@b.co").OK())
	assert.Equal(t, validator.ReasonMalformedEmail, validator.ValidateEmail("no-at-sign.com").Reason())

	assert.True(t, validator.ValidatePassword("123456").OK())
	assert.Equal(t, validator.ReasonPasswordTooShort, validator.ValidatePassword("12345").Reason())

	assert.True(t, validator.ValidateName("A").OK())
	assert.Equal(t, validator.ReasonEmptyName, validator.ValidateName("").Reason())

	assert.True(t, validator.ValidateAmount(0.01).OK())
	assert.Equal(t, validator.ReasonNonPositiveAmount, validator.ValidateAmount(0).Reason())
	assert.Equal(t, validator.ReasonNonPositiveAmount, validator.ValidateAmount(-5).Reason())

	assert.True(t, validator.ValidateSplitsSum(100, []float64{50, 50}).OK())
	assert.Equal(t, validator.ReasonSplitsSumMismatch, validator.ValidateSplitsSum(100, []float64{40, 40}).Reason())
}

func TestRulesArePure(t *testing.T) {
	t.Parallel()

	inputs := []func() validator.Result{
		func() validator.Result { return validator.ValidateEmail("user@example.com") },
		func() validator.Result { return validator.ValidatePassword("12345") },
		func() validator.Result { return validator.ValidateName("") },
		func() validator.Result { return validator.ValidateAmount(-1) },
		func() validator.Result { return validator.ValidateSplitsSum(100, []float64{33.33, 33.33, 33.34}) },
		func() validator.Result { return validator.ValidateSplitsSum(100, []float64{40, 40}) },
	}

	for _, eval := range inputs {
		first := eval()
		for range 10 {
			assert.Equal(t, first, eval())
		}
	}
}
