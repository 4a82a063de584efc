package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/splitkit/pkg/validator"
)

type signup struct {
	Name     string
	Email    string
	Password string
}

func signupRegistry(t *testing.T) validator.Registry[signup] {
	t.Helper()

	reg := validator.NewRegistry[signup]()
	reg, err := reg.Register("name", func(s signup) []validator.Rule {
		return []validator.Rule{validator.ValidName("name", s.Name)}
	})
	require.NoError(t, err)

	return reg.
		MustRegister("email", func(s signup) []validator.Rule {
			return []validator.Rule{validator.ValidEmail("email", s.Email)}
		}).
		MustRegister("password", func(s signup) []validator.Rule {
			return []validator.Rule{validator.ValidPassword("password", s.Password)}
		})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("keeps registration order", func(t *testing.T) {
		reg := signupRegistry(t)
		assert.Equal(t, []string{"name", "email", "password"}, reg.Names())
		assert.Equal(t, 3, reg.Len())
		assert.True(t, reg.Has("email"))
		assert.False(t, reg.Has("phone"))
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		base := signupRegistry(t)
		extended, err := base.Register("phone", func(signup) []validator.Rule { return nil })
		require.NoError(t, err)

		assert.Equal(t, 3, base.Len())
		assert.Equal(t, 4, extended.Len())
		assert.False(t, base.Has("phone"))
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		reg := signupRegistry(t)
		_, err := reg.Register("email", func(signup) []validator.Rule { return nil })
		assert.ErrorIs(t, err, validator.ErrRuleExists)
	})

	t.Run("rejects invalid registrations", func(t *testing.T) {
		reg := validator.NewRegistry[signup]()
		_, err := reg.Register("", func(signup) []validator.Rule { return nil })
		assert.ErrorIs(t, err, validator.ErrInvalidRule)

		_, err = reg.Register("x", nil)
		assert.ErrorIs(t, err, validator.ErrInvalidRule)

		assert.Panics(t, func() { reg.MustRegister("", nil) })
	})
}

func TestRegistry_Validate(t *testing.T) {
	t.Parallel()

	reg := signupRegistry(t)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, reg.Validate(signup{Name: "Ann", Email: "ann@example.com", Password: "123456"}))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := reg.Validate(signup{Email: "ann", Password: "1"})
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []validator.Reason{
			validator.ReasonEmptyName,
			validator.ReasonMalformedEmail,
			validator.ReasonPasswordTooShort,
		}, verrs.Reasons())
	})

	t.Run("only selected rules", func(t *testing.T) {
		err := reg.ValidateOnly(signup{Email: "ann", Password: "1"}, "password")
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.ReasonPasswordTooShort, verrs[0].Reason)
	})

	t.Run("unknown rule is not a validation error", func(t *testing.T) {
		err := reg.ValidateOnly(signup{}, "phone")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("empty registry accepts anything", func(t *testing.T) {
		assert.NoError(t, validator.NewRegistry[signup]().Validate(signup{}))
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	reg := signupRegistry(t)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := signup{Name: "Ann", Email: "ann@example.com", Password: "123456"}
			if i%2 == 0 {
				in.Password = "1"
			}
			err := reg.Validate(in)
			if i%2 == 0 {
				assert.ErrorIs(t, err, validator.ErrPasswordTooShort)
			} else {
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()
}
