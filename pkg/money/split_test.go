package money_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/splitkit/pkg/money"
)

func TestSum(t *testing.T) {
	t.Parallel()

	t.Run("empty input is zero", func(t *testing.T) {
		assert.True(t, money.Sum().IsZero())
	})

	t.Run("thirds add up exactly", func(t *testing.T) {
		sum := money.Sum(33.33, 33.33, 33.34)
		assert.True(t, sum.Equal(decimal.NewFromInt(100)), "got %s", sum)
	})

	t.Run("binary rounding does not leak", func(t *testing.T) {
		// 0.1 + 0.2 != 0.3 in float64
		sum := money.Sum(0.1, 0.2)
		assert.True(t, sum.Equal(decimal.RequireFromString("0.3")), "got %s", sum)
	})

	t.Run("order independent", func(t *testing.T) {
		a := money.Sum(10.01, 20.02, 0.07, 69.9)
		b := money.Sum(69.9, 0.07, 20.02, 10.01)
		assert.True(t, a.Equal(b))
	})
}

func TestDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		total  float64
		splits []float64
		sum    string
		delta  string
	}{
		{"exact", 100, []float64{50, 50}, "100", "0"},
		{"under", 100, []float64{40, 40}, "80", "20"},
		{"over", 100, []float64{60, 60}, "120", "20"},
		{"half cent", 100, []float64{50, 49.995}, "99.995", "0.005"},
		{"two cents", 100, []float64{50, 49.98}, "99.98", "0.02"},
		{"empty", 0, nil, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, delta := money.Delta(tt.total, tt.splits)
			assert.True(t, sum.Equal(decimal.RequireFromString(tt.sum)), "sum %s", sum)
			assert.True(t, delta.Equal(decimal.RequireFromString(tt.delta)), "delta %s", delta)
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	t.Parallel()

	tol := money.DefaultTolerance()
	assert.True(t, money.WithinTolerance(decimal.RequireFromString("0.005"), tol))
	assert.True(t, money.WithinTolerance(decimal.RequireFromString("-0.009"), tol))
	assert.False(t, money.WithinTolerance(decimal.RequireFromString("0.01"), tol), "tolerance is exclusive")
	assert.False(t, money.WithinTolerance(decimal.RequireFromString("0.02"), tol))
}

func TestParseTolerance(t *testing.T) {
	t.Parallel()

	tol, err := money.ParseTolerance("0.05")
	require.NoError(t, err)
	assert.Equal(t, "0.05", tol.String())

	_, err = money.ParseTolerance("-0.01")
	assert.ErrorIs(t, err, money.ErrInvalidTolerance)

	_, err = money.ParseTolerance("cents")
	assert.ErrorIs(t, err, money.ErrInvalidTolerance)
}

func TestHasNonFinite(t *testing.T) {
	t.Parallel()

	assert.False(t, money.HasNonFinite())
	assert.False(t, money.HasNonFinite(1, 2, -3))
	assert.True(t, money.HasNonFinite(1, math.NaN()))
	assert.True(t, money.HasNonFinite(math.Inf(-1)))
}
