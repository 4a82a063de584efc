package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Amount is a finite monetary value. The zero value is a valid amount of 0.
type Amount struct {
	value float64
}

// New returns an Amount for v. NaN and infinities are rejected with
// ErrNonFinite since they can only come from a broken caller, never from
// user input that was parsed as a number.
func New(v float64) (Amount, error) {
	if !IsFinite(v) {
		return Amount{}, errors.Join(ErrNonFinite, fmt.Errorf("got %v", v))
	}
	return Amount{value: v}, nil
}

// MustNew is like New but panics on non-finite input.
func MustNew(v float64) Amount {
	a, err := New(v)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Float64() float64 { return a.value }

func (a Amount) IsPositive() bool { return a.value > 0 }

func (a Amount) IsNegative() bool { return a.value < 0 }

// Decimal returns the shortest decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(a.value)
}

func (a Amount) String() string {
	return a.Decimal().String()
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
