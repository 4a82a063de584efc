package entry

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/splitkit/pkg/money"
	"github.com/dmitrymomot/splitkit/pkg/validator"
)

// ErrInvalidPolicy is returned for a policy that cannot be enforced.
var ErrInvalidPolicy = errors.New("invalid validation policy")

// Policy holds the tunable parts of the rule set.
type Policy struct {
	MinPasswordLength    int
	SplitTolerance       decimal.Decimal
	MaxDescriptionLength int
	TrimNames            bool
	RejectNegativeSplits bool
	RequireCurrency      bool
}

// DefaultPolicy mirrors the behaviour of the plain validator rules.
func DefaultPolicy() Policy {
	return Policy{
		MinPasswordLength:    validator.MinPasswordLength,
		SplitTolerance:       money.DefaultTolerance(),
		MaxDescriptionLength: 200,
	}
}

func (p Policy) validate() error {
	if p.MinPasswordLength < 1 {
		return errors.Join(ErrInvalidPolicy, fmt.Errorf("min password length %d", p.MinPasswordLength))
	}
	if !p.SplitTolerance.IsPositive() {
		return errors.Join(ErrInvalidPolicy, fmt.Errorf("split tolerance %s", p.SplitTolerance))
	}
	if p.MaxDescriptionLength < 1 {
		return errors.Join(ErrInvalidPolicy, fmt.Errorf("max description length %d", p.MaxDescriptionLength))
	}
	return nil
}

// Config is the environment form of Policy, loaded with pkg/config.
type Config struct {
	MinPasswordLength    int    `env:"MIN_PASSWORD_LENGTH" envDefault:"6"`
	SplitTolerance       string `env:"SPLIT_TOLERANCE" envDefault:"0.01"`
	MaxDescriptionLength int    `env:"MAX_DESCRIPTION_LENGTH" envDefault:"200"`
	TrimNames            bool   `env:"TRIM_NAMES" envDefault:"false"`
	RejectNegativeSplits bool   `env:"REJECT_NEGATIVE_SPLITS" envDefault:"false"`
	RequireCurrency      bool   `env:"REQUIRE_CURRENCY" envDefault:"false"`
}

// Policy converts the config, rejecting values that cannot be enforced.
func (c Config) Policy() (Policy, error) {
	tol, err := money.ParseTolerance(c.SplitTolerance)
	if err != nil {
		return Policy{}, errors.Join(ErrInvalidPolicy, err)
	}
	p := Policy{
		MinPasswordLength:    c.MinPasswordLength,
		SplitTolerance:       tol,
		MaxDescriptionLength: c.MaxDescriptionLength,
		TrimNames:            c.TrimNames,
		RejectNegativeSplits: c.RejectNegativeSplits,
		RequireCurrency:      c.RequireCurrency,
	}
	if err := p.validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}
