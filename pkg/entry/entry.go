package entry

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/splitkit/pkg/logger"
	"github.com/dmitrymomot/splitkit/pkg/validator"
)

// Entity kinds, used in logs and by the HTTP and CLI front ends.
const (
	KindProfile = "profile"
	KindGroup   = "group"
	KindExpense = "expense"
)

// Validator validates profiles, groups and expenses. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	policy   Policy
	profiles validator.Registry[Profile]
	groups   validator.Registry[Group]
	expenses validator.Registry[Expense]
	logger   *slog.Logger
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	profiles []namedRule[Profile]
	groups   []namedRule[Group]
	expenses []namedRule[Expense]
}

type namedRule[T any] struct {
	name string
	fn   validator.RuleFunc[T]
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProfileRule adds a rule after the built-in profile rules.
func WithProfileRule(name string, fn validator.RuleFunc[Profile]) Option {
	return func(o *options) { o.profiles = append(o.profiles, namedRule[Profile]{name, fn}) }
}

// WithGroupRule adds a rule after the built-in group rules.
func WithGroupRule(name string, fn validator.RuleFunc[Group]) Option {
	return func(o *options) { o.groups = append(o.groups, namedRule[Group]{name, fn}) }
}

// WithExpenseRule adds a rule after the built-in expense rules.
func WithExpenseRule(name string, fn validator.RuleFunc[Expense]) Option {
	return func(o *options) { o.expenses = append(o.expenses, namedRule[Expense]{name, fn}) }
}

// New builds a Validator for policy. Extra rules with a duplicate or empty
// name are reported as errors.
func New(policy Policy, opts ...Option) (*Validator, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	profiles, err := extend(NewProfileRegistry(policy), o.profiles)
	if err != nil {
		return nil, err
	}
	groups, err := extend(NewGroupRegistry(policy), o.groups)
	if err != nil {
		return nil, err
	}
	expenses, err := extend(NewExpenseRegistry(policy), o.expenses)
	if err != nil {
		return nil, err
	}

	return &Validator{
		policy:   policy,
		profiles: profiles,
		groups:   groups,
		expenses: expenses,
		logger:   o.logger.With(logger.Component("entry")),
	}, nil
}

func extend[T any](reg validator.Registry[T], extra []namedRule[T]) (validator.Registry[T], error) {
	for _, nr := range extra {
		next, err := reg.Register(nr.name, nr.fn)
		if err != nil {
			return reg, err
		}
		reg = next
	}
	return reg, nil
}

func (v *Validator) Policy() Policy { return v.policy }

func (v *Validator) ValidateProfile(ctx context.Context, p Profile) error {
	return validate(ctx, v.logger, KindProfile, v.profiles, p)
}

func (v *Validator) ValidateGroup(ctx context.Context, g Group) error {
	return validate(ctx, v.logger, KindGroup, v.groups, g)
}

func (v *Validator) ValidateExpense(ctx context.Context, e Expense) error {
	return validate(ctx, v.logger, KindExpense, v.expenses, e)
}

// RuleNames lists the registered rule names per entity kind.
func (v *Validator) RuleNames() map[string][]string {
	return map[string][]string{
		KindProfile: v.profiles.Names(),
		KindGroup:   v.groups.Names(),
		KindExpense: v.expenses.Names(),
	}
}

func validate[T any](ctx context.Context, log *slog.Logger, kind string, reg validator.Registry[T], value T) error {
	err := reg.Validate(value)
	if err == nil {
		log.DebugContext(ctx, "entry accepted", logger.Entity(kind))
		return nil
	}

	log.DebugContext(ctx, "entry rejected",
		logger.Entity(kind),
		logger.Reasons(validator.ExtractValidationErrors(err).Reasons()...),
	)
	return err
}
