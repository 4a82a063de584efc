package validator

import (
	"errors"
	"fmt"
	"slices"
)

// RuleFunc produces the rules to evaluate for a value of type T.
type RuleFunc[T any] func(v T) []Rule

type namedRule[T any] struct {
	name string
	fn   RuleFunc[T]
}

// Registry is an ordered, immutable set of named rule functions for one
// entity type. Register returns a new Registry and never modifies the
// receiver, so a Registry can be shared between goroutines and injected
// wherever it is needed.
type Registry[T any] struct {
	rules []namedRule[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() Registry[T] {
	return Registry[T]{}
}

// Register adds fn under name. Names must be unique within a registry.
func (r Registry[T]) Register(name string, fn RuleFunc[T]) (Registry[T], error) {
	if name == "" || fn == nil {
		return r, errors.Join(ErrInvalidRule, fmt.Errorf("name %q", name))
	}
	if r.Has(name) {
		return r, errors.Join(ErrRuleExists, fmt.Errorf("name %q", name))
	}

	rules := make([]namedRule[T], len(r.rules), len(r.rules)+1)
	copy(rules, r.rules)
	rules = append(rules, namedRule[T]{name: name, fn: fn})
	return Registry[T]{rules: rules}, nil
}

// MustRegister is like Register but panics on error. Meant for wiring
// registries at startup.
func (r Registry[T]) MustRegister(name string, fn RuleFunc[T]) Registry[T] {
	next, err := r.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return next
}

func (r Registry[T]) Has(name string) bool {
	return slices.ContainsFunc(r.rules, func(nr namedRule[T]) bool {
		return nr.name == name
	})
}

func (r Registry[T]) Len() int { return len(r.rules) }

// Names returns rule names in registration order.
func (r Registry[T]) Names() []string {
	names := make([]string, 0, len(r.rules))
	for _, nr := range r.rules {
		names = append(names, nr.name)
	}
	return names
}

// Rules builds every registered rule for v.
func (r Registry[T]) Rules(v T) []Rule {
	var rules []Rule
	for _, nr := range r.rules {
		rules = append(rules, nr.fn(v)...)
	}
	return rules
}

// Validate applies every registered rule to v.
func (r Registry[T]) Validate(v T) error {
	return Apply(r.Rules(v)...)
}

// ValidateOnly applies the named rules to v. An unknown name is a
// programming error and is returned as ErrUnknownRule, not as ValidationErrors.
func (r Registry[T]) ValidateOnly(v T, names ...string) error {
	var rules []Rule
	for _, name := range names {
		idx := slices.IndexFunc(r.rules, func(nr namedRule[T]) bool {
			return nr.name == name
		})
		if idx < 0 {
			return errors.Join(ErrUnknownRule, fmt.Errorf("name %q", name))
		}
		rules = append(rules, r.rules[idx].fn(v)...)
	}
	return Apply(rules...)
}
