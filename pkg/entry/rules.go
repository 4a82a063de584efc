package entry

import (
	"fmt"

	"github.com/dmitrymomot/splitkit/pkg/validator"
)

// Rule names registered by the built-in registries.
const (
	RuleProfileName     = "name"
	RuleProfileEmail    = "email"
	RuleProfilePassword = "password"

	RuleGroupName    = "name"
	RuleGroupMembers = "members"

	RuleExpenseGroup       = "group"
	RuleExpenseDescription = "description"
	RuleExpenseAmount      = "amount"
	RuleExpenseCurrency    = "currency"
	RuleExpenseSplits      = "splits"
)

func nameRule(p Policy) func(field, value string) validator.Rule {
	if p.TrimNames {
		return validator.ValidNameTrimmed
	}
	return validator.ValidName
}

// NewProfileRegistry returns the rules for user profiles.
func NewProfileRegistry(p Policy) validator.Registry[Profile] {
	name := nameRule(p)
	return validator.NewRegistry[Profile]().
		MustRegister(RuleProfileName, func(v Profile) []validator.Rule {
			return []validator.Rule{name("name", v.Name)}
		}).
		MustRegister(RuleProfileEmail, func(v Profile) []validator.Rule {
			return []validator.Rule{validator.ValidEmail("email", v.Email)}
		}).
		MustRegister(RuleProfilePassword, func(v Profile) []validator.Rule {
			return []validator.Rule{validator.PasswordMinLength("password", v.Password, p.MinPasswordLength)}
		})
}

// NewGroupRegistry returns the rules for groups. Member emails are optional,
// but when present they must be well formed and unique within the group.
func NewGroupRegistry(p Policy) validator.Registry[Group] {
	name := nameRule(p)
	return validator.NewRegistry[Group]().
		MustRegister(RuleGroupName, func(g Group) []validator.Rule {
			return []validator.Rule{name("name", g.Name)}
		}).
		MustRegister(RuleGroupMembers, func(g Group) []validator.Rule {
			rules := []validator.Rule{
				validator.MinLenSlice("members", g.Members, 1),
				validator.UniqueStringsFold("members", g.Emails()),
			}
			for i, m := range g.Members {
				rules = append(rules, name(fmt.Sprintf("members[%d].name", i), m.Name))
				if m.Email != "" {
					rules = append(rules, validator.ValidEmail(fmt.Sprintf("members[%d].email", i), m.Email))
				}
			}
			return rules
		})
}

// NewExpenseRegistry returns the rules for expenses and their splits.
func NewExpenseRegistry(p Policy) validator.Registry[Expense] {
	name := nameRule(p)
	return validator.NewRegistry[Expense]().
		MustRegister(RuleExpenseGroup, func(e Expense) []validator.Rule {
			return []validator.Rule{validator.NonNilUUID("group_id", e.GroupID)}
		}).
		MustRegister(RuleExpenseDescription, func(e Expense) []validator.Rule {
			return []validator.Rule{
				name("description", e.Description),
				validator.MaxLenString("description", e.Description, p.MaxDescriptionLength),
			}
		}).
		MustRegister(RuleExpenseAmount, func(e Expense) []validator.Rule {
			return []validator.Rule{validator.ValidAmount("amount", e.Amount)}
		}).
		MustRegister(RuleExpenseCurrency, func(e Expense) []validator.Rule {
			if e.Currency == "" && !p.RequireCurrency {
				return nil
			}
			return []validator.Rule{validator.ValidCurrencyCode("currency", e.Currency)}
		}).
		MustRegister(RuleExpenseSplits, func(e Expense) []validator.Rule {
			amounts := e.SplitAmounts()
			// An empty split set would reconcile against a zero total, which is
			// never what a submitted expense means.
			rules := []validator.Rule{
				validator.MinLenSlice("splits", e.Splits, 1),
				validator.SplitsSumWithin("splits", e.Amount, amounts, p.SplitTolerance),
			}
			if p.RejectNegativeSplits {
				rules = append(rules, validator.NonNegativeSplits("splits", amounts))
			}
			for i, s := range e.Splits {
				rules = append(rules, name(fmt.Sprintf("splits[%d].member", i), s.Member))
			}
			return rules
		})
}
