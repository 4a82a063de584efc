// Package entry validates the records a shared-expense client submits:
// user profiles, groups and expenses with their splits.
//
// Each record type has a validator.Registry built from a Policy. Validator
// bundles the three registries and is the single place form handlers call
// before a mutation is committed:
//
//	v, err := entry.New(entry.DefaultPolicy(), entry.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	if err := v.ValidateExpense(ctx, exp); err != nil {
//	    msgs := entry.Localize(ctx, tr, "en", err)
//	    // render msgs next to the form fields
//	}
//
// Additional rules, for example for recurring expenses, are added with
// WithExpenseRule and friends without touching the built-in ones.
//
// Policy exposes the two product decisions that are still open: whether
// whitespace-only names are accepted (TrimNames) and whether negative
// contributions such as refunds may appear in a split (RejectNegativeSplits).
// Both default to the permissive behaviour.
package entry
