// Package money provides the monetary primitives used by the split
// validation rules: a finite Amount type and exact, order-independent
// summation of contributions backed by shopspring/decimal.
//
// Contributions arrive as float64 values produced by sliders and percentage
// calculators. Each value is converted to its shortest decimal
// representation before summing, so 33.33 + 33.33 + 33.34 is exactly 100.00
// and the result never depends on the order of the inputs.
//
// # Tolerance
//
// SplitTolerance is the policy slack accepted between a split sum and the
// expense total. The comparison is absolute, not relative: a one cent slack
// is the same for a total of 10 and a total of 10,000,000. Currencies with
// very large nominal values may want a custom tolerance.
//
// # Usage
//
//	sum, delta := money.Delta(100, []float64{50, 49.995})
//	ok := money.WithinTolerance(delta, money.DefaultTolerance())
package money
