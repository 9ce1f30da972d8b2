// Package coupons holds the static coupon table. Codes match
// case-sensitively; an unknown or empty code resolves to no discount
// rather than an error.
package coupons

import "github.com/shopspring/decimal"

var table = map[string]decimal.Decimal{
	"DESCONTO10": decimal.NewFromFloat(0.10),
	"DESCONTO15": decimal.NewFromFloat(0.15),
}

// Resolve returns the discount rate for a coupon code. The second return
// value reports whether the code is known; callers treat unknown codes as
// a zero rate, never as a failure.
func Resolve(code string) (decimal.Decimal, bool) {
	rate, ok := table[code]
	if !ok {
		return decimal.Zero, false
	}
	return rate, true
}
