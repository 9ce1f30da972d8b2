package coupons

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		Name         string
		Code         string
		ExpectedRate decimal.Decimal
		ExpectedOK   bool
	}{
		{Name: "Ten percent #1", Code: "DESCONTO10", ExpectedRate: decimal.RequireFromString("0.1"), ExpectedOK: true},
		{Name: "Fifteen percent #2", Code: "DESCONTO15", ExpectedRate: decimal.RequireFromString("0.15"), ExpectedOK: true},
		{Name: "Unknown code #3", Code: "DESCONTO20", ExpectedRate: decimal.Zero, ExpectedOK: false},
		{Name: "Lowercase does not match #4", Code: "desconto10", ExpectedRate: decimal.Zero, ExpectedOK: false},
		{Name: "Empty code #5", Code: "", ExpectedRate: decimal.Zero, ExpectedOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rate, ok := Resolve(tc.Code)

			if ok != tc.ExpectedOK {
				t.Errorf("Expected ok=%v for '%s', got: %v", tc.ExpectedOK, tc.Code, ok)
			}
			if !rate.Equal(tc.ExpectedRate) {
				t.Errorf("Expected rate '%s' for '%s', got: '%s'", tc.ExpectedRate, tc.Code, rate)
			}
		})
	}
}
