package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a const
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertMoney fails the test when got is not want.
func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Decimal().Equal(want.Decimal()) {
		t.Errorf("%s = %v, want %v", name, got.Decimal(), want.Decimal())
	}
}

// sampleHolding is holding A of the fee schedule examples.
func sampleHolding(class AssetClass) Holding {
	return NewHolding("A", class, Q(1000), TWD(100), TWD(110))
}
