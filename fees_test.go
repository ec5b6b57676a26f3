package portfolio

import "testing"

func TestBuyCostFactor(t *testing.T) {
	if got, want := BuyCostFactor(), D("1.000399"); !got.Equal(want) {
		t.Errorf("BuyCostFactor() = %v, want %v", got, want)
	}
}

func TestSellValueFactor(t *testing.T) {
	testCases := []struct {
		class AssetClass
		want  string
	}{
		{Stock, "0.998601"},
		{Bond, "0.999601"},
	}
	for _, tc := range testCases {
		t.Run(tc.class.String(), func(t *testing.T) {
			if got := SellValueFactor(tc.class); !got.Equal(D(tc.want)) {
				t.Errorf("SellValueFactor(%v) = %v, want %v", tc.class, got, tc.want)
			}
		})
	}
}

func TestSellValueFactor_BondsPayNoTax(t *testing.T) {
	if !SellValueFactor(Bond).GreaterThan(SellValueFactor(Stock)) {
		t.Errorf("SellValueFactor(Bond) = %v should be greater than SellValueFactor(Stock) = %v", SellValueFactor(Bond), SellValueFactor(Stock))
	}
}
