package portfolio

import "testing"

func TestNewHolding(t *testing.T) {
	testCases := []struct {
		name      string
		class     AssetClass
		wantValue Money
		wantPL    Money
		wantRate  Percent
	}{
		{"stock pays transaction tax", Stock, TWD(109846), TWD(9806), 9.8021},
		{"bond pays no transaction tax", Bond, TWD(109956), TWD(9916), 9.9120},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := sampleHolding(tc.class)
			assertMoney(t, "Cost", h.Cost, TWD(100040))
			assertMoney(t, "CurrentValue", h.CurrentValue, tc.wantValue)
			assertMoney(t, "TotalProfitLoss", h.TotalProfitLoss, tc.wantPL)
			if !h.ReturnRate.Equal(tc.wantRate) {
				t.Errorf("ReturnRate = %v, want %v", h.ReturnRate, tc.wantRate)
			}
		})
	}
}

func TestRecalculate(t *testing.T) {
	testCases := []struct {
		name      string
		field     Field
		value     string
		wantShare Quantity
		wantAvg   Money
		wantPrice Money
		wantCost  Money
		wantValue Money
	}{
		{"shares", Shares, "2000", Q(2000), TWD(100), TWD(110), TWD(200080), TWD(219692)},
		{"average price", AvgCostPrice, "105", Q(1000), TWD(105), TWD(110), TWD(105042), TWD(109846)},
		{"cost override", Cost, "120000", Q(1000), TWD(D("119.9521390965004963")), TWD(110), TWD(120000), TWD(109846)},
		{"market price", CurrentMarketPrice, "120", Q(1000), TWD(100), TWD(120), TWD(100040), TWD(119832)},
		{"value override", CurrentValue, "99860", Q(1000), TWD(100), TWD(D("99.9998998599040057")), TWD(100040), TWD(99860)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := Recalculate(sampleHolding(Stock), tc.field, D(tc.value))

			if !h.Shares.Equal(tc.wantShare) {
				t.Errorf("Shares = %v, want %v", h.Shares, tc.wantShare)
			}
			assertMoney(t, "AvgCostPrice", h.AvgCostPrice, tc.wantAvg)
			assertMoney(t, "CurrentMarketPrice", h.CurrentMarketPrice, tc.wantPrice)
			assertMoney(t, "Cost", h.Cost, tc.wantCost)
			assertMoney(t, "CurrentValue", h.CurrentValue, tc.wantValue)
			assertMoney(t, "TotalProfitLoss", h.TotalProfitLoss, tc.wantValue.Sub(tc.wantCost))
			if want := tc.wantValue.Sub(tc.wantCost).Ratio(tc.wantCost); !h.ReturnRate.Equal(want) {
				t.Errorf("ReturnRate = %v, want %v", h.ReturnRate, want)
			}
		})
	}
}

func TestRecalculate_DoesNotModifyInput(t *testing.T) {
	h := sampleHolding(Stock)
	_ = Recalculate(h, Shares, D("5"))
	if !h.Shares.Equal(Q(1000)) {
		t.Errorf("Recalculate() modified its input: Shares = %v", h.Shares)
	}
}

func TestRecalculate_NoShares(t *testing.T) {
	h := Recalculate(sampleHolding(Stock), Shares, D("0"))
	assertMoney(t, "Cost", h.Cost, TWD(0))
	assertMoney(t, "CurrentValue", h.CurrentValue, TWD(0))
	if h.ReturnRate != 0 {
		t.Errorf("ReturnRate = %v, want 0", h.ReturnRate)
	}

	h = Recalculate(h, Cost, D("500"))
	assertMoney(t, "AvgCostPrice", h.AvgCostPrice, TWD(0))

	h = Recalculate(h, CurrentValue, D("700"))
	assertMoney(t, "CurrentMarketPrice", h.CurrentMarketPrice, TWD(0))
	assertMoney(t, "TotalProfitLoss", h.TotalProfitLoss, TWD(200))
}

func TestRecalculate_AcceptsNegativeInput(t *testing.T) {
	h := Recalculate(sampleHolding(Bond), Shares, D("-10"))
	if !h.Shares.Equal(Q(-10)) {
		t.Errorf("Shares = %v, want -10", h.Shares)
	}
	// no back-solve without positive shares
	h = Recalculate(h, Cost, D("1000"))
	assertMoney(t, "AvgCostPrice", h.AvgCostPrice, TWD(0))
}

func TestRecalculate_PriceRoundTrip(t *testing.T) {
	for _, class := range []AssetClass{Stock, Bond} {
		for _, shares := range []string{"1", "999", "22000", "45000"} {
			h := Recalculate(sampleHolding(class), Shares, D(shares))
			want := h.CurrentValue

			h = Recalculate(h, CurrentMarketPrice, D("87.35"))
			h = Recalculate(h, CurrentMarketPrice, D("110"))
			assertMoney(t, "CurrentValue after price round trip", h.CurrentValue, want)

			h = Recalculate(h, Shares, D("12345"))
			h = Recalculate(h, Shares, D(shares))
			assertMoney(t, "CurrentValue after shares round trip", h.CurrentValue, want)
		}
	}
}

func TestRecalculate_CostBackSolveIsInverse(t *testing.T) {
	for _, shares := range []string{"1", "3", "1000", "45000"} {
		for _, cost := range []string{"1", "100040", "1372238", "682818"} {
			h := Recalculate(sampleHolding(Stock), Shares, D(shares))
			h = Recalculate(h, Cost, D(cost))
			h = Recalculate(h, AvgCostPrice, h.AvgCostPrice.Decimal())
			assertMoney(t, "Cost after back-solve and forward-solve", h.Cost, TWD(D(cost)))
		}
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseField("profit"); err == nil {
		t.Errorf("ParseField(%q) should fail", "profit")
	}
}

func TestParseAssetClass(t *testing.T) {
	for _, s := range []string{"Stock", "Bond"} {
		if got, err := ParseAssetClass(s); err != nil || got.String() != s {
			t.Errorf("ParseAssetClass(%q) = %v, %v", s, got, err)
		}
	}
	for _, s := range []string{"stock", "Cash", ""} {
		if _, err := ParseAssetClass(s); err == nil {
			t.Errorf("ParseAssetClass(%q) should fail", s)
		}
	}
}
