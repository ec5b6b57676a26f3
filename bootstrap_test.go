package portfolio

import (
	"strings"
	"testing"
)

func TestImportBrokerExport_Sample(t *testing.T) {
	holdings, err := ImportBrokerExport(strings.NewReader(SampleBrokerExport), DefaultClasses)
	if err != nil {
		t.Fatalf("ImportBrokerExport() unexpected error: %v", err)
	}
	if len(holdings) != 6 {
		t.Fatalf("ImportBrokerExport() = %d holdings, want 6", len(holdings))
	}

	first := holdings[0]
	if first.Name != "元大台灣50" || first.Class != Stock || !first.Shares.Equal(Q(22000)) {
		t.Errorf("first holding = %+v", first)
	}
	assertMoney(t, "AvgCostPrice", first.AvgCostPrice, TWD(D("62.35")))
	assertMoney(t, "CurrentMarketPrice", first.CurrentMarketPrice, TWD(D("63.65")))
	assertMoney(t, "CurrentValue", first.CurrentValue, TWD(1398355))
	assertMoney(t, "Cost", first.Cost, TWD(1372238))
	assertMoney(t, "TotalProfitLoss", first.TotalProfitLoss, TWD(26117))
	if !first.ReturnRate.Equal(1.90) {
		t.Errorf("ReturnRate = %v, want 1.90%%", first.ReturnRate)
	}

	bonds := 0
	for _, h := range holdings {
		if h.Class == Bond {
			bonds++
		}
	}
	if bonds != 3 {
		t.Errorf("imported %d bonds, want 3", bonds)
	}

	s := Aggregate(holdings, TWD(8_000_000))
	assertMoney(t, "TotalCurrentValue", s.TotalCurrentValue, TWD(5940935))
	assertMoney(t, "TotalCost", s.TotalCost, TWD(5895888))
	if h := holdings[2]; !h.ReturnRate.Equal(-1.33) || h.TotalProfitLoss.IsPositive() {
		t.Errorf("negative holding = %+v", h)
	}
}

func TestImportBrokerExport_SkipsBadRows(t *testing.T) {
	export := strings.Join([]string{
		`header`,
		`short,"1,000",3`,
		`bad,x,0,現股,1,1,1,1,0,0%,台幣`,
		`Unknown ETF,"1,000",0,現股,10,11,"11,000","10,000",0,10%`,
	}, "\n")
	holdings, err := ImportBrokerExport(strings.NewReader(export), DefaultClasses)
	if err != nil {
		t.Fatalf("ImportBrokerExport() unexpected error: %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("ImportBrokerExport() = %d holdings, want 1", len(holdings))
	}
	if h := holdings[0]; h.Name != "Unknown ETF" || h.Class != Stock {
		t.Errorf("holding = %+v, want Unknown ETF classified as Stock", h)
	}
	assertMoney(t, "TotalProfitLoss", holdings[0].TotalProfitLoss, TWD(1000))
}

func TestClasses_Lookup(t *testing.T) {
	if got := DefaultClasses.Lookup("元大美債20年"); got != Bond {
		t.Errorf("Lookup(元大美債20年) = %v, want Bond", got)
	}
	if got := Classes(nil).Lookup("anything"); got != Stock {
		t.Errorf("Lookup on nil classes = %v, want Stock", got)
	}
}
