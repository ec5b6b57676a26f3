package portfolio

// Summary folds a list of holdings into the figures of the dashboard.
type Summary struct {
	TotalAssets       Money // the fixed total assets figure the summary was computed against
	StockValue        Money
	BondValue         Money
	CashValue         Money // TotalAssets - TotalCurrentValue
	TotalProfitLoss   Money
	TotalCurrentValue Money
	TotalCost         Money
}

// Aggregate sums current values per asset class and profit, loss and cost
// over all holdings.
//
// Cash is not tracked: it is the residual between totalAssetsGoal and the
// value of the holdings. Any edit of a holding current value therefore moves
// the implied cash by the opposite amount.
func Aggregate(holdings []Holding, totalAssetsGoal Money) Summary {
	zero := Money{cur: totalAssetsGoal.cur}
	s := Summary{
		TotalAssets:       totalAssetsGoal,
		StockValue:        zero,
		BondValue:         zero,
		TotalProfitLoss:   zero,
		TotalCurrentValue: zero,
		TotalCost:         zero,
	}
	for _, h := range holdings {
		switch h.Class {
		case Stock:
			s.StockValue = s.StockValue.Add(h.CurrentValue)
		case Bond:
			s.BondValue = s.BondValue.Add(h.CurrentValue)
		}
		s.TotalProfitLoss = s.TotalProfitLoss.Add(h.TotalProfitLoss)
		s.TotalCurrentValue = s.TotalCurrentValue.Add(h.CurrentValue)
		s.TotalCost = s.TotalCost.Add(h.Cost)
	}
	s.CashValue = totalAssetsGoal.Sub(s.TotalCurrentValue)
	return s
}

// Invested is the value held in stocks and bonds.
func (s Summary) Invested() Money { return s.StockValue.Add(s.BondValue) }

// StockRatio is the share of stocks in the invested value, in percent.
func (s Summary) StockRatio() Percent { return s.classRatio(s.StockValue) }

// BondRatio is the share of bonds in the invested value, in percent.
func (s Summary) BondRatio() Percent { return s.classRatio(s.BondValue) }

func (s Summary) classRatio(v Money) Percent {
	if !s.Invested().IsPositive() {
		return 0
	}
	return v.Ratio(s.Invested())
}

// ReturnRate is the overall unrealized return, 0 unless some cost was paid.
func (s Summary) ReturnRate() Percent {
	if !s.TotalCost.IsPositive() {
		return 0
	}
	return s.TotalProfitLoss.Ratio(s.TotalCost)
}

// AvailableCash is the implied cash beyond the emergency reserve.
func (s Summary) AvailableCash(reserve Money) Money { return s.CashValue.Sub(reserve) }
