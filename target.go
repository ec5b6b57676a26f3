package portfolio

// PortfolioTarget is the fixed allocation plan the portfolio is measured
// against. StockRatio and BondRatio are expected to sum to 1; this is not
// enforced.
type PortfolioTarget struct {
	TotalAssetsGoal Money
	InvestedGoal    Money
	CashReserveGoal Money
	StockRatio      float64
	BondRatio       float64
}

// DefaultTarget is 8M of total assets: 7M invested 60/40 in stocks and
// bonds, 1M kept as cash reserve.
func DefaultTarget() PortfolioTarget {
	return PortfolioTarget{
		TotalAssetsGoal: TWD(8_000_000),
		InvestedGoal:    TWD(7_000_000),
		CashReserveGoal: TWD(1_000_000),
		StockRatio:      0.6,
		BondRatio:       0.4,
	}
}
