package renderer

import (
	"os"
	"time"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/etnz/smartportfolio/date"
)

// Now is the current time used in reports.
// SPF_TESTING_NOW overrides it so that documented outputs stay stable.
func Now() time.Time {
	if os.Getenv("SPF_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("SPF_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Today is the date of Now.
func Today() date.Date { return date.New(Now().Date()) }

// Dashboard is the portfolio overview: the summary of all holdings and the
// rebalance advice against the target.
type Dashboard struct {
	AsOf     string
	Holdings int

	TotalAssets     portfolio.Money
	PortfolioValue  portfolio.Money
	TotalCost       portfolio.Money
	TotalProfitLoss portfolio.Money
	ReturnRate      portfolio.Percent

	StockValue       portfolio.Money
	BondValue        portfolio.Money
	CashValue        portfolio.Money
	StockRatio       portfolio.Percent
	BondRatio        portfolio.Percent
	TargetStockRatio portfolio.Percent
	TargetBondRatio  portfolio.Percent
	CashReserveGoal  portfolio.Money
	AvailableCash    portfolio.Money

	InvestedGoal   portfolio.Money
	StockGoal      portfolio.Money
	BondGoal       portfolio.Money
	StockGap       portfolio.Money
	BondGap        portfolio.Money
	StockAction    portfolio.Action
	BondAction     portfolio.Action
	Recommendation string
}

// NewDashboard aggregates holdings and advises against target.
func NewDashboard(holdings []portfolio.Holding, target portfolio.PortfolioTarget) *Dashboard {
	s := portfolio.Aggregate(holdings, target.TotalAssetsGoal)
	a := portfolio.AdviseTarget(s, target)
	return &Dashboard{
		AsOf:     Today().String(),
		Holdings: len(holdings),

		TotalAssets:     s.TotalAssets,
		PortfolioValue:  s.TotalCurrentValue,
		TotalCost:       s.TotalCost,
		TotalProfitLoss: s.TotalProfitLoss,
		ReturnRate:      s.ReturnRate(),

		StockValue:       s.StockValue,
		BondValue:        s.BondValue,
		CashValue:        s.CashValue,
		StockRatio:       s.StockRatio(),
		BondRatio:        s.BondRatio(),
		TargetStockRatio: portfolio.Percent(100 * target.StockRatio),
		TargetBondRatio:  portfolio.Percent(100 * target.BondRatio),
		CashReserveGoal:  target.CashReserveGoal,
		AvailableCash:    s.AvailableCash(target.CashReserveGoal),

		InvestedGoal:   a.TargetInvested,
		StockGoal:      a.StockGoal,
		BondGoal:       a.BondGoal,
		StockGap:       a.StockGap,
		BondGap:        a.BondGap,
		StockAction:    a.Action(portfolio.Stock),
		BondAction:     a.Action(portfolio.Bond),
		Recommendation: a.Recommendation(),
	}
}
