package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Action is what the advisor suggests for an asset class.
type Action string

const (
	Buy  Action = "Buy"
	Sell Action = "Sell"
)

// Advice is the rebalancing recommendation against a target invested amount.
//
// A positive gap is the amount to buy to reach the goal of the class. A
// negative gap means the class is over-weight. Selling is informational only:
// the advice never frees cash.
type Advice struct {
	TargetInvested Money
	StockGoal      Money
	BondGoal       Money
	StockGap       Money
	BondGap        Money
}

// Advise compares current stock and bond values with their share of
// targetInvested. It is defined for any finite inputs, including ratios that
// do not sum to one, in which case the result is just less meaningful.
func Advise(stockValue, bondValue, targetInvested Money, stockRatio, bondRatio float64) Advice {
	a := Advice{
		TargetInvested: targetInvested,
		StockGoal:      targetInvested.Mul(decimal.NewFromFloat(stockRatio)),
		BondGoal:       targetInvested.Mul(decimal.NewFromFloat(bondRatio)),
	}
	a.StockGap = a.StockGoal.Sub(stockValue)
	a.BondGap = a.BondGoal.Sub(bondValue)
	return a
}

// AdviseTarget is Advise for the stock and bond values of a summary.
func AdviseTarget(s Summary, t PortfolioTarget) Advice {
	return Advise(s.StockValue, s.BondValue, t.InvestedGoal, t.StockRatio, t.BondRatio)
}

// Gap returns the gap of a class.
func (a Advice) Gap(class AssetClass) Money {
	if class == Bond {
		return a.BondGap
	}
	return a.StockGap
}

// Goal returns the target value of a class.
func (a Advice) Goal(class AssetClass) Money {
	if class == Bond {
		return a.BondGoal
	}
	return a.StockGoal
}

// Action returns Buy when the class is under its goal, Sell otherwise.
func (a Advice) Action(class AssetClass) Action {
	if a.Gap(class).IsPositive() {
		return Buy
	}
	return Sell
}

// Priority is the class with the larger gap: the one to buy first.
// Ties go to bonds.
func (a Advice) Priority() AssetClass {
	if a.StockGap.GreaterThan(a.BondGap) {
		return Stock
	}
	return Bond
}

// Shortfall is the amount still needed to reach the invested goal.
func (a Advice) Shortfall() Money { return a.StockGap.Add(a.BondGap) }

// Recommendation phrases the advice as one sentence.
func (a Advice) Recommendation() string {
	shortfall := a.Shortfall()
	priority := a.Priority()
	switch {
	case shortfall.IsPositive():
		return fmt.Sprintf("Use idle cash to top up the %s position first. %s is still needed to reach the invested goal of %s.",
			priority, shortfall, a.TargetInvested)
	case a.Gap(priority).IsPositive():
		return fmt.Sprintf("The invested goal of %s is reached. Move %s from %s to %s to restore the target ratios.",
			a.TargetInvested, a.Gap(priority), other(priority), priority)
	default:
		return fmt.Sprintf("The invested goal of %s is exceeded by %s.", a.TargetInvested, shortfall.Neg())
	}
}

func other(class AssetClass) AssetClass {
	if class == Stock {
		return Bond
	}
	return Stock
}
