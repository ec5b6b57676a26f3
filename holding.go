package portfolio

import "github.com/shopspring/decimal"

// Holding is one line of the portfolio: a position in a named instrument.
//
// Shares, AvgCostPrice and CurrentMarketPrice are the persisted inputs.
// CurrentValue and Cost are monetary amounts net of fees and taxes, and
// TotalProfitLoss and ReturnRate summarize them. Holdings are values: they are
// changed through Recalculate, which returns a new, consistent Holding.
type Holding struct {
	Name               string // unique key, also referenced by DividendRecord.StockName
	Class              AssetClass
	Shares             Quantity
	AvgCostPrice       Money // per share, before fees
	CurrentMarketPrice Money // per share
	CurrentValue       Money // after sell-side fee and tax
	Cost               Money // after buy-side fee
	TotalProfitLoss    Money
	ReturnRate         Percent
}

// NewHolding creates a holding from its persisted inputs and derives every
// other field as if Shares had just been edited.
func NewHolding(name string, class AssetClass, shares Quantity, avgCostPrice, currentMarketPrice Money) Holding {
	h := Holding{
		Name:               name,
		Class:              class,
		AvgCostPrice:       avgCostPrice,
		CurrentMarketPrice: currentMarketPrice,
	}
	return Recalculate(h, Shares, shares.value)
}

// Recalculate returns a copy of h where field is set to value and the fields
// derived from it are recomputed. Monetary results are rounded to the integer
// currency unit; prices and rates are not rounded.
//
//   - Shares: sets CurrentValue and Cost.
//   - AvgCostPrice: sets Cost.
//   - Cost: back-solves AvgCostPrice (0 when there are no shares).
//   - CurrentMarketPrice: sets CurrentValue.
//   - CurrentValue: back-solves CurrentMarketPrice (0 when there are no shares).
//
// TotalProfitLoss and ReturnRate are always recomputed. Values are not
// validated: negative shares or prices go through as-is.
func Recalculate(h Holding, field Field, value decimal.Decimal) Holding {
	buy, sell := BuyCostFactor(), SellValueFactor(h.Class)

	switch field {
	case Shares:
		h.Shares = Quantity{value: value}
		h.CurrentValue = amount(h.Shares, h.CurrentMarketPrice, sell)
		h.Cost = amount(h.Shares, h.AvgCostPrice, buy)
	case AvgCostPrice:
		h.AvgCostPrice = Money{value: value, cur: h.AvgCostPrice.cur}
		h.Cost = amount(h.Shares, h.AvgCostPrice, buy)
	case Cost:
		h.Cost = Money{value: value, cur: h.Cost.cur}
		h.AvgCostPrice = unitPrice(h.Cost, h.Shares, buy)
	case CurrentMarketPrice:
		h.CurrentMarketPrice = Money{value: value, cur: h.CurrentMarketPrice.cur}
		h.CurrentValue = amount(h.Shares, h.CurrentMarketPrice, sell)
	case CurrentValue:
		h.CurrentValue = Money{value: value, cur: h.CurrentValue.cur}
		h.CurrentMarketPrice = unitPrice(h.CurrentValue, h.Shares, sell)
	}

	h.TotalProfitLoss = h.CurrentValue.Sub(h.Cost)
	h.ReturnRate = h.TotalProfitLoss.Ratio(h.Cost)
	return h
}

// amount is shares × price × factor, rounded to the currency unit.
func amount(shares Quantity, price Money, factor decimal.Decimal) Money {
	return price.Mul(shares.value).Mul(factor).Round()
}

// unitPrice is the inverse of amount. It is zero when there are no shares.
func unitPrice(total Money, shares Quantity, factor decimal.Decimal) Money {
	if !shares.IsPositive() {
		return Money{cur: total.cur}
	}
	return Money{value: total.value.Div(shares.value.Mul(factor)), cur: total.cur}
}
