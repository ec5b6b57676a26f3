package portfolio

import "github.com/shopspring/decimal"

// Taiwan brokerage schedule. The broker fee is charged on both legs of a
// trade, the securities transaction tax only when selling stocks.
var (
	feeRate        = decimal.RequireFromString("0.001425")
	brokerDiscount = decimal.RequireFromString("0.28")
	stockTaxRate   = decimal.RequireFromString("0.001")
)

// fee is the discounted broker fee rate.
func fee() decimal.Decimal { return feeRate.Mul(brokerDiscount) }

// BuyCostFactor is the multiplier turning a raw acquisition amount into a cost
// including the broker fee.
func BuyCostFactor() decimal.Decimal {
	return decimal.NewFromInt(1).Add(fee())
}

// SellValueFactor is the multiplier turning a raw market amount into what a
// sale would actually yield, net of broker fee and transaction tax.
func SellValueFactor(class AssetClass) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(fee()).Sub(transactionTax(class))
}

// transactionTax only applies to stocks. Bonds, and any tag that is not
// Stock, pay no tax.
func transactionTax(class AssetClass) decimal.Decimal {
	if class == Stock {
		return stockTaxRate
	}
	return decimal.Zero
}
