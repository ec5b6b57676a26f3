package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SampleBrokerExport is a broker export used to seed a new portfolio when the
// user has none at hand.
//
//go:embed broker_sample.csv
var SampleBrokerExport string

// Classes maps instrument names to their asset class.
type Classes map[string]AssetClass

// Lookup returns the class of name, Stock when the name is unknown.
func (c Classes) Lookup(name string) AssetClass {
	if class, ok := c[name]; ok {
		return class
	}
	return Stock
}

// DefaultClasses classifies the Taiwan ETFs of the sample export.
var DefaultClasses = Classes{
	"元大台灣50":      Stock,
	"元大高股息":       Stock,
	"元大美債20年":     Bond,
	"元大投資級公司債":    Bond,
	"群益台灣精選高息":    Stock,
	"群益ESG投等債20+": Bond,
}

// broker export columns.
const (
	colName         = 0
	colShares       = 1
	colAvgPrice     = 4
	colMarketPrice  = 5
	colCurrentValue = 6
	colCost         = 7
	colReturnRate   = 9

	brokerColumns = 10
)

// ImportBrokerExport reads the holdings of a broker export: a comma separated
// table with a header row and the columns
//
//	name, shares, profitLoss, tradeType, avgPrice, marketPrice, currentValue, cost, profitLoss2, returnRatePercent, currency
//
// Numbers may be quoted with thousands separators ("22,000") and the return
// rate carries a trailing '%'. The derived values of the broker are kept as
// is, except the profit which is recomputed as current value minus cost. Rows
// with fewer than 10 fields or unparseable numbers are skipped. The class of
// each holding comes from classes.
func ImportBrokerExport(r io.Reader, classes Classes) ([]Holding, error) {
	var holdings []Holding
	header := true
	err := eachLine(r, func(line string) {
		if header {
			header = false
			return
		}
		fields := splitFields(line)
		if len(fields) < brokerColumns {
			return
		}
		if h, err := importBrokerRow(fields, classes); err == nil {
			holdings = append(holdings, h)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read broker export: %w", err)
	}
	return holdings, nil
}

func importBrokerRow(fields []string, classes Classes) (Holding, error) {
	name := strings.TrimSpace(fields[colName])
	shares, err1 := cleanNumber(fields[colShares])
	avg, err2 := cleanNumber(fields[colAvgPrice])
	price, err3 := cleanNumber(fields[colMarketPrice])
	value, err4 := cleanNumber(fields[colCurrentValue])
	cost, err5 := cleanNumber(fields[colCost])
	rate, err6 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(fields[colReturnRate]), "%"), 64)
	if err := errors.Join(err1, err2, err3, err4, err5, err6); err != nil {
		return Holding{}, err
	}

	h := Holding{
		Name:               name,
		Class:              classes.Lookup(name),
		Shares:             Q(shares),
		AvgCostPrice:       TWD(avg),
		CurrentMarketPrice: TWD(price),
		CurrentValue:       TWD(value),
		Cost:               TWD(cost),
		ReturnRate:         Percent(rate),
	}
	h.TotalProfitLoss = h.CurrentValue.Sub(h.Cost)
	return h, nil
}

// cleanNumber parses a number that may contain thousands separators and quotes.
func cleanNumber(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(",", "", `"`, "").Replace(strings.TrimSpace(s))
	return decimal.NewFromString(s)
}
