package renderer

import (
	"bytes"

	portfolio "github.com/etnz/smartportfolio"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the holdings table, in portfolio order.
func HoldingsMarkdown(holdings []portfolio.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	if len(holdings) == 0 {
		doc.PlainText("No holdings. Run `spf init` to bootstrap the portfolio from a broker export.")
		return doc.String()
	}

	rows := make([][]string, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, []string{
			h.Name,
			h.Class.String(),
			h.Shares.String(),
			h.AvgCostPrice.String(),
			h.CurrentMarketPrice.String(),
			h.Cost.String(),
			h.CurrentValue.String(),
			h.TotalProfitLoss.SignedString(),
			h.ReturnRate.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Class", "Shares", "Avg Price", "Price", "Cost", "Value", "P/L", "Return"},
		Rows:   rows,
	})
	return doc.String()
}
