package renderer

import (
	"bytes"
	"fmt"
	"slices"

	portfolio "github.com/etnz/smartportfolio"
	md "github.com/nao1215/markdown"
)

// DividendsMarkdown renders the dividend dashboard.
func DividendsMarkdown(s portfolio.DividendStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dividends")
	if len(s.Recent) == 0 && len(s.Monthly) == 0 {
		doc.PlainText("No dividend recorded yet.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Received in %s: %s. All time: %s.", s.Period.Identifier(), s.TotalPeriod, s.TotalAllTime))

	doc.H2("Monthly Income")
	monthly := make([][]string, 0, len(s.Monthly))
	for _, m := range s.Monthly {
		monthly = append(monthly, []string{m.Month, m.Amount.String()})
	}
	doc.Table(md.TableSet{Header: []string{"Month", "Amount"}, Rows: monthly})

	doc.H2("By Holding")
	names := make([]string, 0, len(s.ByHolding))
	for name := range s.ByHolding {
		names = append(names, name)
	}
	slices.Sort(names)
	byHolding := make([][]string, 0, len(names))
	for _, name := range names {
		byHolding = append(byHolding, []string{name, s.ByHolding[name].String()})
	}
	doc.Table(md.TableSet{Header: []string{"Holding", "Total"}, Rows: byHolding})

	if len(s.Recent) > 0 {
		doc.H2("Recent")
		recent := make([][]string, 0, len(s.Recent))
		for _, r := range s.Recent {
			recent = append(recent, []string{r.Date.String(), r.StockName, r.Amount.String()})
		}
		doc.Table(md.TableSet{Header: []string{"Date", "Holding", "Amount"}, Rows: recent})
	}
	return doc.String()
}
