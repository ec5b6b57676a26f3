package portfolio

import (
	"slices"

	"github.com/etnz/smartportfolio/date"
	"github.com/google/uuid"
)

// DividendRecord is a dividend received for a holding.
//
// StockName is a plain reference to Holding.Name. It is not checked: records
// stay valid when the holding is renamed or removed.
type DividendRecord struct {
	ID        string
	Date      date.Date
	StockName string
	Amount    Money
}

// NewDividend creates a record with a fresh id.
func NewDividend(on date.Date, stockName string, amount Money) DividendRecord {
	return DividendRecord{
		ID:        uuid.NewString(),
		Date:      on,
		StockName: stockName,
		Amount:    amount,
	}
}

// MonthlyIncome is the dividend income of one calendar month.
type MonthlyIncome struct {
	Month  string // YYYY-MM
	Amount Money
}

// DividendStats summarizes the dividend history.
type DividendStats struct {
	Period       date.Range
	TotalAllTime Money
	TotalPeriod  Money // income received during Period
	Monthly      []MonthlyIncome
	ByHolding    map[string]Money
	Recent       []DividendRecord // most recent first
}

// NewDividendStats computes statistics over the whole history and over
// period, keeping the 'recent' latest records.
func NewDividendStats(records []DividendRecord, period date.Range, recent int) DividendStats {
	zero := TWD(0)
	s := DividendStats{
		Period:       period,
		TotalAllTime: zero,
		TotalPeriod:  zero,
		ByHolding:    make(map[string]Money),
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b DividendRecord) int { return a.Date.Compare(b.Date) })

	for _, r := range sorted {
		s.TotalAllTime = s.TotalAllTime.Add(r.Amount)
		if period.Contains(r.Date) {
			s.TotalPeriod = s.TotalPeriod.Add(r.Amount)
		}

		month := date.NewRange(r.Date, date.Monthly).Identifier()
		if n := len(s.Monthly); n > 0 && s.Monthly[n-1].Month == month {
			s.Monthly[n-1].Amount = s.Monthly[n-1].Amount.Add(r.Amount)
		} else {
			s.Monthly = append(s.Monthly, MonthlyIncome{Month: month, Amount: r.Amount})
		}

		total, ok := s.ByHolding[r.StockName]
		if !ok {
			total = zero
		}
		s.ByHolding[r.StockName] = total.Add(r.Amount)
	}

	latest := slices.Clone(records)
	slices.SortStableFunc(latest, func(a, b DividendRecord) int { return b.Date.Compare(a.Date) })
	if recent < len(latest) {
		latest = latest[:max(recent, 0)]
	}
	s.Recent = latest
	return s
}
