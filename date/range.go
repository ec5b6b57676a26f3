package date

import "fmt"

// Range is a span of days, both ends included.
type Range struct{ From, To Date }

// NewRange returns the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains reports whether d falls within r.
func (r Range) Contains(d Date) bool { return r.From.Compare(d) <= 0 && d.Compare(r.To) <= 0 }

// period returns the calendar period r covers exactly, shortest first, so a
// single day is Daily.
func (r Range) period() (Period, bool) {
	for _, p := range Periods {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// Identifier labels r in reports: "2025-09-08", "2025-W37", "2025-09",
// "2025-Q3" or "2025" for calendar periods, "2025-09-02_2025-09-10" otherwise.
// Weeks use the ISO year.
func (r Range) Identifier() string {
	p, ok := r.period()
	if !ok {
		return r.From.String() + "_" + r.To.String()
	}
	switch p {
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		return r.From.String()
	}
}
