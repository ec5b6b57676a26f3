package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period: a day, a week starting on Monday, a month, a
// quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// Periods lists every period, shortest first.
var Periods = []Period{Daily, Weekly, Monthly, Quarterly, Yearly}

var periodNames = [...]struct{ adjective, noun string }{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

func (p Period) valid() bool { return p >= Daily && p <= Yearly }

func (p Period) String() string {
	if !p.valid() {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p].adjective
}

// Noun is the command line spelling: "quarter" for Quarterly.
func (p Period) Noun() string {
	if !p.valid() {
		return p.String()
	}
	return periodNames[p].noun
}

// ParsePeriod reads a period as typed after -p. Both "quarter" and
// "quarterly" are accepted, in any case.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Periods {
		if n := periodNames[p]; s == n.noun || s == n.adjective {
			return p, nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}
