package cmd

import (
	"context"
	"flag"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/etnz/smartportfolio/date"
	"github.com/etnz/smartportfolio/renderer"
	"github.com/google/subcommands"
)

type dividendsCmd struct {
	period string
	date   string
	recent int
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display the dividend income" }
func (*dividendsCmd) Usage() string {
	return `spf dividends [-p <period>] [-d <date>] [-recent <n>]

  Displays the dividends received during the period containing the date, all
  time, per month and per holding, and the most recent records.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "year", "Period to report (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", "0d", "A date in the period to report (defaults to today).")
	f.IntVar(&c.recent, "recent", 5, "Number of recent dividends to list.")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return usagef("invalid -p: %v", err)
	}
	on := renderer.Today()
	if c.date != "0d" {
		if on, err = date.ParseInput(c.date); err != nil {
			return usagef("invalid -d: %v", err)
		}
	}

	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return failf("%v", err)
	}
	stats := portfolio.NewDividendStats(b.Dividends, date.NewRange(on, period), c.recent)
	printMarkdown(renderer.DividendsMarkdown(stats))
	return subcommands.ExitSuccess
}
