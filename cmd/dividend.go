package cmd

import (
	"context"
	"flag"
	"fmt"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/etnz/smartportfolio/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type dividendCmd struct {
	name   string
	amount string
	date   string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend received" }
func (*dividendCmd) Usage() string {
	return `spf dividend -name <holding> -amount <amount> [-d <date>]

  Appends a dividend to the history. The date defaults to today and accepts
  ISO dates (2025-01-15) or offsets such as -1d, -2w or -1m.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the holding that paid the dividend.")
	f.StringVar(&c.amount, "amount", "", "Amount received.")
	f.StringVar(&c.date, "d", "0d", "Date the dividend was received.")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == "" {
		return usagef("-name and -amount are required")
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil || !amount.IsPositive() {
		return usagef("invalid -amount %q, want a positive number", c.amount)
	}
	on, err := date.ParseInput(c.date)
	if err != nil {
		return usagef("invalid -d: %v", err)
	}

	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return failf("%v", err)
	}
	if _, ok := b.Holding(c.name); !ok {
		logger.Warn().Str("holding", c.name).Msg("dividend-for-unknown-holding")
	}

	rec := portfolio.NewDividend(on, c.name, portfolio.TWD(amount))
	if err := saveBackup(cfg.BackupFile, b.AddDividend(rec)); err != nil {
		return failf("saving backup: %v", err)
	}
	logger.Debug().Str("id", rec.ID).Str("holding", rec.StockName).Msg("add-dividend")
	fmt.Fprintf(stdout, "Recorded a dividend of %s from %s on %s.\n", rec.Amount, rec.StockName, rec.Date)
	return subcommands.ExitSuccess
}
