package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	name  string
	field string
	value string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change one figure of a holding and recompute the others" }
func (*editCmd) Usage() string {
	fields := make([]string, 0, len(portfolio.Fields))
	for _, f := range portfolio.Fields {
		fields = append(fields, f.String())
	}
	return `spf edit -name <holding> -field <field> -value <number>

  Sets one field of a holding and recomputes cost, value, profit and return.
  Fields are: ` + strings.Join(fields, ", ") + `.

  Editing cost or value solves the average price or the market price backward.
  Only prices are saved, see 'spf topic backup'.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the holding to edit.")
	f.StringVar(&c.field, "field", "", "Field to set.")
	f.StringVar(&c.value, "value", "", "New value of the field.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.field == "" || c.value == "" {
		return usagef("-name, -field and -value are required")
	}
	field, err := portfolio.ParseField(c.field)
	if err != nil {
		return usagef("%v", err)
	}
	value, err := decimal.NewFromString(c.value)
	if err != nil {
		return usagef("invalid -value %q: %v", c.value, err)
	}

	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return failf("%v", err)
	}
	edited, err := b.Edit(c.name, field, value)
	if errors.Is(err, portfolio.ErrUnknownHolding) {
		return failf("%v, holdings are: %s", err, strings.Join(b.HoldingNames(), ", "))
	}
	if err != nil {
		return failf("editing holding: %v", err)
	}
	if err := saveBackup(cfg.BackupFile, edited); err != nil {
		return failf("saving backup: %v", err)
	}

	h, _ := edited.Holding(c.name)
	logger.Debug().Str("holding", h.Name).Stringer("field", field).Str("value", c.value).Msg("edit-holding")
	fmt.Fprintf(stdout, "%s: %s shares, cost %s, value %s, profit %s (%s)\n",
		h.Name, h.Shares, h.Cost, h.CurrentValue, h.TotalProfitLoss.SignedString(), h.ReturnRate.SignedString())
	return subcommands.ExitSuccess
}
