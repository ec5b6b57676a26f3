package cmd

import (
	"context"
	"flag"

	"github.com/etnz/smartportfolio/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the holdings table" }
func (*holdingsCmd) Usage() string {
	return `spf holdings

  Displays every holding with its shares, prices, cost, value, profit and return.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (*holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return failf("%v", err)
	}
	printMarkdown(renderer.HoldingsMarkdown(b.Holdings))
	return subcommands.ExitSuccess
}
