package cmd

import (
	"context"
	"flag"

	"github.com/etnz/smartportfolio/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio dashboard and the rebalance advice" }
func (*summaryCmd) Usage() string {
	return `spf summary

  Displays total assets, portfolio value, cost, profit and return, the current
  allocation against the target ratios, the implied cash and the rebalance
  recommendation.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return failf("%v", err)
	}
	printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(b.Holdings, cfg.Target)))
	return subcommands.ExitSuccess
}
