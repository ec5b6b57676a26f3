package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/google/subcommands"
)

type initCmd struct {
	file  string
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the backup file from a broker export" }
func (*initCmd) Usage() string {
	return `spf init [-f <export.csv>] [-force]

  Reads the holdings of a broker export and writes them as a new backup file.
  Without -f, a sample export is used. The asset class of each holding comes
  from a fixed table of known ETFs, unknown names are stocks.

  Only shares, average price and market price are kept: cost and value are
  recomputed with the fee schedule.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Broker export to read (comma separated). Uses a sample export by default.")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing backup file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	if exists(cfg.BackupFile) && !c.force {
		return failf("backup file %q already exists, use -force to overwrite it", cfg.BackupFile)
	}

	var r io.Reader = strings.NewReader(portfolio.SampleBrokerExport)
	source := "sample export"
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			return failf("opening broker export: %v", err)
		}
		defer file.Close()
		r, source = file, c.file
	}

	holdings, err := portfolio.ImportBrokerExport(r, portfolio.DefaultClasses)
	if err != nil {
		return failf("reading broker export: %v", err)
	}
	if len(holdings) == 0 {
		return failf("no holdings found in %s", source)
	}
	logger.Debug().Str("source", source).Int("holdings", len(holdings)).Msg("import-broker-export")

	if err := saveBackup(cfg.BackupFile, &portfolio.Backup{Holdings: holdings}); err != nil {
		return failf("saving backup: %v", err)
	}
	fmt.Fprintf(stdout, "Initialized %s with %d holdings from the %s.\n", cfg.BackupFile, len(holdings), source)
	return subcommands.ExitSuccess
}
