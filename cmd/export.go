package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a copy of the backup file" }
func (*exportCmd) Usage() string {
	return `spf export [-o <file>]

  Writes the portfolio as a backup document, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "-", "Output file, '-' for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return failf("%v", err)
	}

	if c.output == "-" {
		if err := portfolio.EncodeBackup(stdout, b); err != nil {
			return failf("exporting backup: %v", err)
		}
		return subcommands.ExitSuccess
	}
	if err := writeFileAtomic(c.output, func(w io.Writer) error { return portfolio.EncodeBackup(w, b) }); err != nil {
		return failf("exporting backup: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d holdings and %d dividends to %s.\n", len(b.Holdings), len(b.Dividends), c.output)
	return subcommands.ExitSuccess
}
