package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the portfolio with a backup file" }
func (*importCmd) Usage() string {
	return `spf import -f <file>

  Reads a backup document and replaces the whole portfolio with it. A document
  without any holding or dividend is refused.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Backup document to import.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usagef("-f is required")
	}
	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}

	file, err := os.Open(c.file)
	if err != nil {
		return failf("opening %q: %v", c.file, err)
	}
	defer file.Close()
	b, err := portfolio.DecodeBackup(file)
	if err != nil {
		return failf("%v", err)
	}
	if b.IsEmpty() {
		return failf("importing %q: %v", c.file, portfolio.ErrEmptyBackup)
	}

	if err := saveBackup(cfg.BackupFile, b); err != nil {
		return failf("saving backup: %v", err)
	}
	fmt.Fprintf(stdout, "Imported %d holdings and %d dividends into %s.\n", len(b.Holdings), len(b.Dividends), cfg.BackupFile)
	return subcommands.ExitSuccess
}
