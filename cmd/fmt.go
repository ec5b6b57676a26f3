package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the backup file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `spf fmt

  Reads the backup file and writes it back in canonical form: version line,
  headers, quoted names. Rows that cannot be read are dropped.

Usage Examples:
# Formats the default backup file.
$ spf fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config()
	if err != nil {
		return failf("in configuration: %v", err)
	}
	if !exists(cfg.BackupFile) {
		fmt.Fprintf(os.Stderr, "Warning: no backup file %q to format.\n", cfg.BackupFile)
		return subcommands.ExitSuccess
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return failf("%v", err)
	}
	if err := saveBackup(cfg.BackupFile, b); err != nil {
		return failf("saving backup: %v", err)
	}
	fmt.Fprintf(os.Stderr, "✅ Formatted %s.\n", cfg.BackupFile)
	return subcommands.ExitSuccess
}
