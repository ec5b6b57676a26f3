// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// Commands lists the portfolio subcommands, in help order.
var Commands = []subcommands.Command{
	&initCmd{},
	&summaryCmd{},
	&holdingsCmd{},
	&editCmd{},
	&dividendCmd{},
	&dividendsCmd{},
	&exportCmd{},
	&importCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// stdout receives the command reports.
var stdout io.Writer = os.Stdout

// failf reports an error on stderr and returns the failure status.
func failf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error "+format+"\n", args...)
	return subcommands.ExitFailure
}

// usagef reports a misuse on stderr and returns the usage error status.
func usagef(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
