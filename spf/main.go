// Command spf tracks a stock and bond portfolio kept in a single backup file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/smartportfolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("spf")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "portfolio")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
