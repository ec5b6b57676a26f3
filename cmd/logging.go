package cmd

import (
	"os"

	"github.com/rs/zerolog"
)

// logger reports what commands do on stderr. Warnings only, unless verbose.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	Level(zerolog.WarnLevel).
	With().
	Timestamp().
	Logger()

func setVerbose(verbose bool) {
	if verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}
}
