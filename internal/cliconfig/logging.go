package cliconfig

import (
	"github.com/rs/zerolog"

	"github.com/bft-labs/cardstats/pkg/log"
)

// Logger returns the CLI logger: a zerolog console writer on stderr at the
// given level. An unknown level falls back to info.
func Logger(level string) zerolog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return log.NewConsoleLogger(nil, lvl)
}
