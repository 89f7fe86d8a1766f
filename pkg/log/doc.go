// Package log provides the structured logging port used by cardstats.
//
// Library packages log through the [Logger] interface so they do not depend
// on a concrete logging library. A zerolog adapter is provided for the CLI
// and a no-op logger for tests:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("sample drawn", log.Int("size", 30), log.Float64("mean", 19.4))
//
//	quiet := log.NewNoopLogger()
package log
