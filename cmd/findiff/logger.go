package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/efronlicht/enve"
)

// newLogger builds the run logger: human console output on stderr, level
// from the -level flag with FINDIFF_LOG_LEVEL as the fallback, and a
// per-run id so piped sessions can be correlated. The derivation engine
// itself never logs; verbosity only changes what the CLI narrates.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if level == "" || err != nil {
		lvl = enve.Or(zerolog.ParseLevel, "FINDIFF_LOG_LEVEL", zerolog.WarnLevel)
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
