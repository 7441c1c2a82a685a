// Package obslog builds the engine's structured logger. The teacher's
// own CLI narrates with plain fmt.Println/emoji rather than a
// structured logger, but the ambient-stack rule (SPEC_FULL.md §2) still
// calls for the pack's real structured-logging library rather than a
// hand-rolled replacement; zerolog is a direct teacher dependency and
// is the logging choice used across the wider example pack.
package obslog

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New configures the package-global zerolog logger. level is one of
// zerolog's level names ("debug", "info", "warn", "error"); pretty
// selects the teacher's emoji-banner CLI feel over raw JSON lines.
func New(level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	log.Logger = logger
	return logger
}
