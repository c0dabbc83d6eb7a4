package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options control how the global logger is set up.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is "console" or "json".
	Format string
	// NoColor disables ANSI colors in console output.
	NoColor bool
}

// InitDefault sets up a console logger at info level. Used before flags are
// parsed so early failures are still readable.
func InitDefault() {
	Init(nil)
}

// Init configures the global zerolog logger. A nil opts falls back to the
// defaults (info, console, colored).
func Init(opts *Options) {
	if opts == nil {
		opts = &Options{}
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level)); err == nil {
			level = parsed
		}
	}

	var logger zerolog.Logger
	if strings.EqualFold(opts.Format, "json") {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    opts.NoColor,
			TimeFormat: time.Kitchen,
		})
	}

	log.Logger = logger.Level(level).With().Timestamp().Logger()
}
