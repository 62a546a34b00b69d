package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New writes to stderr so that stdout stays free for protocol output.
func New(style, level string) zerolog.Logger {
	return newLogger(os.Stderr, style, level)
}

func newLogger(w io.Writer, style, level string) zerolog.Logger {
	if strings.EqualFold(style, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
