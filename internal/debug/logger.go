package debug

import (
	"io"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(io.Discard)

// SetOutput sets the debug log destination. The UI owns the terminal,
// so debug output goes to a file or is discarded.
func SetOutput(w io.Writer) {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger()
	enabled = w != io.Discard
}

var enabled bool

// Enabled reports whether debug logging is active.
func Enabled() bool { return enabled }

// Log returns the debug event builder.
func Log() *zerolog.Event { return logger.Debug() }

// Error returns the error event builder.
func Error() *zerolog.Event { return logger.Error() }
