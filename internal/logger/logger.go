// ABOUTME: Process-wide zerolog logger shared by the CLI, store, and MCP server.
// ABOUTME: Writes to stderr by default so stdout stays free for command output and stdio MCP.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger. It discards everything until Init is called.
var Logger = zerolog.Nop()

// Init configures the global logger. Pretty output uses the console writer.
func Init(w io.Writer, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if w == nil {
		w = os.Stderr
	}
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}
	}

	Logger = zerolog.New(w).
		With().
		Timestamp().
		Str("service", "cocktail").
		Logger()
}

// SetLevel sets the global log level.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
