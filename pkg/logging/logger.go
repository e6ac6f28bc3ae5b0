// Package logging configures the process-wide zerolog logger.
//
// All diagnostic output goes to stderr: stdout carries the MCP transport
// and must stay clean of anything that is not protocol traffic.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Setup builds the root logger writing human-readable lines to stderr.
// Every line carries a run id so interleaved logs from multiple server
// instances can be told apart. Unknown level strings fall back to info.
func Setup(level string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(level))

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(writer).With().
		Timestamp().
		Str("run_id", uuid.NewString()[:8]).
		Logger()
}

// Component returns a child logger tagged with a component name.
func Component(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
