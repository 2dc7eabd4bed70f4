package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"simpledb/internal/config"

	"github.com/rs/zerolog"
)

func getSLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the process logger from config.Config. Output goes to stderr so
// it never mixes with command replies on stdout.
func New() *slog.Logger {
	cfg := config.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return NewWithWriter(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}, cfg.LogLevel)
}

func NewWithWriter(w io.Writer, level string) *slog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerologLogger := zerolog.New(w).Level(toZerologLevel(getSLogLevel(level))).With().Timestamp().Logger()
	return slog.New(newZerologHandler(&zerologLogger))
}
