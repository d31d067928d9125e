package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/Erik-Martinez/jsapy/internal/config"
)

// Setup installs the default slog logger according to cfg.
//
// Without a log file, records are written to standard error as text.
// With logging.file set, they are written there as JSON with size-based
// rotation. The returned close function releases the log file, if any.
func Setup(cfg config.LoggingConfig) (func() error, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		handler slog.Handler
		closer  io.Closer
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		handler = slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: level})
		closer = rotator
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))

	if closer == nil {
		return func() error { return nil }, nil
	}
	return closer.Close, nil
}

// parseLevel maps a config level name to a slog.Level.
// An empty name selects info.
func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", name)
	}
}
