// Package obslog builds the structured logger used at the cmd/parahpf
// boundary only; the core solver packages stay logging-free (spec §9's
// "global state" note - every Solve call is pure). Grounded on
// Hola-to-network_logistics_problem's pkg/logger, adapted to return a
// *slog.Logger instead of holding one in a package-level global.
package obslog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/config"
)

// New builds a *slog.Logger from cfg: stdout/stderr/file output, text or
// JSON formatting, and lumberjack-backed rotation when writing to a file.
func New(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	writer := resolveWriter(cfg)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler)
}

func resolveWriter(cfg config.LogConfig) io.Writer {
	switch cfg.Output {
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/parahpf.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return os.Stdout
		}
		return &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
