// Package logger builds the process-wide slog logger for the configured
// environment and optionally fans records out to a Telegram alert sink.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger returns the root logger: readable text at debug level for
// local runs, JSON at debug level for dev, JSON at info level duplicated
// to a log file for everything else.
func SetupLogger(env string, logPath string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(prodWriter(logPath), &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}

// prodWriter duplicates production logs into a file under logPath. When
// the file cannot be opened logging still works on stdout alone.
func prodWriter(logPath string) io.Writer {
	if logPath == "" {
		return os.Stdout
	}
	file, err := os.OpenFile(
		filepath.Join(logPath, "chatguru.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, file)
}
