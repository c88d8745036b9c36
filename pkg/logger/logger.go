package logger

import (
	"io"
	"log/slog"
	"os"

	"yolimar/configs"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// NewLogger builds the structured logger for the API path. Local runs log
// debug to stdout and a workdir file; deployed environments log to the
// system path, info-level in prod.
func NewLogger(cfg *configs.Config) *slog.Logger {
	var logger *slog.Logger

	switch cfg.Env {
	case envDev:
		multiWriter, err := newMultiWriter("/var/log/yolimar.log")
		logger = slog.New(
			slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}))
		if err != nil {
			logger.Error("Error creating log file", "error", err)
		}
	case envProd:
		multiWriter, err := newMultiWriter("/var/log/yolimar.log")
		logger = slog.New(
			slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
		if err != nil {
			logger.Error("Error creating log file", "error", err)
		}
	default:
		multiWriter, err := newMultiWriter("logs/storefront.log")
		logger = slog.New(
			slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}))
		if err != nil {
			logger.Error("Error creating log file", "error", err)
		}
	}

	return logger
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMultiWriter(path string) (io.Writer, error) {
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0660)
	if err != nil {
		return os.Stdout, err
	}
	return io.MultiWriter(os.Stdout, logFile), nil
}
