package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global slog logger with JSON output to stdout.
// LOG_LEVEL=debug enables debug records; everything else means info.
func Setup() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
