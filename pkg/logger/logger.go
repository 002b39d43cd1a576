package logger

import (
	"log/slog"
	"os"
)

// Log defaults to a text handler so library code can log before Init.
var Log = slog.New(slog.NewTextHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
