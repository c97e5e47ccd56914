package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog builds the text logger used for local runs: debug level,
// source omitted, human-readable attrs.
func SetupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
