package logger

import (
	"log/slog"
	"os"
)

var ProgramLevel = new(slog.LevelVar)

// SetupLogger initialiserer loggeren med JSON-format. Debug senker nivået.
func SetupLogger(debug bool) {
	ProgramLevel.Set(slog.LevelInfo)
	if debug {
		ProgramLevel.Set(slog.LevelDebug)
	}

	// Rapporten går til stdout, diagnostikk til stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     ProgramLevel,
		AddSource: false,
	}))
	slog.SetDefault(logger)
}
