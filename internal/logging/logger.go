package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog logger writing to stdout. LOG_LEVEL (debug,
// info, warn, error) controls verbosity; anything unparsable means info.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

// StdoutHandler is the plain JSON console handler, exposed so it can be
// recombined with the database handler once a connection exists.
func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
}

func levelFromEnv() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return l
}
