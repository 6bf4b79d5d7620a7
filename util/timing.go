package util

import (
	"log/slog"
	"time"
)

// LogDuration logs entry for the named operation and returns a function that
// logs its elapsed time when invoked, typically via defer.
func LogDuration(operation string, args ...any) func(args ...any) {
	var (
		then    = time.Now()
		allArgs = append(args, slog.String("op", operation))
	)

	slog.Info("LogDuration", append(allArgs, slog.String("state", "enter"))...)

	return func(args ...any) {
		exitArgs := append(allArgs, slog.Duration("elapsed", time.Since(then)), slog.String("state", "exit"))
		exitArgs = append(exitArgs, args...)

		slog.Info("LogDuration", exitArgs...)
	}
}

// LogError logs an error with its message attached as a structured attribute.
func LogError(msg string, err error, args ...any) {
	allArgs := append([]any{slog.String("err", err.Error())}, args...)
	slog.Error(msg, allArgs...)
}
