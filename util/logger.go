package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger configures the process logger. Development gets a human readable
// console writer, every other environment gets JSON lines.
func InitLogger(env, level string) {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	logger = l.Level(lvl)
}

// Logger returns the process logger.
func Logger() *zerolog.Logger {
	return &logger
}

// GetLoggerForTest returns the current logger so tests can restore it.
func GetLoggerForTest() zerolog.Logger {
	return logger
}

// SetLoggerForTest replaces the process logger, typically with one writing to a buffer.
func SetLoggerForTest(l zerolog.Logger) {
	logger = l
}
