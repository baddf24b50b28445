package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var logger = defaultLogger()

// defaultLogger is used until Init runs. It stays at info so library users
// do not see debug lines they never asked for.
func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

const (
	defaultLogLevel = InfoLevel
	timeFormat      = "2006-01-02 15:04:05"
	FileName        = "patterns.log"
	DebugLevel      = "debug"
	InfoLevel       = "info"
	WarnLevel       = "warn"
	ErrorLevel      = "error"
)

// Init sets the global level and rebuilds the logger. Console output goes to
// stderr so that demo output on stdout stays clean. An empty path disables the
// file writer.
func Init(level, path string) error {
	if level == "" {
		level = defaultLogLevel
	}
	switch level {
	case DebugLevel:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case InfoLevel:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case WarnLevel:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case ErrorLevel:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}
	if path == "" {
		logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
		return nil
	}
	logFile := GetFullLogPath(path, FileName)
	fileWriter, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file failed: %w", err)
	}
	multi := zerolog.MultiLevelWriter(consoleWriter, fileWriter)
	logger = zerolog.New(multi).With().Timestamp().Logger()
	return nil
}

// SetOutput replaces the logger with a plain JSON logger writing to w.
func SetOutput(w io.Writer) {
	logger = zerolog.New(w).With().Timestamp().Logger()
}

func Logger() *zerolog.Logger {
	return &logger
}

// GetFullLogPath joins the log directory and file name.
func GetFullLogPath(path, fileName string) string {
	return filepath.Join(path, fileName)
}
