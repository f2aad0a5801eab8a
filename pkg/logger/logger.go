// Package logger provides the global zerolog logger used across stash.
// The zero value is disabled, so importing the library never prints;
// applications opt in with Init or InitWithFile.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance. Its zero value discards everything.
	Log zerolog.Logger

	// fileWriter is the rotating file output, when enabled.
	fileWriter *lumberjack.Logger
)

// FileConfig holds configuration for rotating file output.
type FileConfig struct {
	// Path of the log file.
	Path string
	// MaxSizeMB is the max size in MB before rotation (default: 50)
	MaxSizeMB int
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int
}

func (c FileConfig) maxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

func (c FileConfig) maxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

func (c FileConfig) maxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Init initializes the global logger with console output to stderr.
func Init(debug bool) {
	Log = newLogger(consoleWriter(), debug)
}

// InitWithFile initializes the global logger with console output plus a
// rotating log file.
func InitWithFile(debug bool, cfg FileConfig) {
	fileWriter = &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.maxSizeMB(),
		MaxAge:     cfg.maxAgeDays(),
		MaxBackups: cfg.maxBackups(),
	}
	Log = newLogger(zerolog.MultiLevelWriter(consoleWriter(), fileWriter), debug)
}

// CloseFile closes the rotating file writer, if one was opened.
func CloseFile() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

func newLogger(output io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return Log.Debug()
}

// Info logs an info message
func Info() *zerolog.Event {
	return Log.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return Log.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return Log.Error()
}

// Fatal logs a fatal message and exits
func Fatal() *zerolog.Event {
	return Log.Fatal()
}

// WithField returns a logger with an additional field
func WithField(key, value string) zerolog.Logger {
	return Log.With().Str(key, value).Logger()
}
