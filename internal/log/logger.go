package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger provides centralized debug logging for the game and its front ends
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

var globalLogger *Logger

// init discards everything by default so log lines never land in the game
// transcript on stdout
func init() {
	Discard()
}

// Discard routes all logging to io.Discard
func Discard() {
	closeFile()
	globalLogger = &Logger{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetFileOutput configures the logger to write to the specified file
func SetFileOutput(filename string) error {
	logger, err := NewLogger(filename)
	if err != nil {
		return err
	}

	closeFile()
	globalLogger = logger
	return nil
}

// SetWriter sends debug output to w, mostly useful in tests
func SetWriter(w io.Writer) {
	closeFile()
	globalLogger = &Logger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

// NewLogger creates a new debug logger that writes to the specified file
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})

	return &Logger{
		logger: slog.New(handler),
		file:   file,
	}, nil
}

// Standard logging methods
func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}

// Close closes the debug logger file and falls back to discarding, so
// later calls never write to a closed file
func Close() {
	Discard()
}

func closeFile() {
	if globalLogger != nil && globalLogger.file != nil {
		globalLogger.file.Close()
		globalLogger.file = nil
	}
}
