package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger writing to stderr. Console output is
// used so structured fields stay readable next to the CLI's own output. It
// ensures that the logger is initialized only once.
func Init() {
	once.Do(func() {
		level := zerolog.InfoLevel
		if os.Getenv("CAROUSEL_DEBUG") != "" {
			level = zerolog.DebugLevel
		}
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		defaultLogger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	})
}

// Get returns the initialized default logger, initializing it if needed.
func Get() zerolog.Logger {
	Init()
	return defaultLogger
}

// Info logs an informational message with alternating key/value fields.
func Info(msg string, args ...any) {
	l := Get()
	event := l.Info()
	applyFields(event, args)
	event.Msg(msg)
}

// Warn logs a warning message with alternating key/value fields.
func Warn(msg string, args ...any) {
	l := Get()
	event := l.Warn()
	applyFields(event, args)
	event.Msg(msg)
}

// Error logs an error message. The error may be nil.
func Error(msg string, err error, args ...any) {
	l := Get()
	event := l.Error().Err(err)
	applyFields(event, args)
	event.Msg(msg)
}

// Debug logs a debug message with alternating key/value fields.
func Debug(msg string, args ...any) {
	l := Get()
	event := l.Debug()
	applyFields(event, args)
	event.Msg(msg)
}

func applyFields(event *zerolog.Event, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		event.Interface(key, args[i+1])
	}
}
