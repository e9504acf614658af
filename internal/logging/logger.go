package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field represents a structured logging field as a key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates an error field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
// Implementations adapt a concrete backend (zerolog, the standard library
// log package) to this interface.
type Logger interface {
	// Debug logs a message at debug level with optional fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional fields.
	Info(msg string, fields ...Field)
	// Error logs a message at error level with the given error and fields.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted message at info level (log.Printf compatible).
	Printf(format string, v ...any)
	// Println logs its arguments at info level (log.Println compatible).
	Println(v ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a zerolog-backed Logger writing to w, tagged with the
// given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates a zerolog-backed Logger writing human-readable
// output to stderr.
func NewDefaultLogger() *ZerologAdapter {
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	return &ZerologAdapter{logger: zerolog.New(console).With().Timestamp().Logger()}
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.logger.Info(), fields).Msg(msg)
}

// Error logs a message at error level with the given error.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, v ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs its arguments at info level.
func (a *ZerologAdapter) Println(v ...any) {
	a.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// applyFields attaches the structured fields to a zerolog event.
func (a *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// StdLoggerAdapter adapts a standard library *log.Logger to the Logger
// interface. Fields are appended to the message as key=value pairs.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps an existing standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Debug logs a message at debug level.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Println(append([]any{"[DEBUG]", msg}, fieldArgs(fields)...)...)
}

// Info logs a message at info level.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Println(append([]any{"[INFO]", msg}, fieldArgs(fields)...)...)
}

// Error logs a message at error level with the given error.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	args := []any{"[ERROR]", msg}
	if err != nil {
		args = append(args, err)
	}
	a.logger.Println(append(args, fieldArgs(fields)...)...)
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, v ...any) {
	a.logger.Printf(format, v...)
}

// Println logs its arguments.
func (a *StdLoggerAdapter) Println(v ...any) {
	a.logger.Println(v...)
}

// fieldArgs flattens fields into key=value arguments for the std logger.
func fieldArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	return args
}
