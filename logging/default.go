package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"strings"
	"sync/atomic"
)

// DefaultLogger writes leveled lines through the standard log package.
// Debug/Info go to the info writer, Warn/Error to the error writer.
type DefaultLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	level       atomic.Int32
	fields      Fields
}

// NewDefaultLogger creates a logger writing to stdout and stderr at InfoLevel.
func NewDefaultLogger() *DefaultLogger {
	return NewWriterLogger(os.Stdout, os.Stderr, log.LstdFlags)
}

// NewWriterLogger creates a logger writing to the given writers with the
// given log flags.
func NewWriterLogger(info, errs io.Writer, flags int) *DefaultLogger {
	d := &DefaultLogger{
		infoLogger:  log.New(info, "", flags),
		errorLogger: log.New(errs, "", flags),
		fields:      make(Fields),
	}
	d.level.Store(int32(InfoLevel))

	return d
}

func (d *DefaultLogger) formatMessage(level Level, err error, msg string, fields ...Fields) string {
	allFields := make(Fields)
	maps.Copy(allFields, d.fields)
	for _, f := range fields {
		maps.Copy(allFields, f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)

	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}

	// Sorted keys keep lines stable for grepping and tests.
	for _, k := range slices.Sorted(maps.Keys(allFields)) {
		fmt.Fprintf(&b, " %s=%v", k, allFields[k])
	}

	return b.String()
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	if level < Level(d.level.Load()) {
		return
	}

	line := d.formatMessage(level, err, msg, fields...)

	switch level {
	case DebugLevel, InfoLevel:
		d.infoLogger.Println(line)
	default:
		d.errorLogger.Println(line)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	newFields := make(Fields)
	maps.Copy(newFields, d.fields)
	maps.Copy(newFields, fields)

	child := &DefaultLogger{
		infoLogger:  d.infoLogger,
		errorLogger: d.errorLogger,
		fields:      newFields,
	}
	child.level.Store(d.level.Load())

	return child
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := FieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

// SetLevel may be called while other goroutines log.
func (d *DefaultLogger) SetLevel(level Level) {
	d.level.Store(int32(level))
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)              {}
func (NoOpLogger) Info(string, ...Fields)               {}
func (NoOpLogger) Warn(string, ...Fields)               {}
func (NoOpLogger) Error(error, string, ...Fields)       {}
func (n NoOpLogger) WithFields(Fields) Logger           { return n }
func (n NoOpLogger) WithContext(context.Context) Logger { return n }
func (NoOpLogger) SetLevel(Level)                       {}
