// Package log is the structured logger used across modemap. It wraps
// logrus with field helpers and a package-level default logger.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"modemap/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  atomic.Pointer[Logger]
)

func init() {
	logger.Store(NewLogger())
}

// Field is a single key/value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logging is the logging surface components depend on
type Logging interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
}

// Logger writes leveled entries through logrus
type Logger struct {
	entry *logrus.Entry
	level logrus.Level
}

type options struct {
	out   io.Writer
	json  bool
	level logrus.Level
}

// Option configures a Logger
type Option func(*options)

// WithOutput directs log output to w
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithJSON switches to JSON formatted entries
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithLevel sets the minimum level by logrus name ("debug", "warn"...).
// Unknown names leave the level unchanged.
func WithLevel(name string) Option {
	return func(o *options) {
		if level, err := logrus.ParseLevel(name); err == nil {
			o.level = level
		}
	}
}

// WithFile appends log output to the file at path, falling back to
// stderr when it cannot be opened.
func WithFile(path string) Option {
	return func(o *options) {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s, using stderr: %v\n", path, err)
			o.out = os.Stderr
			return
		}
		o.out = file
	}
}

// WithDestination resolves "stdout", "stderr" or a file path
func WithDestination(dest string) Option {
	switch strings.ToLower(dest) {
	case "", "stderr":
		return WithOutput(os.Stderr)
	case "stdout":
		return WithOutput(os.Stdout)
	default:
		return WithFile(dest)
	}
}

// NewLogger creates a logger writing text entries to stderr at info level
// unless options say otherwise.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stderr, level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	base.SetOutput(o.out)
	// Filtering happens in Logger so SetDebug can override per call.
	base.SetLevel(logrus.TraceLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg:  "message",
				logrus.FieldKeyTime: "timestamp",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	return &Logger{entry: logrus.NewEntry(base), level: o.level}
}

// With returns a logger that attaches fields to every entry
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), level: l.level}
}

func (l *Logger) enabled(level logrus.Level) bool {
	if level == logrus.DebugLevel && isDebug.Load() {
		return true
	}
	return level <= l.level
}

func (l *Logger) log(level logrus.Level, msg string) {
	if l.enabled(level) {
		l.entry.Log(level, msg)
	}
}

func (l *Logger) Debug(msg string) { l.log(logrus.DebugLevel, msg) }

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.enabled(logrus.DebugLevel) {
		l.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Info(msg string) { l.log(logrus.InfoLevel, msg) }

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) { l.log(logrus.WarnLevel, msg) }

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) { l.log(logrus.ErrorLevel, msg) }

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

// Configure replaces the package-level logger
func Configure(opts ...Option) {
	logger.Store(NewLogger(opts...))
}

// Default returns the package-level logger
func Default() *Logger {
	return logger.Load()
}

// SetDebug forces debug entries on for every logger
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// LogWithFields returns the default logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return Default().With(fields...)
}

// LogWithError attaches the error and whatever context its type carries
func LogWithError(err error) *Logger {
	fields := []Field{F("error", err.Error()), F("error_kind", errors.KindOf(err).String())}

	var fileErr *errors.FileError
	var configErr *errors.ConfigError
	var lookupErr *errors.LookupError
	switch {
	case errors.As(err, &fileErr):
		fields = append(fields, F("path", fileErr.Path()))
	case errors.As(err, &configErr):
		fields = append(fields, F("param", configErr.Param()))
	case errors.As(err, &lookupErr):
		fields = append(fields, F("key", lookupErr.Key()))
	}
	return LogWithFields(fields...)
}

// LogError logs err at error level with msg
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func Debug(msg string) { Default().Debug(msg) }

func Debugf(format string, args ...interface{}) { Default().Debugf(format, args...) }

func Info(msg string) { Default().Info(msg) }

func Infof(format string, args ...interface{}) { Default().Infof(format, args...) }

func Warn(msg string) { Default().Warn(msg) }

func Warnf(format string, args ...interface{}) { Default().Warnf(format, args...) }

func Error(msg string) { Default().Error(msg) }

func Errorf(format string, args ...interface{}) { Default().Errorf(format, args...) }
