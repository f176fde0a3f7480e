package logger

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger and keeps the printf-style helpers used across the service.
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// GlobalLogger is a no-op until InitLogger runs, so packages can log from tests.
var GlobalLogger = New(zap.NewNop())

var once sync.Once

// New wraps an existing zap logger.
func New(l *zap.Logger) *Logger {
	return &Logger{base: l, sugar: l.Sugar()}
}

// NewLogger builds a zap logger for the given environment.
// production uses JSON output, everything else a console encoder.
func NewLogger(env, level string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "production", "prod":
		cfg = zap.NewProductionConfig()
	case "", "development", "dev", "local", "test":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", env)
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return New(l), nil
}

// InitLogger replaces the global logger once per process.
func InitLogger(env, level string) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = NewLogger(env, level)
		if err != nil {
			return
		}
		GlobalLogger = l
	})
	return err
}

// Zap exposes the underlying structured logger.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return New(l.base.With(fields...))
}

func (l *Logger) Println(v ...interface{}) {
	l.sugar.Info(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.sugar.Error(v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *Logger) Debug(v ...interface{}) {
	l.sugar.Debug(v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Info logs a structured message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.base.Info(msg, fields...)
}

// Warn logs a structured message.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.base.Warn(msg, fields...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
