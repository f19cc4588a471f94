// Package logging provides structured logging for the asteroid simulation.
// It wraps zap to give every package the same call shape: a context that may
// carry a correlation ID, a message, and alternating key/value pairs.
package logging

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel selects the minimum level: DEBUG, INFO, WARN or ERROR.
const EnvLogLevel = "ASTEROIDS_LOG_LEVEL"

// Logger wraps a sugared zap logger with correlation ID support.
type Logger struct {
	sugar *zap.SugaredLogger
	base  *zap.Logger
}

// NewLogger creates a JSON logger writing to stderr. The level is read from
// ASTEROIDS_LOG_LEVEL and defaults to INFO.
func NewLogger() *Logger {
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(getLogLevelFromEnv()),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := config.Build()
	if err != nil {
		// fall back to a silent logger
		zl = zap.NewNop()
	}
	return NewFromZap(zl)
}

// NewFromZap wraps an existing zap logger
func NewFromZap(zl *zap.Logger) *Logger {
	return &Logger{sugar: zl.Sugar(), base: zl}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return NewFromZap(zap.NewNop())
}

// Zap exposes the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// With returns a child logger that always includes the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	child := l.sugar.With(args...)
	return &Logger{sugar: child, base: child.Desugar()}
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.base.Core().Enabled(level)
}

// LogWithContext logs a message, adding the context's correlation ID if any.
func (l *Logger) LogWithContext(ctx context.Context, level zapcore.Level, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	switch level {
	case zapcore.DebugLevel:
		l.sugar.Debugw(msg, args...)
	case zapcore.WarnLevel:
		l.sugar.Warnw(msg, args...)
	case zapcore.ErrorLevel:
		l.sugar.Errorw(msg, args...)
	default:
		l.sugar.Infow(msg, args...)
	}
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.InfoLevel, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.WarnLevel, msg, args...)
}

// Error logs an error message with context.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, zapcore.ErrorLevel, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.DebugLevel, msg, args...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.base.Sync()
}

// correlationIDKey is the context key for correlation IDs
type correlationIDKey struct{}

// WithCorrelationID adds a correlation ID to the context.
// If no correlation ID is provided, a new one will be generated.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID extracts the correlation ID from the context.
// Returns empty string if no correlation ID is present.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

func getLogLevelFromEnv() zapcore.Level {
	switch strings.ToUpper(os.Getenv(EnvLogLevel)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
