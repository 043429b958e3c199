package logger

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Context keys set by the HTTP middleware. gin resolves string keys through c.Keys.
const (
	StaffIDKey   = "staff_id"
	RequestIDKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger tagged with the acting staff member and request id found in ctx
func WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{StaffIDKey: "unknown"}
	if staffID := stringValue(ctx, StaffIDKey); staffID != "" {
		fields[StaffIDKey] = staffID
	}
	if requestID := stringValue(ctx, RequestIDKey); requestID != "" {
		fields[RequestIDKey] = requestID
	}
	return &Logger{Entry: logrus.WithFields(fields)}
}

// WithShift tags entries with the shift and lifecycle event being processed
func (l *Logger) WithShift(shiftID uuid.UUID, event string) *Logger {
	return l.WithFields(map[string]interface{}{
		"shift_id": shiftID.String(),
		"event":    event,
	})
}

// stringValue accepts both plain strings and fmt.Stringer values such as uuid.UUID
func stringValue(ctx context.Context, key string) string {
	switch v := ctx.Value(key).(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return ""
}

// Setup configures the standard logrus logger with a JSON formatter at the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}
