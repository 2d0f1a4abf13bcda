// Package logging provides the process-wide logrus logger.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// RequestIDKey is the context key under which the request id middleware stores the id.
const RequestIDKey contextKey = "request_id"

var log = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(jsonFormatter())
	l.SetLevel(logrus.InfoLevel)
	return l
}

func jsonFormatter() *logrus.JSONFormatter {
	return &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
	}
}

// Configure sets the log level ("debug", "info", ...) and format ("json" or "text").
// An unknown level falls back to info.
func Configure(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(jsonFormatter())
	}
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Logger returns the underlying logger. It satisfies gorm's logger.Writer.
func Logger() *logrus.Logger {
	return log
}

// WithContext returns a logger entry carrying the request id when one is present.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if ctx == nil {
		return entry
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

// RequestID extracts the request id stored in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
