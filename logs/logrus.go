package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to create
// a Logger backed by logrus
type LogrusLoggerProperties struct {
	// Level is the lowest level of the entries that are written
	Level logrus.Level

	// Output is where the entries are written. It defaults
	// to os.Stderr
	Output io.Writer
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

type logrusLogger struct {
	logger *logrus.Logger
}

// NewLogrus creates a new Logger that writes JSON entries
// using logrus
func NewLogrus(props LogrusLoggerProperties) Logger {
	output := props.Output
	if output == nil {
		output = os.Stderr
	}

	logger := logrus.New()
	logger.SetLevel(props.Level)
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &logrusLogger{logger: logger}
}

func (l *logrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := logrusFields{}
	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add(string(ContextKeyTraceID), traceID)
	}

	if loggable != nil {
		loggable.Log(fields)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}
