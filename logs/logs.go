package logs

import "context"

type contextKey string

// ContextKeyTraceID is the key used to keep the trace id of an
// operation in a context.Context
const ContextKeyTraceID contextKey = "trace_id"

// Fields collects the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by types that know which fields
// describe them in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a Loggable made of arbitrary key value pairs
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger logs messages with the fields provided by a Loggable
// and the trace id found in the context, if any
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

// WithTraceID returns a copy of ctx holding the provided trace id
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id kept in the context, or 0 if
// there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}
