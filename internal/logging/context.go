package logging

import "context"

type logDataKeyType struct{}

// LogDataKey is the context key under which per-request LogData travels.
var LogDataKey = logDataKeyType{}

// WithLogData attaches a LogData to the context.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, LogDataKey, logData)
}

// GetLogData returns the request's LogData, or nil when none is
// attached (humatest requests, background work).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(LogDataKey).(*LogData)
	return logData
}
