package logging

import (
	"github.com/rs/zerolog"
	sdklog "go.temporal.io/sdk/log"
)

// TemporalLogger adapts a zerolog logger to the Temporal SDK's log.Logger
// interface so SDK client and worker logs flow through the same sink as the
// rest of the service.
type TemporalLogger struct {
	logger zerolog.Logger
}

var _ sdklog.Logger = (*TemporalLogger)(nil)

// NewTemporalLogger wraps a zerolog logger for the Temporal SDK.
func NewTemporalLogger(logger zerolog.Logger) *TemporalLogger {
	return &TemporalLogger{logger: logger}
}

func (l *TemporalLogger) Debug(msg string, keyvals ...interface{}) {
	l.emit(l.logger.Debug(), msg, keyvals)
}

func (l *TemporalLogger) Info(msg string, keyvals ...interface{}) {
	l.emit(l.logger.Info(), msg, keyvals)
}

func (l *TemporalLogger) Warn(msg string, keyvals ...interface{}) {
	l.emit(l.logger.Warn(), msg, keyvals)
}

func (l *TemporalLogger) Error(msg string, keyvals ...interface{}) {
	l.emit(l.logger.Error(), msg, keyvals)
}

// emit attaches the SDK's alternating key/value pairs as event fields. A
// trailing unpaired value is logged under a generic key rather than dropped.
func (l *TemporalLogger) emit(e *zerolog.Event, msg string, keyvals []interface{}) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			e = e.Interface("field", keyvals[i+1])
			continue
		}
		e = e.Interface(key, keyvals[i+1])
	}
	if len(keyvals)%2 != 0 {
		e = e.Interface("value", keyvals[len(keyvals)-1])
	}
	e.Msg(msg)
}
