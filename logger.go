package vterm

import "go.uber.org/zap"

// LoggerProvider receives diagnostic events the core chooses not to surface
// as observer callbacks: unrecognized modes, unrecognized SGR attributes,
// and scrollback eviction. Malformed byte sequences are not logged; the
// parser drops them silently. Defaults to a no-op so
// embedding an observer is optional.
type LoggerProvider interface {
	// Warn logs a recoverable anomaly. fields are alternating key/value
	// pairs, mirroring zap's SugaredLogger calling convention.
	Warn(msg string, fields ...any)
}

// NoopLogger discards all log events.
type NoopLogger struct{}

func (NoopLogger) Warn(msg string, fields ...any) {}

var _ LoggerProvider = NoopLogger{}

// ZapLogger adapts a *zap.Logger to LoggerProvider.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger. Pass zap.NewProduction() or
// zap.NewDevelopment() for a ready-made one.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar()}
}

func (z *ZapLogger) Warn(msg string, fields ...any) {
	z.sugar.Warnw(msg, fields...)
}

var _ LoggerProvider = (*ZapLogger)(nil)

// WithLogger sets the diagnostic log sink. Defaults to NoopLogger.
func WithLogger(l LoggerProvider) Option {
	return func(t *Terminal) {
		t.logger = l
	}
}
