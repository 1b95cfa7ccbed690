package logger

import "log/slog"

// Interface is the logger injected into repositories, use cases, and
// middleware. The *w variants take alternating key/value pairs, matching the
// slog convention.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	With(args ...any) Interface
}

type slogAdapter struct {
	l *slog.Logger
}

// NewLogger wraps the global slog logger in the injectable Interface.
func NewLogger() Interface {
	return &slogAdapter{l: Get()}
}

// NewLoggerWithSlog wraps a specific slog logger, used where a component
// carries its own pre-configured logger.
func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogAdapter{l: l}
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }

func (a *slogAdapter) Debugw(msg string, keysAndValues ...interface{}) {
	a.l.Debug(msg, keysAndValues...)
}

func (a *slogAdapter) Infow(msg string, keysAndValues ...interface{}) {
	a.l.Info(msg, keysAndValues...)
}

func (a *slogAdapter) Warnw(msg string, keysAndValues ...interface{}) {
	a.l.Warn(msg, keysAndValues...)
}

func (a *slogAdapter) Errorw(msg string, keysAndValues ...interface{}) {
	a.l.Error(msg, keysAndValues...)
}

func (a *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{l: a.l.With(args...)}
}
