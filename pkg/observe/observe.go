// Package observe provides guard.Observer implementations that log guard
// outcomes with log/slog and fan observations out to several observers.
package observe

import (
	"context"
	"log/slog"

	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/guard"
	"github.com/vnykmshr/goguard/pkg/message"
)

// Logger logs guard failures, and optionally passes, to a slog.Logger.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
	passes bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the level failures are logged at. The default is Warn.
func WithLevel(level slog.Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// WithPasses logs passing evaluations at Debug as well.
func WithPasses() Option {
	return func(l *Logger) {
		l.passes = true
	}
}

// NewLogger creates a Logger writing to logger, or to slog.Default() when
// logger is nil.
func NewLogger(logger *slog.Logger, opts ...Option) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Logger{logger: logger, level: slog.LevelWarn}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ObserveGuard logs one evaluation.
func (l *Logger) ObserveGuard(kind message.Kind, item string, err error) {
	ctx := context.Background()

	if err == nil {
		if l.passes {
			l.logger.LogAttrs(ctx, slog.LevelDebug, "guard passed",
				slog.String("guard", string(kind)),
				slog.String("item", item),
			)
		}
		return
	}

	l.logger.LogAttrs(ctx, l.level, "guard failed",
		slog.String("guard", string(kind)),
		slog.String("item", item),
		slog.String("reason", gerrors.Reason(err)),
		slog.Any("error", err),
	)
}

type multi []guard.Observer

// Multi returns an Observer that notifies each non-nil observer in order.
func Multi(observers ...guard.Observer) guard.Observer {
	m := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) ObserveGuard(kind message.Kind, item string, err error) {
	for _, o := range m {
		o.ObserveGuard(kind, item, err)
	}
}
