// Package observe decorates callable wrappers with lightweight
// instrumentation: per-call time spans and logged fallbacks. The core
// wrappers stay silent and allocation-free; anything observable lives here.
package observe

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/call_able_go/callable"
)

// TimeSpan is the interval a call occupied.
type TimeSpan = timespan.TimeSpan

// Timed0 wraps w so every call also reports the span it occupied.
func Timed0[R any](w callable.Func0[R]) func() (R, TimeSpan) {
	return func() (R, TimeSpan) {
		from := time.Now()
		r := w.Call()
		return r, timespan.BetweenTimes(from, time.Now())
	}
}

// Timed1 is the unary Timed0.
func Timed1[A1, R any](w callable.Func1[A1, R]) func(A1) (R, TimeSpan) {
	return func(a1 A1) (R, TimeSpan) {
		from := time.Now()
		r := w.Call(a1)
		return r, timespan.BetweenTimes(from, time.Now())
	}
}

// Timed2 is the binary Timed0.
func Timed2[A1, A2, R any](w callable.Func2[A1, A2, R]) func(A1, A2) (R, TimeSpan) {
	return func(a1 A1, a2 A2) (R, TimeSpan) {
		from := time.Now()
		r := w.Call(a1, a2)
		return r, timespan.BetweenTimes(from, time.Now())
	}
}

// Logged0 routes calls through CallIf: when w is unbound, the fallback value
// is substituted and a warning is logged instead of a panic or a silent zero.
func Logged0[R any](logger *zap.Logger, name string, w callable.Func0[R], fallback R) func() R {
	return func() R {
		if v, ok := w.CallIf().Unwrap(); ok {
			return v
		}
		logger.Warn("unbound callable, substituting fallback", zap.String("callable", name))
		return fallback
	}
}

// Logged1 is the unary Logged0.
func Logged1[A1, R any](logger *zap.Logger, name string, w callable.Func1[A1, R], fallback R) func(A1) R {
	return func(a1 A1) R {
		if v, ok := w.CallIf(a1).Unwrap(); ok {
			return v
		}
		logger.Warn("unbound callable, substituting fallback", zap.String("callable", name))
		return fallback
	}
}

// Logged2 is the binary Logged0.
func Logged2[A1, A2, R any](logger *zap.Logger, name string, w callable.Func2[A1, A2, R], fallback R) func(A1, A2) R {
	return func(a1 A1, a2 A2) R {
		if v, ok := w.CallIf(a1, a2).Unwrap(); ok {
			return v
		}
		logger.Warn("unbound callable, substituting fallback", zap.String("callable", name))
		return fallback
	}
}
