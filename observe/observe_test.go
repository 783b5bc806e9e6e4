package observe_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/call_able_go/callable"
	"github.com/on-the-ground/call_able_go/observe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimedReportsSpan(t *testing.T) {
	fn := func(d time.Duration) int {
		time.Sleep(d)
		return 1
	}
	timed := observe.Timed1(callable.BindRef1(&fn))

	v, span := timed(2 * time.Millisecond)
	assert.Equal(t, 1, v)
	assert.GreaterOrEqual(t, span.Duration(), 2*time.Millisecond)
	assert.False(t, span.Start().After(span.End()))
}

func TestTimedArities(t *testing.T) {
	w0 := callable.BindFunc0(func() string { return "ok" })
	v0, span0 := observe.Timed0(w0)()
	assert.Equal(t, "ok", v0)
	assert.GreaterOrEqual(t, span0.Duration(), time.Duration(0))

	w2 := callable.BindFunc2(func(a, b int) int { return a + b })
	v2, _ := observe.Timed2(w2)(2, 3)
	assert.Equal(t, 5, v2)
}

func TestLoggedSubstitutesFallback(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	var unbound callable.Func1[int, int]
	f := observe.Logged1(logger, "scaler", unbound, 7)

	assert.Equal(t, 7, f(3))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "unbound callable, substituting fallback", entry.Message)
	assert.Equal(t, "scaler", entry.ContextMap()["callable"])
}

func TestLoggedPassesThroughWhenBound(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	bound := callable.BindFunc1(func(i int) int { return i * 2 })
	f := observe.Logged1(logger, "doubler", bound, 0)

	assert.Equal(t, 6, f(3))
	assert.Equal(t, 0, logs.Len())
}

func TestLoggedArities(t *testing.T) {
	logger := zap.NewNop()

	var u0 callable.Func0[int]
	assert.Equal(t, 9, observe.Logged0(logger, "nullary", u0, 9)())

	var u2 callable.Func2[int, int, int]
	assert.Equal(t, 9, observe.Logged2(logger, "binary", u2, 9)(1, 2))
}
