package callable_test

import (
	"testing"

	"github.com/on-the-ground/call_able_go/callable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	owner   string
	balance int
}

func (a account) ownerName() string        { return a.owner }
func (a account) afterDeposit(n int) int   { return a.balance + n }
func (a account) within(lo, hi int) bool   { return lo <= a.balance && a.balance <= hi }
func (a account) scaled(x, y, z int) int   { return a.balance*x + y*z }

func TestConstMethodZeroValueIsInvalid(t *testing.T) {
	var w callable.ConstMethod0[account, string]
	assert.False(t, w.IsValid())
}

func TestConstMethodCallReadsReceiver(t *testing.T) {
	w := callable.BindConstMethod0(account.ownerName)
	require.True(t, w.IsValid())

	acc := account{owner: "ada", balance: 10}
	assert.Equal(t, "ada", w.Call(acc))
}

func TestConstMethodCannotMutateCaller(t *testing.T) {
	w := callable.BindConstMethod1(account.afterDeposit)
	acc := account{balance: 10}
	assert.Equal(t, 15, w.Call(acc, 5))
	assert.Equal(t, 10, acc.balance)
}

func TestConstMethodUnboundCallPanicsWithError(t *testing.T) {
	var w callable.ConstMethod1[account, int, int]
	assert.PanicsWithError(t, callable.ErrUninitializedCall.Error(), func() {
		_ = w.Call(account{}, 1)
	})
}

func TestConstMethodCallIf(t *testing.T) {
	var unbound callable.ConstMethod1[account, int, int]
	assert.True(t, unbound.CallIf(account{}, 1).IsNone())

	bound := callable.BindConstMethod1(account.afterDeposit)
	v, ok := bound.CallIf(account{balance: 3}, 4).Unwrap()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestConstMethodCallOrInvokesFallback(t *testing.T) {
	var unbound callable.ConstMethod1[account, int, int]
	called := false
	got := unbound.CallOr(func(n int) int {
		called = true
		return -n
	}, account{balance: 100}, 5)
	assert.True(t, called)
	assert.Equal(t, -5, got)

	bound := callable.BindConstMethod1(account.afterDeposit)
	called = false
	got = bound.CallOr(func(n int) int {
		called = true
		return -n
	}, account{balance: 100}, 5)
	assert.False(t, called)
	assert.Equal(t, 105, got)
}

func TestConstMethodEquality(t *testing.T) {
	w1 := callable.BindConstMethod1(account.afterDeposit)
	w2 := callable.BindConstMethod1(account.afterDeposit)
	assert.True(t, w1.Equal(w2))

	var u1, u2 callable.ConstMethod1[account, int, int]
	assert.True(t, u1.Equal(u2))
	assert.False(t, u1.Equal(w1))
}

func TestConstMethodArities(t *testing.T) {
	acc := account{balance: 5}

	w2 := callable.BindConstMethod2(account.within)
	assert.True(t, w2.Call(acc, 1, 10))
	assert.False(t, w2.Call(acc, 6, 10))

	w3 := callable.BindConstMethod3(account.scaled)
	assert.Equal(t, 16, w3.Call(acc, 2, 2, 3))
}
