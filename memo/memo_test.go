package memo_test

import (
	"testing"

	"github.com/on-the-ground/call_able_go/callable"
	"github.com/on-the-ground/call_able_go/memo"

	"github.com/stretchr/testify/assert"
)

func TestMemoFunc1(t *testing.T) {
	count := 0
	fn := func(i int) int {
		count++
		return i * 2
	}
	m := memo.Func1(callable.BindRef1(&fn), 2)

	assert.Equal(t, 4, m(2))
	assert.Equal(t, 4, m(2)) // cached
	assert.Equal(t, 1, count)
}

func TestMemoFunc2(t *testing.T) {
	count := 0
	fn := func(a, b int) int {
		count++
		return a + b
	}
	m := memo.Func2(callable.BindRef2(&fn), 2)

	assert.Equal(t, 5, m(2, 3))
	assert.Equal(t, 5, m(2, 3))
	assert.Equal(t, 1, count)
}

func TestMemoFunc3(t *testing.T) {
	count := 0
	fn := func(a, b, c int) int {
		count++
		return a * b * c
	}
	m := memo.Func3(callable.BindRef3(&fn), 2)

	assert.Equal(t, 24, m(2, 3, 4))
	assert.Equal(t, 24, m(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestMemoRotationKeepsAnswersCorrect(t *testing.T) {
	fn := func(i int) int { return i * 3 }
	m := memo.Func1(callable.BindRef1(&fn), 2)

	for i := 0; i < 50; i++ {
		assert.Equal(t, i*3, m(i))
	}
	// re-query across generations
	for i := 49; i >= 0; i-- {
		assert.Equal(t, i*3, m(i))
	}
}

type rates struct{ base int }

var scaledCalls int

func (r rates) scaled(k int) int {
	scaledCalls++
	return r.base * k
}

func TestMemoConstMethod1(t *testing.T) {
	scaledCalls = 0
	w := callable.BindConstMethod1(rates.scaled)
	m := memo.ConstMethod1(w, rates{base: 7}, 4)

	assert.Equal(t, 14, m(2))
	assert.Equal(t, 14, m(2))
	assert.Equal(t, 1, scaledCalls)
}

func TestMemoZeroSizePanics(t *testing.T) {
	fn := func(i int) int { return i }
	assert.Panics(t, func() {
		_ = memo.Func1(callable.BindRef1(&fn), 0)
	})
}

func TestMemoUnboundWrapperPanicsOnMiss(t *testing.T) {
	var w callable.Func1[int, int]
	m := memo.Func1(w, 2)
	assert.Panics(t, func() { _ = m(1) })
}
