package callable_test

import (
	"testing"

	"github.com/on-the-ground/call_able_go/callable"
)

var benchSink int

func BenchmarkDirectCall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = add(i, i)
	}
}

func BenchmarkFuncCall(b *testing.B) {
	w := callable.BindFunc2(add)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = w.Call(i, i)
	}
}

func BenchmarkMethodCall(b *testing.B) {
	w := callable.BindMethod1((*counter).increment)
	c := &counter{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = w.Call(c, 1)
	}
}

func BenchmarkConstMethodCall(b *testing.B) {
	w := callable.BindConstMethod1(account.afterDeposit)
	acc := account{balance: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = w.Call(acc, 1)
	}
}
