package memo

import (
	"sync"
	"sync/atomic"
)

// rotating is a bounded two-generation cache. When the live generation fills
// up, it becomes the fallback generation and a fresh map takes over, so the
// most recent entries survive rotation while memory stays bounded at roughly
// two generations.
type rotating[K comparable, V any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func newRotating[K comparable, V any](maxSize uint32) *rotating[K, V] {
	if maxSize == 0 {
		panic("memo: maxSize should be greater than 0")
	}
	r := &rotating[K, V]{maxSize: maxSize}
	r.gens[0].Store(&sync.Map{})
	r.gens[1].Store(&sync.Map{})
	return r
}

func (r *rotating[K, V]) load(k K) (V, bool) {
	head := r.headIdx.Load()
	if v, ok := r.gens[head].Load().Load(k); ok {
		return v.(V), true
	}
	if v, ok := r.gens[1-head].Load().Load(k); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

func (r *rotating[K, V]) store(k K, v V) {
	if r.size.CompareAndSwap(r.maxSize, 0) {
		head := 1 - r.headIdx.Load()
		r.gens[head].Store(&sync.Map{})
		r.headIdx.Store(head)
	}
	r.gens[r.headIdx.Load()].Load().Store(k, v)
	r.size.Add(1)
}
