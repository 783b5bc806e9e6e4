// Package dispatch provides a named registry for bound callables, so that
// wrappers produced once at startup can be looked up by event or command
// name at call sites that only know a string.
package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Table maps names to callables of one wrapper type V. Entries are spread
// over shards by name hash so lookups on disjoint names do not contend.
// Unlike the callable wrappers themselves, Table is safe for concurrent use.
type Table[V any] struct {
	// TableId identifies this table in logs.
	TableId string

	shards []*shard[V]
	logger *zap.Logger
	closed atomic.Bool
}

type shard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewTable creates a table with numShards shards. Shard counts below 1
// collapse to 1. A nil logger disables logging.
func NewTable[V any](numShards int, logger *zap.Logger) *Table[V] {
	if numShards < 1 {
		numShards = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	shards := make([]*shard[V], numShards)
	for i := range shards {
		shards[i] = &shard[V]{entries: make(map[string]V)}
	}
	return &Table[V]{
		TableId: uuid.New().String(),
		shards:  shards,
		logger:  logger,
	}
}

func (t *Table[V]) shardOf(name string) *shard[V] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	return t.shards[xxhash.Sum64String(name)%uint64(len(t.shards))]
}

// Register stores v under name, replacing any previous entry. Registrations
// against a closed table are dropped.
func (t *Table[V]) Register(name string, v V) {
	if t.closed.Load() {
		t.logger.Sugar().Warnf("dropped registration on closed table: tableId: %s, name: %s", t.TableId, name)
		return
	}
	s := t.shardOf(name)
	s.mu.Lock()
	s.entries[name] = v
	s.mu.Unlock()
	t.logger.Sugar().Debugf("registered callable: tableId: %s, name: %s", t.TableId, name)
}

// Lookup returns the callable registered under name.
func (t *Table[V]) Lookup(name string) (V, bool) {
	s := t.shardOf(name)
	s.mu.RLock()
	v, ok := s.entries[name]
	s.mu.RUnlock()
	return v, ok
}

// Deregister removes the entry under name, if any.
func (t *Table[V]) Deregister(name string) {
	s := t.shardOf(name)
	s.mu.Lock()
	delete(s.entries, name)
	s.mu.Unlock()
	t.logger.Sugar().Debugf("deregistered callable: tableId: %s, name: %s", t.TableId, name)
}

// Len returns the number of registered entries across all shards.
func (t *Table[V]) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// Close drops every entry and rejects further registrations. Closing twice
// is a no-op.
func (t *Table[V]) Close() {
	if !t.closed.CompareAndSwap(false, true) {
		return
	}
	for _, s := range t.shards {
		s.mu.Lock()
		clear(s.entries)
		s.mu.Unlock()
	}
	t.logger.Sugar().Debugf("closed dispatch table: tableId: %s", t.TableId)
}
