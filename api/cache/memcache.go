package cache

import (
	"context"
	"sync"
	"time"
)

// MemCache is a typed in-memory store with a TTL per entry.
// Expired entries are dropped on read and by a background sweep.
type MemCache[T any] struct {
	entries sync.Map
	ticker  *time.Ticker
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

type memCacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e *memCacheEntry[T]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// NewMemCache creates the cache and starts sweeping it every cleanupInterval.
func NewMemCache[T any](cleanupInterval time.Duration) *MemCache[T] {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache[T]{
		ticker: time.NewTicker(cleanupInterval),
		ctx:    ctx,
		cancel: cancel,
	}

	mc.wg.Add(1)
	go mc.sweepLoop()

	return mc
}

func (mc *MemCache[T]) sweepLoop() {
	defer mc.wg.Done()
	for {
		select {
		case <-mc.ticker.C:
			mc.sweep(time.Now())
		case <-mc.ctx.Done():
			return
		}
	}
}

// sweep removes every entry expired at now.
// CompareAndDelete keeps a concurrent Set of the same key.
func (mc *MemCache[T]) sweep(now time.Time) {
	mc.entries.Range(func(key, value any) bool {
		if value.(*memCacheEntry[T]).expired(now) {
			mc.entries.CompareAndDelete(key, value)
		}
		return true
	})
}

// Close stops the sweep worker.
func (mc *MemCache[T]) Close() {
	mc.cancel()
	mc.ticker.Stop()
	mc.wg.Wait()
}

// Get returns the value of a live key.
func (mc *MemCache[T]) Get(key string) (T, bool) {
	var zero T

	value, ok := mc.entries.Load(key)
	if !ok {
		return zero, false
	}

	entry := value.(*memCacheEntry[T])
	if entry.expired(time.Now()) {
		mc.entries.CompareAndDelete(key, value)
		return zero, false
	}
	return entry.value, true
}

// Set stores the value under key, replacing whatever was there.
func (mc *MemCache[T]) Set(key string, value T, ttl time.Duration) {
	mc.entries.Store(key, &memCacheEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}

// Delete drops a key.
func (mc *MemCache[T]) Delete(key string) {
	mc.entries.Delete(key)
}

// Len counts the stored entries, expired ones included until they are swept.
func (mc *MemCache[T]) Len() int {
	count := 0
	mc.entries.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
