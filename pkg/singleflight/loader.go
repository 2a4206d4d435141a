// Package singleflight coalesces concurrent computations for the same key
// into a single execution. It is used to stop a burst of readers of the
// same not-yet-summarized document from each triggering a summary call.
package singleflight

import "sync"

// call is the shared in-flight handle for one key. val and err are written
// once, before done is closed.
type call[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Loader deduplicates concurrent loads per key. It is a coalescing cache,
// not a persistent one: once a computation finishes the key is evicted and
// the next Load starts fresh.
type Loader[K comparable, V any] struct {
	mu       sync.Mutex
	inflight map[K]*call[V]
}

func NewLoader[K comparable, V any]() *Loader[K, V] {
	return &Loader[K, V]{inflight: make(map[K]*call[V])}
}

// Load returns compute's result for key. If a computation for key is
// already in flight, Load blocks and returns that computation's result
// (or its error) without invoking compute again.
func (l *Loader[K, V]) Load(key K, compute func() (V, error)) (V, error) {
	l.mu.Lock()
	if c, ok := l.inflight[key]; ok {
		l.mu.Unlock()
		<-c.done
		return c.val, c.err
	}

	c := &call[V]{done: make(chan struct{})}
	l.inflight[key] = c
	l.mu.Unlock()

	c.val, c.err = compute()

	// Evict before waking joiners: a caller arriving after completion must
	// start a fresh computation, while joiners already holding c still see
	// this result.
	l.mu.Lock()
	delete(l.inflight, key)
	l.mu.Unlock()
	close(c.done)

	return c.val, c.err
}
