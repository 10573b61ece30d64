package imageproxy

import "sync"

// failLatch remembers sources that failed to load. A latched source stays in
// the fallback state for the process lifetime; there is no retry and no
// eviction. Failures are expected, non-exceptional outcomes.
type failLatch struct {
	mu     sync.RWMutex
	failed map[string]bool
}

func newFailLatch() *failLatch {
	return &failLatch{failed: make(map[string]bool)}
}

func (l *failLatch) Failed(src string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.failed[src]
}

func (l *failLatch) MarkFailed(src string) {
	l.mu.Lock()
	l.failed[src] = true
	l.mu.Unlock()
}
