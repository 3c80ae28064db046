package document

import "sync"

// memo is a read-compute-cache-once cell. Concurrent get calls compute
// at most once; reset clears the cell so the next get recomputes. Each
// derived field owns its own cell, so there is no record-wide lock.
type memo[T any] struct {
	mu   sync.Mutex
	done bool
	val  T
	err  error
}

func (m *memo[T]) get(compute func() (T, error)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.done {
		m.val, m.err = compute()
		m.done = true
	}
	return m.val, m.err
}

func (m *memo[T]) reset() {
	m.mu.Lock()
	var zero T
	m.val, m.err, m.done = zero, nil, false
	m.mu.Unlock()
}
