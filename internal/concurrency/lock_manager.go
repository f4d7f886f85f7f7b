// Package concurrency provides keyed locks for serializing per-user game turns.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Locks are never evicted; the key
// space is bounded by the active user population.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates an empty LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
