package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeyReturnsSameMutex(t *testing.T) {
	lm := NewLockManager()

	first := lm.GetLock("user-1")
	second := lm.GetLock("user-1")

	assert.Same(t, first, second, "same key should map to the same mutex")
}

func TestGetLock_DifferentKeysReturnDifferentMutexes(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock("user-1")
	b := lm.GetLock("user-2")

	assert.NotSame(t, a, b, "different keys should map to different mutexes")
}

func TestGetLock_SerializesCounterUpdates(t *testing.T) {
	lm := NewLockManager()

	const goroutines = 50
	const increments = 100

	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				mu := lm.GetLock("shared")
				mu.Lock()
				counter++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, goroutines*increments, counter)
}
