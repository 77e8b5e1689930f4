package hashing

import (
	"sync"
	"testing"
)

func TestThreadSafePerftCache_ConcurrentAccess(t *testing.T) {
	cache := NewThreadSafePerftCache(0)

	const numWorkers = 10
	const keysPerWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < keysPerWorker; j++ {
				// Every worker writes the same keys.
				cache.Store(uint64(j), 2, uint64(j*10))
				cache.Lookup(uint64(j), 2)
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != keysPerWorker {
		t.Errorf("Expected %d entries, got %d", keysPerWorker, cache.Len())
	}
	for j := 0; j < keysPerWorker; j++ {
		nodes, ok := cache.Lookup(uint64(j), 2)
		if !ok || nodes != uint64(j*10) {
			t.Fatalf("Lookup(%d) = %d, %v", j, nodes, ok)
		}
	}
}

func TestThreadSafePerftCache_MaxCapacity(t *testing.T) {
	const capacity = 50
	cache := NewThreadSafePerftCache(capacity)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Store(uint64(workerID*100+j), 1, 1)
			}
		}(i)
	}
	wg.Wait()

	if !cache.IsFull() {
		t.Error("Expected cache to be full")
	}
	if cache.Len() != capacity {
		t.Errorf("Expected %d entries, got %d", capacity, cache.Len())
	}
}

func TestThreadSafePerftCache_NoRace(t *testing.T) {
	cache := NewThreadSafePerftCache(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Store(7, 3, 8902)
			cache.Lookup(7, 3)
			_ = cache.Hits()
			_ = cache.Len()
		}()
	}
	wg.Wait()
	if cache.Hits() != 100 {
		t.Errorf("Expected 100 hits, got %d", cache.Hits())
	}
}
