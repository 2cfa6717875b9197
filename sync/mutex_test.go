package sync

import (
	"testing"

	"github.com/coglabs/loom"
)

func TestMutexExcludesConcurrentTasks(t *testing.T) {
	t.Parallel()
	rt := loom.New()
	mu := NewMutex(rt)
	counter := 0

	const tasks = 6
	const iterations = 200
	var tids []int64
	for i := 0; i < tasks; i++ {
		tid, err := rt.Create(func(arg any) any {
			for j := 0; j < iterations; j++ {
				mu.Lock()
				counter++
				mu.Unlock()
				rt.Yield()
			}
			return nil
		}, nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		tids = append(tids, tid)
	}

	for _, tid := range tids {
		if _, err := rt.Join(tid); err != nil {
			t.Fatalf("Join() error = %v", err)
		}
	}

	if want := tasks * iterations; counter != want {
		t.Errorf("counter = %d, want %d", counter, want)
	}
}

func TestMutexTryLock(t *testing.T) {
	t.Parallel()
	rt := loom.New()
	mu := NewMutex(rt)

	if !mu.TryLock() {
		t.Fatal("TryLock() on a free mutex = false, want true")
	}
	if mu.TryLock() {
		t.Fatal("TryLock() on a held mutex = true, want false")
	}
	mu.Unlock()
	if !mu.TryLock() {
		t.Fatal("TryLock() after Unlock() = false, want true")
	}
}

func TestMutexUnlockByNonOwnerIsIgnored(t *testing.T) {
	t.Parallel()
	rt := loom.New()
	mu := NewMutex(rt)

	tid, err := rt.Create(func(arg any) any {
		mu.Unlock() // never locked by this task; must not panic
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := rt.Join(tid); err != nil {
		t.Fatalf("Join() error = %v", err)
	}

	if !mu.TryLock() {
		t.Error("mutex state was corrupted by a no-op Unlock from a non-owner")
	}
}
