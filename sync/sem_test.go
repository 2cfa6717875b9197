package sync

import (
	"testing"

	"github.com/coglabs/loom"
)

func TestSemaphoreTryWait(t *testing.T) {
	t.Parallel()
	rt := loom.New()
	sem := NewSemaphore(rt, 2)

	if !sem.TryWait() {
		t.Fatal("TryWait() with count 2 = false, want true")
	}
	if !sem.TryWait() {
		t.Fatal("TryWait() with count 1 = false, want true")
	}
	if sem.TryWait() {
		t.Fatal("TryWait() with count 0 = true, want false")
	}
	sem.Post()
	if !sem.TryWait() {
		t.Fatal("TryWait() after Post() = false, want true")
	}
}

func TestSemaphoreProducerConsumerBoundedBuffer(t *testing.T) {
	t.Parallel()
	rt := loom.New()

	const capacity = 3
	const items = 50

	mu := NewMutex(rt)
	emptySlots := NewSemaphore(rt, capacity)
	fullSlots := NewSemaphore(rt, 0)

	var buf []int
	var consumed []int

	producer, err := rt.Create(func(arg any) any {
		for i := 0; i < items; i++ {
			emptySlots.Wait()
			mu.Lock()
			buf = append(buf, i)
			mu.Unlock()
			fullSlots.Post()
			rt.Yield()
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Create(producer) error = %v", err)
	}

	consumer, err := rt.Create(func(arg any) any {
		for i := 0; i < items; i++ {
			fullSlots.Wait()
			mu.Lock()
			v := buf[0]
			buf = buf[1:]
			mu.Unlock()
			consumed = append(consumed, v)
			emptySlots.Post()
			rt.Yield()
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Create(consumer) error = %v", err)
	}

	if _, err := rt.Join(producer); err != nil {
		t.Fatalf("Join(producer) error = %v", err)
	}
	if _, err := rt.Join(consumer); err != nil {
		t.Fatalf("Join(consumer) error = %v", err)
	}

	if len(consumed) != items {
		t.Fatalf("consumed %d items, want %d", len(consumed), items)
	}
	for i, v := range consumed {
		if v != i {
			t.Errorf("consumed[%d] = %d, want %d (FIFO order)", i, v, i)
		}
	}
}

// TestSemaphoreTwoWaitersOnePostGrantsExactlyOne guards against a Post
// waking a sleeping waiter without that waiter's own Wait call having
// already claimed the decrement: with the decrement deferred until the
// waiter resumes, a second, already-runnable Wait() could observe a
// stale positive count and take the same unit of resource
// non-blocking, letting one Post satisfy two Waits.
func TestSemaphoreTwoWaitersOnePostGrantsExactlyOne(t *testing.T) {
	t.Parallel()
	rt := loom.New()
	sem := NewSemaphore(rt, 0)

	granted := 0
	mu := NewMutex(rt)

	newWaiter := func() (int64, error) {
		return rt.Create(func(arg any) any {
			sem.Wait()
			mu.Lock()
			granted++
			mu.Unlock()
			return nil
		}, nil)
	}

	first, err := newWaiter()
	if err != nil {
		t.Fatalf("Create(first) error = %v", err)
	}
	second, err := newWaiter()
	if err != nil {
		t.Fatalf("Create(second) error = %v", err)
	}

	poster, err := rt.Create(func(arg any) any {
		sem.Post()
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Create(poster) error = %v", err)
	}

	if _, err := rt.Join(poster); err != nil {
		t.Fatalf("Join(poster) error = %v", err)
	}
	// poster's Post() only marks one waiter Runnable; Join(first) is what
	// actually resumes it through to its granted++.
	if _, err := rt.Join(first); err != nil {
		t.Fatalf("Join(first) error = %v", err)
	}

	if granted != 1 {
		t.Fatalf("after one Post with two waiters, granted = %d, want exactly 1", granted)
	}
	if sem.count != -1 {
		t.Fatalf("sem.count = %d, want -1 (one waiter still queued)", sem.count)
	}

	sem.Post()
	if _, err := rt.Join(second); err != nil {
		t.Fatalf("Join(second) error = %v", err)
	}
	if granted != 2 {
		t.Fatalf("after two Posts with two waiters, granted = %d, want 2", granted)
	}
}
