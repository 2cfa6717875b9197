package sync

import "github.com/coglabs/loom"

// Semaphore is a counting semaphore. The zero value is not usable;
// construct one with NewSemaphore.
type Semaphore struct {
	rt    *loom.Runtime
	count int
	q     waitQueue
}

// NewSemaphore returns a Semaphore initialized to count, which must be
// non-negative.
func NewSemaphore(rt *loom.Runtime, count int) *Semaphore {
	return &Semaphore{rt: rt, count: count, q: newWaitQueue()}
}

// Wait decrements the count unconditionally, then blocks the caller if
// the new value is negative. A negative count is the number of tasks
// currently queued waiting for a Post; Wait does not re-test the count
// after waking; it simply returns, on the understanding that whichever
// Post woke it already accounted for this waiter's share. This mirrors
// the original source's wait loop, whose body unconditionally breaks on
// its first iteration rather than re-testing — semantically an if, not
// a retrying while.
func (s *Semaphore) Wait() {
	s.count--
	if s.count < 0 {
		s.q.sleepSelf(s.rt)
	}
}

// TryWait decrements the count and returns true if it would not go
// negative, or returns false immediately without blocking or enqueuing.
func (s *Semaphore) TryWait() bool {
	if s.count <= 0 {
		return false
	}
	s.count--
	return true
}

// Post increments the count, then wakes one waiting task if the count
// was negative beforehand — a non-positive count after incrementing
// means a task is still queued from an earlier Wait. Waking a task here
// does not re-grant anything: that task's own Wait already did its
// decrement before it went to sleep, so this Post's increment is what
// balances it.
func (s *Semaphore) Post() {
	s.count++
	if s.count <= 0 {
		s.q.wakeOne(s.rt)
	}
}
