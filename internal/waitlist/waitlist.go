// Package waitlist implements the bounded FIFO of task identifiers that
// every blocking primitive in loom/sync (mutex, semaphore, condition
// variable, and through its condition variables the channel) owns to
// track who is sleeping on it. Join does not use one; a joiner records
// the tid it waits for in its own task slot.
//
// A List holds no pointers into task records — only integer tids — so
// that the owning primitive stays a plain value type and the thread
// table it refers to can be inspected, reset, or relocated independently.
package waitlist

import "golang.org/x/exp/slices"

// List is a bounded FIFO of task ids. The zero value is an empty list
// with no capacity bound; New returns a bounded one.
type List struct {
	capacity int
	ids      []int64
}

// New returns an empty list that holds at most capacity ids.
func New(capacity int) List {
	return List{capacity: capacity}
}

// Push enqueues tid at the tail. It panics if the list is already at
// capacity: every caller in this module sizes lists at MAX_THREADS and
// never has more than one entry per live task, so a full list means a
// bookkeeping bug upstream, not a condition callers should handle.
func (l *List) Push(tid int64) {
	if l.capacity > 0 && len(l.ids) >= l.capacity {
		panic("waitlist: capacity exceeded")
	}
	l.ids = append(l.ids, tid)
}

// Pop dequeues and returns the head of the list. The second result is
// false if the list is empty.
func (l *List) Pop() (int64, bool) {
	if len(l.ids) == 0 {
		return 0, false
	}
	head := l.ids[0]
	l.ids = l.ids[1:]
	return head, true
}

// Remove deletes the first occurrence of tid from the list, preserving
// the order of the remaining entries. It reports whether tid was found.
func (l *List) Remove(tid int64) bool {
	i := slices.Index(l.ids, tid)
	if i < 0 {
		return false
	}
	l.ids = slices.Delete(l.ids, i, i+1)
	return true
}

// Contains reports whether tid is currently enqueued.
func (l *List) Contains(tid int64) bool {
	return slices.Contains(l.ids, tid)
}

// Len returns the number of enqueued ids.
func (l *List) Len() int {
	return len(l.ids)
}

// Empty reports whether the list has no enqueued ids.
func (l *List) Empty() bool {
	return len(l.ids) == 0
}
