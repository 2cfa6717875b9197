package sync

import (
	"github.com/coglabs/loom"
	"github.com/coglabs/loom/internal/waitlist"
)

// waitQueue is the bounded FIFO of task ids every primitive in this
// package keeps to track who is sleeping on it. It sits directly on top
// of loom.Runtime's Block/Wake pair, adding only "who" and "in what
// order" — the Sleeping/Runnable transitions themselves belong to the
// Runtime.
type waitQueue struct {
	list waitlist.List
}

// newWaitQueue returns an empty queue sized to hold every task of a
// thread table (loom.MaxThreads) at once. The primitives in this package call this from
// their own constructors rather than relying on a zero value, since
// waitlist.List's capacity must be set once up front.
func newWaitQueue() waitQueue {
	return waitQueue{list: waitlist.New(loom.MaxThreads)}
}

// sleepSelf enqueues the calling task's own tid at the tail, then blocks
// it. It returns once some later wakeOne or wakeAll call has removed
// this tid from the queue and made the task Runnable again.
func (q *waitQueue) sleepSelf(rt *loom.Runtime) {
	q.enqueueSelf(rt)
	rt.Block()
}

// enqueueSelf enqueues the calling task's own tid without blocking it.
// Cond.Wait uses this to enqueue before releasing its lock, so that the
// enqueue-unlock-sleep sequence has no gap another task could observe.
func (q *waitQueue) enqueueSelf(rt *loom.Runtime) {
	q.list.Push(rt.Self())
}

// wakeOne wakes the task at the head of the queue, if any, and reports
// whether one was woken.
func (q *waitQueue) wakeOne(rt *loom.Runtime) bool {
	tid, ok := q.list.Pop()
	if !ok {
		return false
	}
	rt.Wake(tid)
	return true
}

// wakeAll wakes every queued task in FIFO order and empties the queue.
func (q *waitQueue) wakeAll(rt *loom.Runtime) {
	for {
		tid, ok := q.list.Pop()
		if !ok {
			return
		}
		rt.Wake(tid)
	}
}

func (q *waitQueue) len() int {
	return q.list.Len()
}
