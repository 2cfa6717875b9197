package sync

import "github.com/coglabs/loom"

// Locker is anything with Lock and Unlock, matching sync.Locker from the
// standard library so a Cond can be built on a Mutex or on a caller's
// own lock type.
type Locker interface {
	Lock()
	Unlock()
}

// Cond is a condition variable associated with a Locker, following the
// classic Wait/Signal/Broadcast shape. The zero value is not usable;
// construct one with NewCond.
type Cond struct {
	L  Locker
	rt *loom.Runtime
	q  waitQueue
}

// NewCond returns a Cond whose Wait releases and reacquires l.
func NewCond(rt *loom.Runtime, l Locker) *Cond {
	return &Cond{L: l, rt: rt, q: newWaitQueue()}
}

// Wait atomically enqueues the caller on this Cond's wait list and
// releases L, then blocks. The enqueue happens before the unlock, and
// nothing runs between them: this is safe only because the scheduler
// never preempts a task mid-statement, so no other task can observe L
// unlocked with the waiter not yet enqueued. Once woken, Wait reacquires
// L before returning, exactly as the standard library's Cond does.
func (c *Cond) Wait() {
	c.q.enqueueSelf(c.rt)
	c.L.Unlock()
	c.rt.Block()
	c.L.Lock()
}

// Signal wakes one waiting task, if any, in FIFO order. It does not
// touch L; the caller is expected to be holding it, as with the
// standard library's Cond.
func (c *Cond) Signal() {
	c.q.wakeOne(c.rt)
}

// Broadcast wakes every waiting task, in FIFO order.
func (c *Cond) Broadcast() {
	c.q.wakeAll(c.rt)
}
