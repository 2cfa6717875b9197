// Package sync provides the four blocking synchronization primitives
// built on top of a Runtime's scheduler: Mutex, Semaphore, Cond, and
// Chan. None of them spin or poll; each blocked task is put to Sleep
// and is only ever made Runnable again by the operation that releases
// what it was waiting for, per the scheduler's blocking/waking
// discipline.
//
// Every primitive is bound to exactly one *loom.Runtime at construction
// time and must only ever be used by tasks running on that Runtime.
package sync

import (
	"log"

	"github.com/coglabs/loom"
)

const noOwner int64 = -1

// Mutex is a non-reentrant lock. The zero value is not usable; construct
// one with NewMutex.
type Mutex struct {
	rt     *loom.Runtime
	locked bool
	owner  int64
	q      waitQueue
}

// NewMutex returns an unlocked Mutex bound to rt.
func NewMutex(rt *loom.Runtime) *Mutex {
	return &Mutex{rt: rt, owner: noOwner, q: newWaitQueue()}
}

// Lock blocks the calling task until the mutex is free, then acquires
// it. It puts the caller to Sleep and never resumes it until some
// Unlock wakes it; on resumption it rereads locked at the loop head
// rather than assuming the wake itself was a handoff, so Unlock is free
// to wake a waiter and let it re-contend rather than transfer ownership
// directly.
func (m *Mutex) Lock() {
	for m.locked {
		m.q.sleepSelf(m.rt)
	}
	m.locked = true
	m.owner = m.rt.Self()
}

// TryLock acquires the mutex without blocking, reporting whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	if m.locked {
		return false
	}
	m.locked = true
	m.owner = m.rt.Self()
	return true
}

// Unlock releases the mutex. Calling Unlock from a task other than the
// current owner is a programmer error; it is logged and ignored rather
// than returned as an error or panicked, so a caller bug in a demo does
// not bring the whole scenario down.
func (m *Mutex) Unlock() {
	if self := m.rt.Self(); m.owner != self {
		log.Printf("loom/sync: Unlock called by task %d, which does not own this mutex (owner=%d)", self, m.owner)
		return
	}
	if m.q.wakeOne(m.rt) {
		// A waiter takes the same path through Lock's loop as any other
		// contender; the order of waking it and clearing locked below
		// does not matter because the waker never yields in between.
	}
	m.locked = false
	m.owner = noOwner
}
