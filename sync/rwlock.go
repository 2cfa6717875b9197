package sync

import "github.com/coglabs/loom"

// RWLock is a writer-priority reader/writer lock: once a writer is
// waiting, no new reader is admitted ahead of it, even though the
// resource may currently be free for reading. This is the classic
// second readers-writers problem, built directly on Mutex and Cond
// rather than on any host-provided rwlock, the same way every other
// primitive in this package is built on the scheduler rather than on a
// borrowed implementation. The zero value is not usable; construct one
// with NewRWLock.
type RWLock struct {
	mu             *Mutex
	readersOK      *Cond
	writerOK       *Cond
	activeReaders  int
	activeWriter   bool
	waitingWriters int
}

// NewRWLock returns an unlocked RWLock bound to rt.
func NewRWLock(rt *loom.Runtime) *RWLock {
	mu := NewMutex(rt)
	return &RWLock{
		mu:        mu,
		readersOK: NewCond(rt, mu),
		writerOK:  NewCond(rt, mu),
	}
}

// RLock blocks while a writer holds the lock or one is waiting for it,
// then registers as an active reader. Any number of readers may hold
// the lock at once, as long as no writer is waiting.
func (l *RWLock) RLock() {
	l.mu.Lock()
	for l.activeWriter || l.waitingWriters > 0 {
		l.readersOK.Wait()
	}
	l.activeReaders++
	l.mu.Unlock()
}

// RUnlock releases one reader's hold. The last reader out wakes a
// waiting writer, if any.
func (l *RWLock) RUnlock() {
	l.mu.Lock()
	l.activeReaders--
	if l.activeReaders == 0 {
		l.writerOK.Signal()
	}
	l.mu.Unlock()
}

// Lock blocks while the lock is held by anyone (writer or readers),
// registering as a waiting writer for the duration so that RLock stops
// admitting new readers ahead of it.
func (l *RWLock) Lock() {
	l.mu.Lock()
	l.waitingWriters++
	for l.activeWriter || l.activeReaders > 0 {
		l.writerOK.Wait()
	}
	l.waitingWriters--
	l.activeWriter = true
	l.mu.Unlock()
}

// Unlock releases the write lock, preferring to wake a waiting writer
// over the whole cohort of blocked readers.
func (l *RWLock) Unlock() {
	l.mu.Lock()
	l.activeWriter = false
	if l.waitingWriters > 0 {
		l.writerOK.Signal()
	} else {
		l.readersOK.Broadcast()
	}
	l.mu.Unlock()
}

// WaitingWriters reports how many tasks are currently blocked in Lock.
// It exists for observability (loomdemo readers-writers samples it on
// every read), not as a decision input for callers.
func (l *RWLock) WaitingWriters() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.waitingWriters
}
