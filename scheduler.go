package loom

// Runtime is one instance of the cooperative scheduler: a fixed thread
// table, the current-task identity, and the monotonic tid counter. The
// zero value is not usable; construct one with New.
//
// A Runtime is not safe for concurrent use by multiple goroutines. That
// restriction is not a limitation of this implementation — it is the
// design's premise: a Runtime models a process the host kernel sees as
// single-threaded, so exactly one goroutine may ever drive it. Separate
// Runtime values are fully independent, which is what lets tests run
// several of them in parallel (each in its own goroutine) without
// interfering with each other.
type Runtime struct {
	tasks      [MaxThreads]task
	currentIdx int
	nextTid    int64
}

// New creates a Runtime and adopts the caller's own goroutine stack as
// task 0, the bootstrap task, in state Running. Construction and
// initialization are the same act here: a Runtime cannot be used before
// it exists, so no call-ordering hazard between "create" and "init" is
// representable.
func New() *Runtime {
	rt := &Runtime{nextTid: 1}
	for i := range rt.tasks {
		rt.tasks[i].joinedTid = noJoiner
		rt.tasks[i].idx = i
		rt.tasks[i].rt = rt
		rt.tasks[i].cont = make(chan struct{})
	}
	rt.tasks[0].tid = 0
	rt.tasks[0].state = stateRunning
	return rt
}

func (rt *Runtime) currentTask() *task {
	return &rt.tasks[rt.currentIdx]
}

// pick is the round-robin picker: scanning
// (i+1)%N, (i+2)%N, ..., i in that order and returning the first slot in
// Runnable. Because the scan is a single pass of exactly N steps ending
// back at i, checking the current slot last falls out naturally — no
// special case is needed for "no other task is runnable, but I still
// am".
func (rt *Runtime) pick() *task {
	i := rt.currentIdx
	for step := 1; step <= MaxThreads; step++ {
		idx := (i + step) % MaxThreads
		if rt.tasks[idx].state == stateRunnable {
			return &rt.tasks[idx]
		}
	}
	return nil
}

// scheduleStep performs one schedule step: pick the next runnable task,
// demote the outgoing Running task to Runnable (Sleeping and Zombie are
// left untouched), and switch to it if it differs from current. Callers
// put the current task into the state it should wait in first (Sleeping
// for Block and Join, Runnable for Yield); a task still marked Running
// is demoted to Runnable here. Exiting tasks use scheduleExit instead.
// scheduleStep always returns to its caller once this task is resumed
// on some future turn.
func (rt *Runtime) scheduleStep() {
	old, next := rt.advance()
	if next == nil {
		return
	}
	if rt.currentIdx != old.idx {
		contextSwitch(old, next)
	}
}

// scheduleExit is scheduleStep's one-way counterpart for a task that is
// exiting for good: the caller (exitCurrent, by way of runTask) is
// never resumed after this, so there is nothing to wait on. It panics
// if no task is runnable, since a Runtime with every task asleep or
// dead has no way to make further progress.
func (rt *Runtime) scheduleExit() {
	old, next := rt.advance()
	if next == nil {
		panic("loom: exit found no runnable task; every task is asleep or dead")
	}
	if rt.currentIdx != old.idx {
		switchAway(next)
	}
}

// advance picks the next runnable task and promotes it to Running,
// demoting the outgoing task first if it is still marked Running (a
// caller that already moved itself to Sleeping or Zombie is left
// alone). It returns the outgoing task and the one now current, or a
// nil next if nothing is runnable.
func (rt *Runtime) advance() (old, next *task) {
	old = rt.currentTask()
	next = rt.pick()
	if next == nil {
		// Only occurs transiently during wake sequences; the caller
		// remains current and running.
		return old, nil
	}
	if old.state == stateRunning {
		old.state = stateRunnable
		traceTransition(old.tid, stateRunning, stateRunnable)
	}
	traceTransition(next.tid, next.state, stateRunning)
	next.state = stateRunning
	rt.currentIdx = next.idx
	return old, next
}

// wake transitions the single Sleeping slot whose tid matches to
// Runnable. It does not itself invoke the scheduler: the
// waker keeps running until it reaches its own next scheduling point.
func (rt *Runtime) wake(tid int64) {
	for i := range rt.tasks {
		if rt.tasks[i].tid == tid && rt.tasks[i].state == stateSleeping {
			rt.tasks[i].state = stateRunnable
			traceTransition(tid, stateSleeping, stateRunnable)
			return
		}
	}
}
