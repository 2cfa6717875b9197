package loom

import "runtime"

// Create locates the lowest-index Unused slot, assigns it the next
// monotonic tid, starts its backing goroutine parked on its first turn,
// and marks it Runnable. No context switch occurs; the new task first
// runs at some later schedule step, when contextSwitch's send to its
// channel unparks runTask. Create fails with ErrOutOfSlots if the
// thread table is full.
func (rt *Runtime) Create(entry EntryFunc, arg any) (int64, error) {
	idx := -1
	for i := range rt.tasks {
		if rt.tasks[i].state == stateUnused {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, ErrOutOfSlots
	}

	t := &rt.tasks[idx]
	tid := rt.nextTid
	rt.nextTid++

	t.tid = tid
	t.state = stateRunnable
	t.joinedTid = noJoiner
	t.retval = nil
	t.entry = entry
	t.arg = arg
	go runTask(t)
	traceTransition(tid, stateUnused, stateRunnable)

	return tid, nil
}

// runTask is the goroutine body backing one task slot for the duration
// of a single generation (one Create through the Join that retires it).
// It blocks on t.cont until the scheduler gives it its first turn, runs
// entry(arg) to completion, and hands the result to exitCurrent. Unlike
// every other task, an exiting task's own goroutine is never resumed
// again, so once exitCurrent's final scheduleExit call returns, runTask
// simply returns too and the goroutine ends — there is no equivalent of
// the old trampoline needing a separate "never returns" landing pad,
// because a fresh call to go runTask is exactly that landing pad.
func runTask(t *task) {
	<-t.cont
	ret := t.entry(t.arg)
	exitCurrent(t, ret)
}

// exitCurrent implements task exit for t: store retval, mark Zombie,
// wake every task whose joinedTid names t, then hand off to whatever
// task runs next. It does not return: for any task but the bootstrap
// one, runTask's caller frame simply ends once scheduleExit hands off,
// so the goroutine terminates; the bootstrap task is the caller's own
// goroutine rather than one runTask started, so there is no safe frame
// left to return into once it is retired from scheduling, and it parks
// here for good instead.
func exitCurrent(t *task, retval any) {
	rt := t.rt
	t.retval = retval
	t.state = stateZombie
	traceTransition(t.tid, stateRunning, stateZombie)

	for i := range rt.tasks {
		if rt.tasks[i].state == stateSleeping && rt.tasks[i].joinedTid == t.tid {
			rt.tasks[i].joinedTid = noJoiner
			rt.tasks[i].state = stateRunnable
			traceTransition(rt.tasks[i].tid, stateSleeping, stateRunnable)
		}
	}

	rt.scheduleExit()
	if t.idx == 0 {
		select {}
	}
}

// Exit is the non-task-surface entry point for a task voluntarily ending
// itself: the current task's own equivalent of returning from its entry
// function. It never returns: once the next task has been handed the
// CPU, the calling goroutine ends via runtime.Goexit, so any calls the
// entry function deferred run after that handoff.
func (rt *Runtime) Exit(retval any) {
	exitCurrent(rt.currentTask(), retval)
	runtime.Goexit()
}

// Join blocks until the task named by tid reaches Zombie, then collects
// and returns its return value, retiring the slot to Unused. It fails
// with ErrNoSuchTask if no non-Unused slot currently holds tid. Joining
// a task that already has a joiner is undefined behavior — this
// implementation does not detect it.
func (rt *Runtime) Join(tid int64) (any, error) {
	idx := -1
	for i := range rt.tasks {
		if rt.tasks[i].tid == tid && rt.tasks[i].state != stateUnused {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNoSuchTask
	}

	for rt.tasks[idx].state != stateZombie {
		cur := rt.currentTask()
		cur.joinedTid = tid
		cur.state = stateSleeping
		traceTransition(cur.tid, stateRunning, stateSleeping)
		rt.scheduleStep()
	}

	ret := rt.tasks[idx].retval
	rt.tasks[idx].state = stateUnused
	traceTransition(rt.tasks[idx].tid, stateZombie, stateUnused)
	rt.tasks[idx].joinedTid = noJoiner
	rt.tasks[idx].retval = nil
	rt.tasks[idx].entry = nil
	rt.tasks[idx].arg = nil
	return ret, nil
}

// Self returns the tid of the currently running task.
func (rt *Runtime) Self() int64 {
	return rt.currentTask().tid
}

// Block puts the calling task to Sleep and runs a schedule step. It is
// the primitive every blocking synchronization type in package sync
// builds on: callers are expected to have already recorded, in their
// own state, why this task is asleep and what should wake it, since
// Block itself knows nothing about locks, counts, or queues.
func (rt *Runtime) Block() {
	cur := rt.currentTask()
	cur.state = stateSleeping
	traceTransition(cur.tid, stateRunning, stateSleeping)
	rt.scheduleStep()
}

// Wake transitions the Sleeping task named by tid to Runnable, without
// itself invoking the scheduler: the caller keeps
// running until it reaches its own next scheduling point. Waking a tid
// that names no currently-Sleeping task is a silent no-op.
func (rt *Runtime) Wake(tid int64) {
	rt.wake(tid)
}

// Yield voluntarily gives up the CPU: the current task returns to
// Runnable and a schedule step runs. By the time Yield returns, zero or
// more other runnable tasks have each run for some prefix and reached
// their own scheduling point; none of their intermediate states were
// observable, because no critical section spans a scheduling point.
func (rt *Runtime) Yield() {
	cur := rt.currentTask()
	cur.state = stateRunnable
	traceTransition(cur.tid, stateRunning, stateRunnable)
	rt.scheduleStep()
}
