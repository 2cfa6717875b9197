package loom

// contextSwitch performs a two-way baton pass between the goroutine
// currently running old's code and next's own goroutine: it wakes next
// and then blocks the calling goroutine on old's own channel until some
// later schedule step hands the baton back to it. Every task, including
// the bootstrap task adopted by New, owns exactly one long-lived
// channel for this purpose; a freshly Created task's goroutine is
// already parked on this same receive (see runTask), so this same
// two-way handoff covers both "resume a task that yielded or blocked"
// and "run a task for the very first time" without needing to
// distinguish the two.
func contextSwitch(old, next *task) {
	next.cont <- struct{}{}
	<-old.cont
}

// switchAway is the one-way half used only when the current task is
// exiting for good: it wakes next but does not wait to be resumed,
// since a Zombie task is never scheduled again. The caller (exitCurrent,
// by way of runTask) simply returns afterward instead of parking
// forever on a channel nobody will ever signal again.
func switchAway(next *task) {
	next.cont <- struct{}{}
}
