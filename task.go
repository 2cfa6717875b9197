package loom

const (
	// MaxThreads is the fixed size of the thread table.
	MaxThreads = 16

	// noJoiner marks a slot as having no waiting joiner.
	noJoiner int64 = -1
)

// state is a task's lifecycle state.
type state uint8

const (
	stateUnused state = iota
	stateRunnable
	stateRunning
	stateSleeping
	stateZombie
)

func (s state) String() string {
	switch s {
	case stateUnused:
		return "unused"
	case stateRunnable:
		return "runnable"
	case stateRunning:
		return "running"
	case stateSleeping:
		return "sleeping"
	case stateZombie:
		return "zombie"
	default:
		return "invalid"
	}
}

// EntryFunc is the signature of a task's entry point.
type EntryFunc func(arg any) any

// task is one slot of the thread table.
//
// Each task is backed by a real goroutine (the bootstrap slot's
// goroutine is whichever one called New), but at most one task's
// goroutine is ever actually executing application code at a time: cont
// is the rendezvous channel contextSwitch and switchAway use to hand
// the CPU to this task and, for every task but an exiting one, to
// receive it back. This is the standard safe way to build a userspace
// scheduler on top of the stock Go runtime — real goroutines stay
// registered with it (correct stack growth, correct GC scanning, no
// asm SP swapping), and the round-robin discipline below is enforced
// entirely by which goroutine currently holds the baton.
type task struct {
	tid       int64
	state     state
	cont      chan struct{}
	entry     EntryFunc
	arg       any
	retval    any
	joinedTid int64 // tid this task is waiting to Join, or noJoiner
	rt        *Runtime
	idx       int // this task's fixed slot index in rt.tasks
}
