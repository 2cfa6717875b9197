package loom

import "testing"

func TestNewAdoptsBootstrapTask(t *testing.T) {
	t.Parallel()
	rt := New()
	if got := rt.Self(); got != 0 {
		t.Errorf("Self() = %d, want 0", got)
	}
	if rt.tasks[0].state != stateRunning {
		t.Errorf("bootstrap task state = %v, want running", rt.tasks[0].state)
	}
	for i := 1; i < MaxThreads; i++ {
		if rt.tasks[i].state != stateUnused {
			t.Errorf("slot %d state = %v, want unused", i, rt.tasks[i].state)
		}
		if rt.tasks[i].joinedTid != noJoiner {
			t.Errorf("slot %d joinedTid = %d, want noJoiner", i, rt.tasks[i].joinedTid)
		}
		if rt.tasks[i].idx != i {
			t.Errorf("slot %d idx = %d, want %d", i, rt.tasks[i].idx, i)
		}
	}
}

func TestPickRoundRobinFromCurrent(t *testing.T) {
	t.Parallel()
	rt := New()
	rt.tasks[3].state = stateRunnable
	rt.tasks[7].state = stateRunnable
	rt.currentIdx = 5

	next := rt.pick()
	if next == nil || next.idx != 7 {
		t.Fatalf("pick() from idx 5 = %v, want slot 7 (next runnable going forward)", next)
	}

	rt.currentIdx = 7
	next = rt.pick()
	if next == nil || next.idx != 3 {
		t.Fatalf("pick() from idx 7 = %v, want slot 3 (wraps around)", next)
	}
}

func TestPickReturnsNilWhenNothingRunnable(t *testing.T) {
	t.Parallel()
	rt := New()
	rt.tasks[0].state = stateRunning
	if got := rt.pick(); got != nil {
		t.Errorf("pick() = %v, want nil", got)
	}
}

func TestWakeOnlyTransitionsSleepingSlot(t *testing.T) {
	t.Parallel()
	rt := New()
	rt.tasks[2].tid = 42
	rt.tasks[2].state = stateSleeping

	rt.wake(42)
	if rt.tasks[2].state != stateRunnable {
		t.Errorf("wake(42) left slot in state %v, want runnable", rt.tasks[2].state)
	}

	rt.tasks[4].tid = 99
	rt.tasks[4].state = stateZombie
	rt.wake(99)
	if rt.tasks[4].state != stateZombie {
		t.Errorf("wake() on a non-Sleeping slot changed its state to %v", rt.tasks[4].state)
	}
}
