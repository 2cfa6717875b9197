//go:build loomtrace

package loom

import (
	"testing"

	"github.com/coglabs/loom/internal/fsmgraph"
)

// TestLifecycleTraceMatchesLicensedGraph runs a real scenario through a
// live Runtime with TraceHook recording every actual transition, then
// feeds each task's recorded sequence to fsmgraph.Validate. This is the
// dynamic half of lifecycle conformance checking: fsmgraph's own tests
// check the static graph and hand-authored sample sequences, but only
// this test (built with -tags loomtrace) confirms the scheduler itself
// never emits a transition fsmgraph doesn't license.
//
// Deliberately not t.Parallel(): TraceHook is a single package-level
// variable, and this test must not observe transitions from any other
// Runtime running concurrently.
func TestLifecycleTraceMatchesLicensedGraph(t *testing.T) {
	transitions := map[int64][]fsmgraph.Transition{}

	prev := TraceHook
	defer func() { TraceHook = prev }()
	TraceHook = func(tid int64, from, to string) {
		transitions[tid] = append(transitions[tid], fsmgraph.Transition{
			From: fsmgraph.State(from),
			To:   fsmgraph.State(to),
		})
	}

	rt := New()
	child, err := rt.Create(func(arg any) any {
		rt.Block()
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rt.Yield() // lets child run up to its own Block()
	rt.Wake(child)
	if _, err := rt.Join(child); err != nil {
		t.Fatalf("Join() error = %v", err)
	}

	if len(transitions) == 0 {
		t.Fatal("TraceHook recorded no transitions; the scheduler ran without tracing")
	}
	for tid, seq := range transitions {
		if err := fsmgraph.Validate(seq); err != nil {
			t.Errorf("task %d: %v (sequence: %v)", tid, err, seq)
		}
	}

	childSeq := transitions[child]
	wantChild := []fsmgraph.Transition{
		{From: fsmgraph.Unused, To: fsmgraph.Runnable},
		{From: fsmgraph.Runnable, To: fsmgraph.Running},
		{From: fsmgraph.Running, To: fsmgraph.Sleeping},
		{From: fsmgraph.Sleeping, To: fsmgraph.Runnable},
		{From: fsmgraph.Runnable, To: fsmgraph.Running},
		{From: fsmgraph.Running, To: fsmgraph.Zombie},
		{From: fsmgraph.Zombie, To: fsmgraph.Unused},
	}
	if len(childSeq) != len(wantChild) {
		t.Fatalf("child transition sequence = %v, want %v", childSeq, wantChild)
	}
	for i, tr := range wantChild {
		if childSeq[i] != tr {
			t.Errorf("child transition[%d] = %v, want %v", i, childSeq[i], tr)
		}
	}
}
