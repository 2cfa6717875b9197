// Package loom is a user-space cooperative multithreading runtime for a
// process the host kernel views as single-threaded. It multiplexes N
// application-level tasks onto that one kernel-visible execution context:
// a fixed thread table with a non-preemptive round-robin scheduler, a
// channel-rendezvous context switch between one real goroutine per task
// (so exactly one of them ever executes application code at a time, and
// each one remains a stock, runtime-managed goroutine the rest of the
// time), and (in the sibling package loom/sync) a family of
// synchronization primitives built on the scheduler's blocking/waking
// discipline.
//
// There is no preemption and no parallelism: at any instant exactly one
// task runs, and it runs until it voluntarily yields, blocks on a
// primitive, or exits. This is the design's central bargain — the
// absence of preemption removes the need for locking around the
// scheduler's own state.
package loom
