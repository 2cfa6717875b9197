//go:build !loomtrace

package loom

func traceTransition(tid int64, from, to state) {}
