package loom

import "errors"

var (
	// ErrOutOfSlots is returned by Create when the thread table has no
	// Unused slot left.
	ErrOutOfSlots = errors.New("loom: thread table full")

	// ErrNoSuchTask is returned by Join when no slot holds the given tid.
	ErrNoSuchTask = errors.New("loom: no such task")
)
