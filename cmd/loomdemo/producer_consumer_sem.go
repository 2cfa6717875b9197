package main

import (
	"fmt"

	"github.com/coglabs/loom"
	loomsync "github.com/coglabs/loom/sync"

	"github.com/coglabs/loom/internal/stats"
	"github.com/spf13/cobra"
)

// semBuffer is a fixed-capacity ring buffer of ints guarded by a mutex
// plus the classic pair of counting semaphores: emptySlots tracks how
// many slots may still be written, fullSlots how many hold a value
// ready to read.
type semBuffer struct {
	mu         *loomsync.Mutex
	emptySlots *loomsync.Semaphore
	fullSlots  *loomsync.Semaphore
	buf        []int
	read       int
	write      int
	occupancy  []float64
}

func newSemBuffer(rt *loom.Runtime, capacity int) *semBuffer {
	return &semBuffer{
		mu:         loomsync.NewMutex(rt),
		emptySlots: loomsync.NewSemaphore(rt, capacity),
		fullSlots:  loomsync.NewSemaphore(rt, 0),
		buf:        make([]int, capacity),
	}
}

func (b *semBuffer) put(v int) {
	b.emptySlots.Wait()
	b.mu.Lock()
	b.buf[b.write] = v
	b.write = (b.write + 1) % len(b.buf)
	n := b.occupied()
	if n == 0 {
		// write has caught up with read right after a put: the ring is full.
		n = len(b.buf)
	}
	b.occupancy = append(b.occupancy, float64(n))
	b.mu.Unlock()
	b.fullSlots.Post()
}

func (b *semBuffer) take() int {
	b.fullSlots.Wait()
	b.mu.Lock()
	v := b.buf[b.read]
	b.read = (b.read + 1) % len(b.buf)
	b.occupancy = append(b.occupancy, float64(b.occupied()))
	b.mu.Unlock()
	b.emptySlots.Post()
	return v
}

func (b *semBuffer) occupied() int {
	if b.write >= b.read {
		return b.write - b.read
	}
	return len(b.buf) - b.read + b.write
}

func newProducerConsumerSemCmd() *cobra.Command {
	var capacity, producers, items, consumers int

	cmd := &cobra.Command{
		Use:   "producer-consumer-sem",
		Short: "Bounded buffer coordinated with two counting semaphores",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := loom.New()
			buf := newSemBuffer(rt, capacity)

			totalItems := producers * items
			var producerTids []int64
			for p := 0; p < producers; p++ {
				tid, err := rt.Create(func(arg any) any {
					for i := 0; i < items; i++ {
						buf.put(i)
					}
					return items
				}, nil)
				if err != nil {
					return err
				}
				producerTids = append(producerTids, tid)
			}

			var consumerTids []int64
			remaining := totalItems
			base := remaining / consumers
			extra := remaining % consumers
			for c := 0; c < consumers; c++ {
				n := base
				if c < extra {
					n++
				}
				tid, err := rt.Create(func(arg any) any {
					got := 0
					for i := 0; i < n; i++ {
						buf.take()
						got++
					}
					return got
				}, nil)
				if err != nil {
					return err
				}
				consumerTids = append(consumerTids, tid)
			}

			for _, tid := range producerTids {
				if _, err := rt.Join(tid); err != nil {
					return err
				}
			}
			consumedTotal := 0
			for _, tid := range consumerTids {
				ret, err := rt.Join(tid)
				if err != nil {
					return err
				}
				consumedTotal += ret.(int)
			}

			fmt.Printf("producer-consumer-sem: produced=%d consumed=%d match=%v\n",
				totalItems, consumedTotal, totalItems == consumedTotal)

			if printStats {
				printSummary(stats.Summarize(stats.Sample{Label: "buffer-occupancy", Values: buf.occupancy}))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 4, "buffer capacity")
	cmd.Flags().IntVar(&producers, "producers", 2, "number of producer tasks")
	cmd.Flags().IntVar(&items, "items", 20, "items produced by each producer")
	cmd.Flags().IntVar(&consumers, "consumers", 2, "number of consumer tasks")
	return cmd
}
