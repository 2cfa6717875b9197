package main

import (
	"fmt"

	"github.com/coglabs/loom"
	loomsync "github.com/coglabs/loom/sync"

	"github.com/coglabs/loom/internal/stats"
	"github.com/spf13/cobra"
)

func newReadersWritersCmd() *cobra.Command {
	var readers, writers, reads, writes int

	cmd := &cobra.Command{
		Use:   "readers-writers",
		Short: "Writer-priority reader/writer lock built on Mutex and Cond",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := loom.New()
			lock := loomsync.NewRWLock(rt)
			shared := 0
			var waitSamples []float64

			var tids []int64
			for r := 0; r < readers; r++ {
				tid, err := rt.Create(func(arg any) any {
					seen := 0
					for i := 0; i < reads; i++ {
						lock.RLock()
						seen += shared
						waitSamples = append(waitSamples, float64(lock.WaitingWriters()))
						lock.RUnlock()
						rt.Yield()
					}
					return seen
				}, nil)
				if err != nil {
					return err
				}
				tids = append(tids, tid)
			}
			for w := 0; w < writers; w++ {
				tid, err := rt.Create(func(arg any) any {
					for i := 0; i < writes; i++ {
						lock.Lock()
						shared++
						lock.Unlock()
						rt.Yield()
					}
					return writes
				}, nil)
				if err != nil {
					return err
				}
				tids = append(tids, tid)
			}

			for _, tid := range tids {
				if _, err := rt.Join(tid); err != nil {
					return err
				}
			}

			fmt.Printf("readers-writers: final shared value=%d (writers=%d writes=%d)\n",
				shared, writers, writes)

			if printStats {
				printSummary(stats.Summarize(stats.Sample{Label: "waiting-writers-at-read", Values: waitSamples}))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&readers, "readers", 3, "number of reader tasks")
	cmd.Flags().IntVar(&writers, "writers", 2, "number of writer tasks")
	cmd.Flags().IntVar(&reads, "reads", 10, "reads performed by each reader")
	cmd.Flags().IntVar(&writes, "writes", 10, "writes performed by each writer")
	return cmd
}
