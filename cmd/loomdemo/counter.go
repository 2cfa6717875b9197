package main

import (
	"fmt"

	"github.com/coglabs/loom"
	loomsync "github.com/coglabs/loom/sync"

	"github.com/coglabs/loom/internal/stats"
	"github.com/spf13/cobra"
)

func newCounterCmd() *cobra.Command {
	var tasks, iterations int

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Race-free shared counter guarded by a mutex",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := loom.New()
			mu := loomsync.NewMutex(rt)
			counter := 0
			perTaskFinal := make([]float64, 0, tasks)

			tids := make([]int64, 0, tasks)
			for i := 0; i < tasks; i++ {
				tid, err := rt.Create(func(arg any) any {
					mine := 0
					for j := 0; j < iterations; j++ {
						mu.Lock()
						counter++
						mu.Unlock()
						mine++
						rt.Yield()
					}
					return mine
				}, nil)
				if err != nil {
					return err
				}
				tids = append(tids, tid)
			}

			for _, tid := range tids {
				ret, err := rt.Join(tid)
				if err != nil {
					return err
				}
				perTaskFinal = append(perTaskFinal, float64(ret.(int)))
			}

			want := tasks * iterations
			fmt.Printf("counter: final=%d want=%d match=%v\n", counter, want, counter == want)

			if printStats {
				printSummary(stats.Summarize(stats.Sample{Label: "iterations-per-task", Values: perTaskFinal}))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&tasks, "tasks", 4, "number of concurrent incrementer tasks")
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "increments performed by each task")
	return cmd
}
