package main

import (
	"fmt"

	"github.com/coglabs/loom"
	loomsync "github.com/coglabs/loom/sync"

	"github.com/spf13/cobra"
)

func newBroadcastCmd() *cobra.Command {
	var waiters int

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Wake every waiter on a condition variable at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := loom.New()
			mu := loomsync.NewMutex(rt)
			cond := loomsync.NewCond(rt, mu)
			ready := false
			woken := 0

			var tids []int64
			for i := 0; i < waiters; i++ {
				tid, err := rt.Create(func(arg any) any {
					mu.Lock()
					for !ready {
						cond.Wait()
					}
					woken++
					mu.Unlock()
					return nil
				}, nil)
				if err != nil {
					return err
				}
				tids = append(tids, tid)
			}

			announcer, err := rt.Create(func(arg any) any {
				mu.Lock()
				ready = true
				cond.Broadcast()
				mu.Unlock()
				return nil
			}, nil)
			if err != nil {
				return err
			}

			if _, err := rt.Join(announcer); err != nil {
				return err
			}
			for _, tid := range tids {
				if _, err := rt.Join(tid); err != nil {
					return err
				}
			}

			fmt.Printf("broadcast: %d/%d waiters woken\n", woken, waiters)
			return nil
		},
	}

	cmd.Flags().IntVar(&waiters, "waiters", 5, "number of tasks waiting on the condition variable")
	return cmd
}
