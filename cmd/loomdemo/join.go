package main

import (
	"fmt"

	"github.com/coglabs/loom"
	"github.com/spf13/cobra"
)

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join",
		Short: "Create one task and join it, printing its return value",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := loom.New()

			tid, err := rt.Create(func(arg any) any {
				sum := 0
				for i := 1; i <= 10; i++ {
					sum += i
					rt.Yield()
				}
				return sum
			}, nil)
			if err != nil {
				return err
			}

			ret, err := rt.Join(tid)
			if err != nil {
				return err
			}
			fmt.Printf("join: task %d returned %v\n", tid, ret)
			return nil
		},
	}
}
