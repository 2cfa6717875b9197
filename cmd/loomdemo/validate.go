package main

import (
	"fmt"

	"github.com/coglabs/loom/internal/fsmgraph"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the lifecycle state machine's transition table and cycle structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			cycles := fsmgraph.Cycles()
			fmt.Printf("validate: lifecycle graph has %d cycle(s):\n", len(cycles))
			for _, cycle := range cycles {
				fmt.Printf("  %v\n", cycle)
			}

			sample := []fsmgraph.Transition{
				{From: fsmgraph.Unused, To: fsmgraph.Runnable},
				{From: fsmgraph.Runnable, To: fsmgraph.Running},
				{From: fsmgraph.Running, To: fsmgraph.Sleeping},
				{From: fsmgraph.Sleeping, To: fsmgraph.Runnable},
				{From: fsmgraph.Runnable, To: fsmgraph.Running},
				{From: fsmgraph.Running, To: fsmgraph.Zombie},
				{From: fsmgraph.Zombie, To: fsmgraph.Unused},
			}
			if err := fsmgraph.Validate(sample); err != nil {
				return err
			}
			fmt.Printf("validate: sample transition sequence is licensed; states touched: %v\n",
				fsmgraph.StatesObserved(sample))
			return nil
		},
	}
}
