package main

import (
	"fmt"

	"github.com/coglabs/loom"
	loomsync "github.com/coglabs/loom/sync"

	"github.com/spf13/cobra"
)

func newProducerConsumerChanCmd() *cobra.Command {
	var capacity, producers, items, consumers int

	cmd := &cobra.Command{
		Use:   "producer-consumer-chan",
		Short: "Bounded buffer coordinated with a channel instead of semaphores",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := loom.New()
			ch := loomsync.NewChan(rt, capacity)

			totalItems := producers * items
			var producerTids []int64
			for p := 0; p < producers; p++ {
				tid, err := rt.Create(func(arg any) any {
					for i := 0; i < items; i++ {
						if err := ch.Send(i); err != nil {
							return 0
						}
					}
					return items
				}, nil)
				if err != nil {
					return err
				}
				producerTids = append(producerTids, tid)
			}

			var closerTid int64
			closerTid, err := rt.Create(func(arg any) any {
				for _, tid := range producerTids {
					rt.Join(tid)
				}
				ch.Close()
				return nil
			}, nil)
			if err != nil {
				return err
			}

			var consumerTids []int64
			for c := 0; c < consumers; c++ {
				tid, err := rt.Create(func(arg any) any {
					got := 0
					for {
						_, ok := ch.Recv()
						if !ok {
							break
						}
						got++
					}
					return got
				}, nil)
				if err != nil {
					return err
				}
				consumerTids = append(consumerTids, tid)
			}

			if _, err := rt.Join(closerTid); err != nil {
				return err
			}
			consumedTotal := 0
			for _, tid := range consumerTids {
				ret, err := rt.Join(tid)
				if err != nil {
					return err
				}
				consumedTotal += ret.(int)
			}

			fmt.Printf("producer-consumer-chan: produced=%d consumed=%d match=%v\n",
				totalItems, consumedTotal, totalItems == consumedTotal)
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 4, "channel capacity")
	cmd.Flags().IntVar(&producers, "producers", 2, "number of producer tasks")
	cmd.Flags().IntVar(&items, "items", 20, "items produced by each producer")
	cmd.Flags().IntVar(&consumers, "consumers", 2, "number of consumer tasks")
	return cmd
}
