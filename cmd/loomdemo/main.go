// Command loomdemo runs the cooperative runtime through the scenarios
// its synchronization primitives are meant to make safe: a race-free
// shared counter, a basic join, bounded-buffer producers/consumers over
// both a semaphore pair and a channel, a writer-priority reader/writer
// lock, and a condition-variable broadcast. Each subcommand builds one
// loom.Runtime, runs its scenario to completion, and prints a short
// summary (one line for the scenarios; validate also lists each cycle).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var printStats bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "loomdemo",
		Short: "Run cooperative-scheduler demonstration scenarios",
		Long: `loomdemo drives a loom.Runtime through a fixed set of scenarios and
prints what happened. There is no daemon mode, no config file, and no
network surface; each subcommand runs once and exits.`,
	}

	root.PersistentFlags().BoolVar(&printStats, "stats", false, "print internal/stats summary after the scenario")

	root.AddCommand(
		newCounterCmd(),
		newJoinCmd(),
		newProducerConsumerSemCmd(),
		newProducerConsumerChanCmd(),
		newReadersWritersCmd(),
		newBroadcastCmd(),
		newValidateCmd(),
	)
	return root
}
