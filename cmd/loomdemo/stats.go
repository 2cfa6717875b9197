package main

import (
	"fmt"

	"github.com/coglabs/loom/internal/stats"
)

func printSummary(s stats.Summary) {
	if s.Count == 0 {
		fmt.Printf("stats(%s): no samples\n", s.Label)
		return
	}
	fmt.Printf("stats(%s): n=%d mean=%.2f variance=%.2f stddev=%.2f min=%.2f max=%.2f\n",
		s.Label, s.Count, s.Mean, s.Variance, s.StdDev, s.Min, s.Max)
}
