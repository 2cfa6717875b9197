// Package stats summarizes per-run measurements collected by the demo
// CLI: increments per task, buffer occupancy after each put and take,
// and the number of waiting writers seen at each read. None of it is
// consulted by the scheduler
// itself — it exists purely so loomdemo has something concrete to print
// after a scenario finishes.
package stats

import "gonum.org/v1/gonum/stat"

// Sample is one scenario's collected measurements, in whatever unit the
// caller chooses to record (loomdemo records plain counts).
type Sample struct {
	Label  string
	Values []float64
}

// Summary is the descriptive statistics computed from a Sample.
type Summary struct {
	Label    string
	Count    int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarize computes Summary for s. An empty Sample yields a zero
// Summary with Count 0.
func Summarize(s Sample) Summary {
	if len(s.Values) == 0 {
		return Summary{Label: s.Label}
	}

	mean := stat.Mean(s.Values, nil)
	variance := stat.Variance(s.Values, nil)
	std := stat.StdDev(s.Values, nil)
	min, max := s.Values[0], s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return Summary{
		Label:    s.Label,
		Count:    len(s.Values),
		Mean:     mean,
		Variance: variance,
		StdDev:   std,
		Min:      min,
		Max:      max,
	}
}

// Correlation reports the Pearson correlation between two equal-length
// samples. It returns 0 when the lengths differ or there are fewer than
// two values. loomdemo does not call it.
func Correlation(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}
	return stat.Correlation(a, b, nil)
}
