// Package bench runs repeated trials of an ismcts-driven agent and
// summarizes the resulting payoffs.
package bench

import (
	"sync"

	"gonum.org/v1/gonum/stat"
)

// TrialSummary aggregates the payoffs observed across a batch of trials.
type TrialSummary struct {
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// RunTrials runs trial n times sequentially and summarizes the returned
// payoffs. trial is expected to play a full game (or hand) to completion
// and return the payoff from the perspective being measured.
func RunTrials(n int, trial func() float64) TrialSummary {
	payoffs := make([]float64, n)
	for i := 0; i < n; i++ {
		payoffs[i] = trial()
	}
	return summarize(payoffs)
}

// RunTrialsConcurrent splits n trials across threads goroutines. Each
// trial is independent and only writes its payoff to its own index of a
// shared slice; workers cover disjoint index ranges, and the slice is
// summarized once every worker finishes - there is no shared match state
// between trials.
func RunTrialsConcurrent(threads, n int, trial func() float64) TrialSummary {
	if threads <= 0 {
		threads = 1
	}
	if threads > n {
		threads = n
	}

	payoffs := make([]float64, n)
	base := n / threads
	remainder := n % threads

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < threads; w++ {
		count := base
		if w < remainder {
			count++
		}
		lo, hi := start, start+count
		start = hi

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				payoffs[i] = trial()
			}
		}(lo, hi)
	}
	wg.Wait()

	return summarize(payoffs)
}

func summarize(payoffs []float64) TrialSummary {
	if len(payoffs) == 0 {
		return TrialSummary{}
	}

	mean, variance := stat.MeanVariance(payoffs, nil)
	min, max := payoffs[0], payoffs[0]
	for _, p := range payoffs[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	return TrialSummary{
		N:        len(payoffs),
		Mean:     mean,
		Variance: variance,
		StdDev:   stat.StdDev(payoffs, nil),
		Min:      min,
		Max:      max,
	}
}
