package bees

// StopCondition decides after every generation whether the solver should
// terminate. generation counts completed steps starting at 1; previousBest and
// currentBest are the best-known costs before and after the step.
type StopCondition func(generation int, previousBest, currentBest float64) bool

// StopAfterGenerations terminates once n generations have completed.
// n <= 0 stops after the first generation.
func StopAfterGenerations(n int) StopCondition {
	return func(generation int, _, _ float64) bool {
		return generation >= n
	}
}

// StopBelowDelta terminates once a generation improves the best-known cost by
// less than delta. Because the best-known cost is non-increasing, this fires
// exactly when improvement stalls - possibly on the very first generation if
// the initial population was already near a local optimum.
func StopBelowDelta(delta float64) StopCondition {
	return func(_ int, previousBest, currentBest float64) bool {
		return previousBest-currentBest < delta
	}
}
