package bees

import (
	"errors"

	"github.com/katalvlaran/beeopt/cargo"
)

// Sentinel errors returned by the bees package.
var (
	// ErrBadConfig indicates an invalid solver configuration (non-positive
	// sizes, or elite + normal sites exceeding the population).
	ErrBadConfig = errors.New("bees: invalid solver configuration")

	// ErrNilStopCondition indicates that FindBestSolution was given no
	// termination strategy; the loop would never stop.
	ErrNilStopCondition = errors.New("bees: stop condition must not be nil")
)

// Result holds the outcome of a solver run.
type Result struct {
	// Best is the cheapest feasible solution found (population index 0 at
	// termination).
	Best cargo.Solution

	// Cost is Best's cost under the problem settings.
	Cost float64

	// Generations is the number of completed generation steps.
	Generations int

	// Evaluations counts cost-function calls across the whole run.
	Evaluations int
}
