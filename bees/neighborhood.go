package bees

import (
	"math/rand"

	"github.com/katalvlaran/beeopt/cargo"
)

// FindBestNeighbour explores the neighborhood of sol: it creates neighbours
// independent deep copies, mutates each with MutateSolution (independent
// random draws), and returns the cheapest candidate together with its cost
// and the number of cost evaluations performed.
//
// Tie-break: the unmutated original wins exact-cost ties. It is evaluated
// first as the incumbent, and a neighbor replaces it only when strictly
// cheaper. This keeps the site stable under plateaus and makes the best-known
// cost trivially non-increasing.
//
// The input solution is never mutated; only its copies are.
//
// Complexity: O(neighbours * p * m).
func FindBestNeighbour(
	sol cargo.Solution,
	neighbours int,
	s cargo.Settings,
	goodsMutations, truckMutations int,
	rng *rand.Rand,
) (cargo.Solution, float64, int) {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	best := sol
	bestCost := cargo.Cost(sol, s)
	evals := 1

	for i := 0; i < neighbours; i++ {
		cand := sol.Clone()
		MutateSolution(cand, s, goodsMutations, truckMutations, rng)

		c := cargo.Cost(cand, s)
		evals++
		if c < bestCost {
			best = cand
			bestCost = c
		}
	}

	return best, bestCost, evals
}
