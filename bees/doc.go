// Package bees implements the bees algorithm over the cargo problem model.
//
// The solver maintains a population of feasible solutions sorted by cost.
// Each generation:
//
//   - Elite sites: the best EliteSites solutions are each replaced by the best
//     of EliteSiteSize mutated neighbors (or kept, if no neighbor improves).
//   - Normal sites: the next NormalSites solutions get the same treatment with
//     the smaller NormalSiteSize neighborhood.
//   - Scouts: every remaining slot is refreshed with a fresh feasible random
//     solution, keeping exploration alive.
//
// Neighbors are produced by invariant-preserving mutations: moving a random
// amount of one goods type between trucks, and reassigning a random truck to
// a random crossing. Because site 0 always competes against its own unmutated
// copy, the best-known cost is non-increasing across generations.
//
// Termination is a StopCondition value observing (generation, previous best,
// current best); iteration budgets and convergence deltas ship as standard
// strategies. This is a local-search heuristic with no global-optimality
// guarantee.
//
// Single-threaded by design: the population is owned exclusively by the loop
// and all randomness flows through one explicit, seedable *rand.Rand.
package bees
