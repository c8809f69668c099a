// Package bees - invariant-preserving mutation operators.
//
// Both operators mutate a solution in place; the neighborhood search hands
// them deep copies, never population members. Neither operator can break
// feasibility:
//
//   - Truck reassignment does not touch the goods matrix, and both invariants
//     constrain only the goods matrix.
//   - A goods transfer moves at most the donor's held amount (rows stay
//     nonnegative) and at most the receiver's free space (rows stay within
//     capacity), and leaves every column total unchanged.
package bees

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/beeopt/cargo"
)

// MutateTruckAllocation reassigns one uniformly chosen truck to a uniformly
// chosen crossing. Always succeeds.
//
// Complexity: O(1).
func MutateTruckAllocation(sol cargo.Solution, s cargo.Settings, rng *rand.Rand) {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	sol.TruckAllocation[rng.Intn(s.Trucks)] = rng.Intn(s.Crossings)
}

// MutateGoodsAllocation transfers a random amount of one goods type from a
// donor truck to a receiver truck:
//
//  1. The receiver is uniform among trucks with free space > 0.
//  2. The goods type k is uniform over all types.
//  3. The donor is uniform among trucks holding a positive amount of k
//     (a positive holding is required so the transfer cannot degenerate to a
//     guaranteed zero move). Donor == receiver is permitted; such a transfer
//     is a harmless no-op.
//  4. The moved amount is uniform in [0, min(donor's holding, receiver's
//     free space)], which preserves both invariants exactly.
//
// Returns false - no mutation applied - when every truck is packed to
// capacity or no truck holds the chosen goods type.
//
// Complexity: O(p*m) for the free-space scan.
func MutateGoodsAllocation(sol cargo.Solution, s cargo.Settings, rng *rand.Rand) bool {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	goods := sol.GoodsAllocation

	// Receiver: any truck with slack.
	receivers := make([]int, 0, s.Trucks)
	free := make([]float64, s.Trucks)
	for t := 0; t < s.Trucks; t++ {
		free[t] = s.TruckCapacity - floats.Sum(goods.RawRowView(t))
		if free[t] > 0 {
			receivers = append(receivers, t)
		}
	}
	if len(receivers) == 0 {
		return false // capacity exactly saturated; nothing can move
	}
	receiver := receivers[rng.Intn(len(receivers))]

	// Goods type, then a donor actually holding it.
	k := rng.Intn(s.GoodsTypes)
	donors := make([]int, 0, s.Trucks)
	for t := 0; t < s.Trucks; t++ {
		if goods.At(t, k) > 0 {
			donors = append(donors, t)
		}
	}
	if len(donors) == 0 {
		return false // nobody carries this type (its required total is zero)
	}
	donor := donors[rng.Intn(len(donors))]

	amt := rng.Float64() * math.Min(goods.At(donor, k), free[receiver])
	goods.Set(donor, k, goods.At(donor, k)-amt)
	goods.Set(receiver, k, goods.At(receiver, k)+amt)

	return true
}

// MutateSolution applies goodsMutations goods transfers followed by
// truckMutations crossing reassignments, each on the cumulative result of the
// previous one.
func MutateSolution(sol cargo.Solution, s cargo.Settings, goodsMutations, truckMutations int, rng *rand.Rand) {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	for i := 0; i < goodsMutations; i++ {
		MutateGoodsAllocation(sol, s, rng)
	}
	for i := 0; i < truckMutations; i++ {
		MutateTruckAllocation(sol, s, rng)
	}
}
