// Package cargo - feasible random generation.
//
// This file seeds the solver: random crossing assignments are unconstrained,
// while random goods allocations must satisfy both invariants. Column sums are
// exact by construction (proportional split with last-row closure) and
// capacity overflows are repaired greedily; total overflow strictly decreases
// every repair step, so the loop terminates whenever the instance is feasible.
// A generous iteration budget turns any non-termination into
// ErrInvariantViolated instead of a hang.
package cargo

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// ensureRNG applies the nil policy: nil ⇒ a fixed deterministic stream.
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(defaultRNGSeed))
	}

	return rng
}

// RandomTruckAllocation draws an independent uniform crossing index in
// [0, Crossings) for each truck. Truck assignments are unconstrained, so the
// result is always admissible.
//
// Complexity: O(p).
func RandomTruckAllocation(s Settings, rng *rand.Rand) []int {
	rng = ensureRNG(rng)
	alloc := make([]int, s.Trucks)
	for t := range alloc {
		alloc[t] = rng.Intn(s.Crossings)
	}

	return alloc
}

// RandomGoodsAllocation draws a p×m nonnegative matrix satisfying both
// invariants:
//
//  1. Reject infeasible instances (total goods > fleet capacity) with
//     ErrInfeasibleInstance.
//  2. Split each goods type across trucks proportionally to fresh uniform
//     weights; the last truck takes the closure remainder so every column sum
//     matches its target exactly (I2 holds immediately and is preserved by
//     every later step).
//  3. Repair capacity violations: move the largest goods entry of the most
//     loaded truck to the least loaded truck, capped at the donor's excess,
//     until no truck exceeds capacity (restores I1; transfers never change
//     column sums, so I2 survives).
//  4. Exceeding the repair budget returns ErrInvariantViolated (defensive;
//     unreachable for feasible instances).
//
// Complexity: O(p*m) per repair step; the budget bounds total work.
func RandomGoodsAllocation(s Settings, rng *rand.Rand) (*mat.Dense, error) {
	// Stage 1: feasibility gate.
	if s.TotalCapacity() < s.TotalGoods() {
		return nil, ErrInfeasibleInstance
	}
	rng = ensureRNG(rng)

	p, m := s.Trucks, s.GoodsTypes
	alloc := mat.NewDense(p, m, nil)

	// Stage 2: exact proportional split per goods type.
	w := make([]float64, p)
	for k := 0; k < m; k++ {
		var sum float64
		for t := range w {
			w[t] = rng.Float64()
			sum += w[t]
		}
		if sum == 0 {
			// All weights zero is astronomically unlikely but cheap to handle:
			// fall back to an even split.
			for t := range w {
				w[t] = 1
			}
			sum = float64(p)
		}

		target := s.GoodsAmounts[k]
		var acc float64
		for t := 0; t < p-1; t++ {
			amt := target * w[t] / sum
			alloc.Set(t, k, amt)
			acc += amt
		}
		// Closure: the last truck absorbs rounding so the column sum is exact.
		alloc.Set(p-1, k, target-acc)
	}

	// Stage 3: greedy capacity repair. Row sums are maintained incrementally;
	// recomputing them per step would make each step O(p*m) for no benefit.
	loads := make([]float64, p)
	for t := 0; t < p; t++ {
		loads[t] = floats.Sum(alloc.RawRowView(t))
	}

	budget := 64 * p * m // generous; typical instances repair in a few steps
	for step := 0; ; step++ {
		donor := floats.MaxIdx(loads)
		if loads[donor] <= s.TruckCapacity {
			break // I1 restored
		}
		if step >= budget {
			return nil, ErrInvariantViolated
		}

		receiver := floats.MinIdx(loads)
		j := floats.MaxIdx(alloc.RawRowView(donor))
		amt := math.Min(alloc.At(donor, j), loads[donor]-s.TruckCapacity)

		alloc.Set(donor, j, alloc.At(donor, j)-amt)
		alloc.Set(receiver, j, alloc.At(receiver, j)+amt)
		loads[donor] -= amt
		loads[receiver] += amt
	}

	return alloc, nil
}

// RandomSolution combines RandomTruckAllocation and RandomGoodsAllocation and
// validates the result before returning it.
//
// Errors: ErrInfeasibleInstance for impossible instances;
// ErrInvariantViolated if the generated solution fails validation despite the
// repair step (a logic defect, treated as fatal).
func RandomSolution(s Settings, rng *rand.Rand) (Solution, error) {
	rng = ensureRNG(rng)

	goods, err := RandomGoodsAllocation(s, rng)
	if err != nil {
		return Solution{}, err
	}
	sol := Solution{
		TruckAllocation: RandomTruckAllocation(s, rng),
		GoodsAllocation: goods,
	}

	if !IsFeasible(sol, s) {
		return Solution{}, ErrInvariantViolated
	}

	return sol, nil
}

// RandomSettings draws a small random problem instance: handy for property
// tests and benchmarks. No feasibility guarantee is made - the drawn fleet may
// be too small for the drawn goods amounts, in which case RandomSolution
// reports ErrInfeasibleInstance and the caller should redraw.
func RandomSettings(rng *rand.Rand) Settings {
	rng = ensureRNG(rng)

	n := 2 + rng.Intn(9)   // crossings in [2, 10]
	m := 2 + rng.Intn(9)   // goods types in [2, 10]
	p := 2 + rng.Intn(9)   // trucks in [2, 10]
	v := 10 + rng.Intn(21) // capacity in [10, 30]

	duties := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < m; k++ {
			duties.Set(i, k, 0.1+rng.Float64()*9.9)
		}
	}
	distances := make([]float64, n)
	for i := range distances {
		distances[i] = 1 + rng.Float64()*49
	}
	amounts := make([]float64, m)
	for k := range amounts {
		amounts[k] = float64(1 + rng.Intn(19))
	}

	s, err := NewSettings(n, m, p, float64(v), 0.1+rng.Float64()*9.9, duties, distances, amounts)
	if err != nil {
		// All inputs are drawn within valid ranges; construction cannot fail.
		panic(err)
	}

	return s
}
