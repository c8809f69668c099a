// Package cargo - problem types, sentinel errors and validated construction.
//
// Design principles:
//   - Settings is immutable after NewSettings: inputs are deep-copied so later
//     mutation of caller slices cannot corrupt a running solver.
//   - Solution supports independent deep duplication (Clone) because the
//     neighborhood search explores several mutated copies without aliasing.
//   - Strict sentinels: construction and generation fail with errors from this
//     file; no fmt.Errorf wrapping in hot paths.
package cargo

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the cargo package.
var (
	// ErrNonPositiveParam indicates a count that must be >= 1 (crossings,
	// goods types, trucks) or a capacity that must be > 0.
	ErrNonPositiveParam = errors.New("cargo: counts must be >= 1 and truck capacity > 0")

	// ErrNegativeValue indicates a negative duty rate, distance, goods amount
	// or fuel cost; the model requires nonnegative reals throughout.
	ErrNegativeValue = errors.New("cargo: negative value where a nonnegative one is required")

	// ErrDimensionMismatch indicates that duties is not Crossings×GoodsTypes,
	// or that distances/goods amounts do not match the declared counts.
	ErrDimensionMismatch = errors.New("cargo: array dimensions do not match the declared counts")

	// ErrInfeasibleInstance indicates Trucks*TruckCapacity < sum(GoodsAmounts):
	// no allocation can satisfy both invariants, so generation is not attempted.
	ErrInfeasibleInstance = errors.New("cargo: total goods exceed total truck capacity")

	// ErrInvariantViolated indicates that a generated allocation failed the
	// feasibility check despite the repair step. It signals a logic defect and
	// should be unreachable in correct operation.
	ErrInvariantViolated = errors.New("cargo: generated allocation violates feasibility invariants")
)

// FeasibilityTol is the absolute tolerance used when comparing per-type totals
// (I2) and per-truck loads (I1) against their targets. Repeated goods transfers
// accumulate rounding error, so exact equality would reject valid solutions.
const FeasibilityTol = 1e-6

// Settings is an immutable problem instance.
//
// Shapes:
//   - Duties is Crossings×GoodsTypes (duty rate per crossing per goods type).
//   - Distances has length Crossings.
//   - GoodsAmounts has length GoodsTypes (required total per goods type).
type Settings struct {
	Crossings     int        // n - number of border crossings
	GoodsTypes    int        // m - number of distinct goods types
	Trucks        int        // p - number of trucks
	TruckCapacity float64    // v - uniform capacity per truck
	FuelCost      float64    // f - cost per unit distance
	Duties        *mat.Dense // c - n×m duty rates
	Distances     []float64  // d - distance to each crossing
	GoodsAmounts  []float64  // t - required amount per goods type
}

// NewSettings validates shapes and signs, deep-copies all array inputs and
// returns an immutable Settings value.
//
// Errors: ErrNonPositiveParam, ErrNegativeValue, ErrDimensionMismatch.
// Feasibility (total capacity vs. total goods) is deliberately NOT checked
// here; it is the generator's concern (ErrInfeasibleInstance).
//
// Complexity: O(n*m) time and space (dominated by the duties copy).
func NewSettings(
	crossings, goodsTypes, trucks int,
	truckCapacity, fuelCost float64,
	duties *mat.Dense,
	distances, goodsAmounts []float64,
) (Settings, error) {
	// Stage 1: scalar sanity.
	if crossings < 1 || goodsTypes < 1 || trucks < 1 || truckCapacity <= 0 {
		return Settings{}, ErrNonPositiveParam
	}
	if fuelCost < 0 {
		return Settings{}, ErrNegativeValue
	}

	// Stage 2: shapes.
	if duties == nil {
		return Settings{}, ErrDimensionMismatch
	}
	if r, c := duties.Dims(); r != crossings || c != goodsTypes {
		return Settings{}, ErrDimensionMismatch
	}
	if len(distances) != crossings || len(goodsAmounts) != goodsTypes {
		return Settings{}, ErrDimensionMismatch
	}

	// Stage 3: signs across all array entries.
	for i := 0; i < crossings; i++ {
		if distances[i] < 0 {
			return Settings{}, ErrNegativeValue
		}
		if floats.Min(duties.RawRowView(i)) < 0 {
			return Settings{}, ErrNegativeValue
		}
	}
	for k := 0; k < goodsTypes; k++ {
		if goodsAmounts[k] < 0 {
			return Settings{}, ErrNegativeValue
		}
	}

	// Stage 4: defensive deep copies so the instance is truly immutable.
	s := Settings{
		Crossings:     crossings,
		GoodsTypes:    goodsTypes,
		Trucks:        trucks,
		TruckCapacity: truckCapacity,
		FuelCost:      fuelCost,
		Duties:        mat.DenseCopyOf(duties),
		Distances:     append([]float64(nil), distances...),
		GoodsAmounts:  append([]float64(nil), goodsAmounts...),
	}

	return s, nil
}

// TotalGoods returns the sum of all required goods amounts.
func (s Settings) TotalGoods() float64 { return floats.Sum(s.GoodsAmounts) }

// TotalCapacity returns the combined capacity of the fleet.
func (s Settings) TotalCapacity() float64 { return float64(s.Trucks) * s.TruckCapacity }

// Solution is a mutable candidate assignment.
//
// Shapes:
//   - TruckAllocation has length Trucks; entries are crossing indices in [0, Crossings).
//   - GoodsAllocation is Trucks×GoodsTypes; entry (t, k) is the amount of
//     goods type k carried by truck t.
type Solution struct {
	TruckAllocation []int      // a - crossing per truck
	GoodsAllocation *mat.Dense // b - p×m goods distribution
}

// Clone returns a deep copy sharing no storage with the receiver.
//
// Complexity: O(p*m).
func (s Solution) Clone() Solution {
	return Solution{
		TruckAllocation: append([]int(nil), s.TruckAllocation...),
		GoodsAllocation: mat.DenseCopyOf(s.GoodsAllocation),
	}
}
