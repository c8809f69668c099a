package cargo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ValidateTruckCapacity reports invariant (I1): every truck carries at most
// TruckCapacity in total, within FeasibilityTol.
//
// Complexity: O(p*m).
func ValidateTruckCapacity(sol Solution, s Settings) bool {
	for t := 0; t < s.Trucks; t++ {
		if floats.Sum(sol.GoodsAllocation.RawRowView(t)) > s.TruckCapacity+FeasibilityTol {
			return false
		}
	}

	return true
}

// ValidateGoodsTotal reports invariant (I2): for every goods type, the amount
// carried across the fleet equals the required total, within FeasibilityTol.
//
// Complexity: O(p*m).
func ValidateGoodsTotal(sol Solution, s Settings) bool {
	col := make([]float64, s.Trucks)
	for k := 0; k < s.GoodsTypes; k++ {
		mat.Col(col, k, sol.GoodsAllocation)
		if math.Abs(floats.Sum(col)-s.GoodsAmounts[k]) > FeasibilityTol {
			return false
		}
	}

	return true
}

// IsFeasible reports whether both invariants (I1, I2) hold. Idempotent and
// side-effect free.
func IsFeasible(sol Solution, s Settings) bool {
	return ValidateTruckCapacity(sol, s) && ValidateGoodsTotal(sol, s)
}
