package cargo

import "gonum.org/v1/gonum/floats"

// Cost scores a solution: every truck pays duty on its cargo at its assigned
// crossing's rates, plus fuel for the distance to that crossing. Lower is
// better. Pure and deterministic; feasibility is a caller precondition.
//
//	cost = Σ_t ⟨goods[t], duties[a[t]]⟩ + f · d[a[t]]
//
// Complexity: O(p*m) time, O(1) space.
func Cost(sol Solution, s Settings) float64 {
	var total float64
	for t, c := range sol.TruckAllocation {
		total += floats.Dot(sol.GoodsAllocation.RawRowView(t), s.Duties.RawRowView(c))
		total += s.FuelCost * s.Distances[c]
	}

	return total
}
