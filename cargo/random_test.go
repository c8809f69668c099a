package cargo_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/beeopt/cargo"
)

func TestRandomTruckAllocation_InRange(t *testing.T) {
	s := smallSettings(t)
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 100; trial++ {
		alloc := cargo.RandomTruckAllocation(s, rng)
		require.Len(t, alloc, s.Trucks)
		for _, c := range alloc {
			require.GreaterOrEqual(t, c, 0)
			require.Less(t, c, s.Crossings)
		}
	}
}

// Property: every generated solution satisfies both invariants, across many
// randomized instances and seeds.
func TestRandomSolution_AlwaysFeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	feasibleDraws := 0
	for trial := 0; trial < 200; trial++ {
		s := cargo.RandomSettings(rng)

		sol, err := cargo.RandomSolution(s, rng)
		if err != nil {
			// The random instance may genuinely exceed fleet capacity; that
			// is the only acceptable failure here.
			require.ErrorIs(t, err, cargo.ErrInfeasibleInstance)
			require.Greater(t, s.TotalGoods(), s.TotalCapacity())

			continue
		}
		feasibleDraws++

		require.True(t, cargo.ValidateTruckCapacity(sol, s), "I1 violated on trial %d", trial)
		require.True(t, cargo.ValidateGoodsTotal(sol, s), "I2 violated on trial %d", trial)
	}

	// The ranges in RandomSettings make feasible instances common; if none
	// showed up, the generator itself is suspect.
	require.NotZero(t, feasibleDraws)
}

// A tight instance (total goods == fleet capacity) forces the repair loop to
// pack every truck exactly; the result must still be feasible.
func TestRandomGoodsAllocation_SaturatedInstance(t *testing.T) {
	s, err := cargo.NewSettings(
		2, 1, 2,
		5, 1,
		mat.NewDense(2, 1, []float64{1, 2}),
		[]float64{1, 2},
		[]float64{10}, // exactly 2 trucks × capacity 5
	)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		goods, gerr := cargo.RandomGoodsAllocation(s, rng)
		require.NoError(t, gerr)

		sol := cargo.Solution{TruckAllocation: []int{0, 0}, GoodsAllocation: goods}
		require.True(t, cargo.IsFeasible(sol, s))
	}
}

func TestRandomGoodsAllocation_InfeasibleInstance(t *testing.T) {
	// 2 trucks × capacity 5 = 10 < 20 required.
	s, err := cargo.NewSettings(
		1, 1, 2,
		5, 1,
		mat.NewDense(1, 1, []float64{1}),
		[]float64{1},
		[]float64{20},
	)
	require.NoError(t, err)

	_, err = cargo.RandomGoodsAllocation(s, nil)
	require.ErrorIs(t, err, cargo.ErrInfeasibleInstance)

	_, err = cargo.RandomSolution(s, nil)
	require.ErrorIs(t, err, cargo.ErrInfeasibleInstance)
}

// Nil RNG selects a fixed stream: two nil-RNG draws must coincide.
func TestRandomSolution_NilRNGDeterministic(t *testing.T) {
	s := smallSettings(t)

	a, err := cargo.RandomSolution(s, nil)
	require.NoError(t, err)
	b, err := cargo.RandomSolution(s, nil)
	require.NoError(t, err)

	require.Equal(t, a.TruckAllocation, b.TruckAllocation)
	require.True(t, mat.EqualApprox(a.GoodsAllocation, b.GoodsAllocation, 0))
}
