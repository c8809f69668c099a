package bees_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/beeopt/bees"
	"github.com/katalvlaran/beeopt/cargo"
)

func TestNew_RejectsBadConfig(t *testing.T) {
	s := exampleSettings(t)
	cfg := bees.DefaultConfig()
	cfg.EliteSites = 8
	cfg.NormalSites = 8 // 16 sites in a population of 10

	_, err := bees.New(s, cfg)
	require.ErrorIs(t, err, bees.ErrBadConfig)
}

func TestFindBestSolution_NilStop(t *testing.T) {
	sv, err := bees.New(exampleSettings(t), bees.DefaultConfig())
	require.NoError(t, err)

	_, err = sv.FindBestSolution(nil)
	require.ErrorIs(t, err, bees.ErrNilStopCondition)
}

func TestFindBestSolution_InfeasibleInstance(t *testing.T) {
	s, err := cargo.NewSettings(
		1, 1, 2,
		5, 1,
		mat.NewDense(1, 1, []float64{1}),
		[]float64{1},
		[]float64{20}, // 2×5 = 10 < 20
	)
	require.NoError(t, err)

	_, err = bees.FindBestSolution(s, bees.DefaultConfig(), bees.StopAfterGenerations(10))
	require.ErrorIs(t, err, cargo.ErrInfeasibleInstance)
}

// Reference scenario: 1000 generations on the documented instance must end in
// a feasible, finite solution no worse than a single-generation run from the
// same seed (the best-known cost never increases).
func TestFindBestSolution_ReferenceScenario(t *testing.T) {
	s := exampleSettings(t)
	cfg := bees.DefaultConfig()
	cfg.Seed = 1234

	short, err := bees.FindBestSolution(s, cfg, bees.StopAfterGenerations(1))
	require.NoError(t, err)

	long, err := bees.FindBestSolution(s, cfg, bees.StopAfterGenerations(1000))
	require.NoError(t, err)

	require.True(t, cargo.IsFeasible(long.Best, s))
	require.False(t, math.IsInf(long.Cost, 0) || math.IsNaN(long.Cost))
	require.LessOrEqual(t, long.Cost, short.Cost)
	require.Equal(t, 1000, long.Generations)
	require.InDelta(t, cargo.Cost(long.Best, s), long.Cost, 1e-9)
}

// The best-known cost is non-increasing across generations whenever at least
// one elite site is configured: site 0 always competes against its unmutated
// self. Observed through the stop condition, which sees every transition.
func TestFindBestSolution_BestCostMonotone(t *testing.T) {
	s := exampleSettings(t)
	cfg := bees.DefaultConfig()
	cfg.Seed = 99

	observed := 0
	stop := func(generation int, prevBest, curBest float64) bool {
		require.LessOrEqual(t, curBest, prevBest,
			"best cost rose on generation %d", generation)
		observed++

		return generation >= 200
	}

	_, err := bees.FindBestSolution(s, cfg, stop)
	require.NoError(t, err)
	require.Equal(t, 200, observed)
}

func TestFindBestSolution_DeterministicPerSeed(t *testing.T) {
	s := exampleSettings(t)
	cfg := bees.DefaultConfig()
	cfg.Seed = 7

	a, err := bees.FindBestSolution(s, cfg, bees.StopAfterGenerations(50))
	require.NoError(t, err)
	b, err := bees.FindBestSolution(s, cfg, bees.StopAfterGenerations(50))
	require.NoError(t, err)

	require.InDelta(t, a.Cost, b.Cost, 0)
	require.Equal(t, a.Evaluations, b.Evaluations)
	require.Equal(t, a.Best.TruckAllocation, b.Best.TruckAllocation)
	require.True(t, mat.EqualApprox(a.Best.GoodsAllocation, b.Best.GoodsAllocation, 0))
}

func TestStopBelowDelta_StopsOnStall(t *testing.T) {
	s := exampleSettings(t)
	cfg := bees.DefaultConfig()
	cfg.Seed = 3

	// A huge delta is never beaten by one generation's improvement, so the
	// run stops immediately.
	res, err := bees.FindBestSolution(s, cfg, bees.StopBelowDelta(math.MaxFloat64))
	require.NoError(t, err)
	require.Equal(t, 1, res.Generations)

	// A tiny delta stops on the first generation with (practically) no
	// improvement; plateaus are inevitable under tie-preserving selection, so
	// the run terminates.
	res, err = bees.FindBestSolution(s, cfg, bees.StopBelowDelta(1e-9))
	require.NoError(t, err)
	require.True(t, cargo.IsFeasible(res.Best, s))
}

func TestStopAfterGenerations_ExactBudget(t *testing.T) {
	s := exampleSettings(t)

	res, err := bees.FindBestSolution(s, bees.DefaultConfig(), bees.StopAfterGenerations(17))
	require.NoError(t, err)
	require.Equal(t, 17, res.Generations)
}
