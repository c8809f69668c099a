// Package bees - the population loop.
//
// Lifecycle: a Solver is configured once (New), seeds its population lazily on
// the first FindBestSolution call, then loops sort → elite sites → normal
// sites → scouts until the stop condition fires. The population slices are the
// only long-lived mutable state and are owned exclusively by the running loop;
// results are deep-copied out.
package bees

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/beeopt/cargo"
)

// Solver runs the bees algorithm on a fixed problem instance.
type Solver struct {
	settings cargo.Settings
	cfg      Config
	rng      *rand.Rand
}

// New validates cfg and returns a solver bound to the given instance.
// The RNG is derived from cfg.Seed (0 ⇒ fixed default stream).
func New(settings cargo.Settings, cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Solver{settings: settings, cfg: cfg, rng: rngFromSeed(cfg.Seed)}, nil
}

// FindBestSolution seeds a fresh population and iterates generations until
// stop returns true, then returns a deep copy of the best solution found.
//
// One generation step:
//
//	1. Rank the population by ascending cost.
//	2. Replace each of the first EliteSites entries with the best of
//	   EliteSiteSize mutated neighbors (FindBestNeighbour keeps the original
//	   on ties, so rank-0 cost never increases).
//	3. Same for the next NormalSites entries with NormalSiteSize neighbors.
//	4. Refresh every remaining entry with a fresh feasible random solution.
//
// Errors: ErrNilStopCondition; cargo.ErrInfeasibleInstance when the instance
// admits no feasible allocation; cargo.ErrInvariantViolated on generator
// defects. No partial result accompanies an error.
//
// Complexity per generation:
// O(pop·log pop + (elite·eliteSize + normal·normalSize + scouts)·p·m).
func (sv *Solver) FindBestSolution(stop StopCondition) (Result, error) {
	if stop == nil {
		return Result{}, ErrNilStopCondition
	}

	var (
		cfg   = sv.cfg
		pop   = make([]cargo.Solution, cfg.PopulationSize)
		costs = make([]float64, cfg.PopulationSize)
		evals int
		err   error
	)

	// Seeding: PopulationSize independent feasible draws.
	for i := range pop {
		if pop[i], err = cargo.RandomSolution(sv.settings, sv.rng); err != nil {
			return Result{}, err
		}
		costs[i] = cargo.Cost(pop[i], sv.settings)
		evals++
	}
	sortPopulation(pop, costs)

	var (
		prevBest   = costs[0]
		generation int
	)
	for {
		generation++

		// Elite sites: large neighborhoods around the current leaders.
		var siteEvals int
		for i := 0; i < cfg.EliteSites; i++ {
			pop[i], costs[i], siteEvals = FindBestNeighbour(
				pop[i], cfg.EliteSiteSize, sv.settings,
				cfg.GoodsMutations, cfg.TrucksMutations, sv.rng,
			)
			evals += siteEvals
		}

		// Normal sites: smaller neighborhoods for the next ranks.
		for i := cfg.EliteSites; i < cfg.EliteSites+cfg.NormalSites; i++ {
			pop[i], costs[i], siteEvals = FindBestNeighbour(
				pop[i], cfg.NormalSiteSize, sv.settings,
				cfg.GoodsMutations, cfg.TrucksMutations, sv.rng,
			)
			evals += siteEvals
		}

		// Scouts: everything below the sites is replaced wholesale.
		for i := cfg.EliteSites + cfg.NormalSites; i < cfg.PopulationSize; i++ {
			if pop[i], err = cargo.RandomSolution(sv.settings, sv.rng); err != nil {
				return Result{}, err
			}
			costs[i] = cargo.Cost(pop[i], sv.settings)
			evals++
		}

		sortPopulation(pop, costs)

		if stop(generation, prevBest, costs[0]) {
			break
		}
		prevBest = costs[0]
	}

	return Result{
		Best:        pop[0].Clone(),
		Cost:        costs[0],
		Generations: generation,
		Evaluations: evals,
	}, nil
}

// FindBestSolution is the package-level convenience entry: configure, solve,
// return the best solution found.
func FindBestSolution(settings cargo.Settings, cfg Config, stop StopCondition) (Result, error) {
	sv, err := New(settings, cfg)
	if err != nil {
		return Result{}, err
	}

	return sv.FindBestSolution(stop)
}

// rankedPopulation sorts solutions and their cached costs together.
type rankedPopulation struct {
	sols  []cargo.Solution
	costs []float64
}

func (r rankedPopulation) Len() int           { return len(r.sols) }
func (r rankedPopulation) Less(i, j int) bool { return r.costs[i] < r.costs[j] }
func (r rankedPopulation) Swap(i, j int) {
	r.sols[i], r.sols[j] = r.sols[j], r.sols[i]
	r.costs[i], r.costs[j] = r.costs[j], r.costs[i]
}

// sortPopulation ranks ascending by cost. Stable so equal-cost solutions keep
// their relative order across generations.
func sortPopulation(sols []cargo.Solution, costs []float64) {
	sort.Stable(rankedPopulation{sols: sols, costs: costs})
}
