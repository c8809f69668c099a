// Package beeopt is an in-memory bees-algorithm optimizer for a classic
// logistics problem: sending a fleet of trucks through border crossings
// while splitting divisible goods across the fleet at minimum total cost
// (customs duties + fuel).
//
// 🚀 What is beeopt?
//
//	A small, focused metaheuristic library that brings together:
//		• Problem model: crossings, duty rates, distances, truck capacities
//		• Feasibility: per-truck capacity and total-goods conservation invariants
//		• Random generation: feasible seeding with greedy capacity repair
//		• Mutation operators: invariant-preserving goods transfers & reassignments
//		• Bees algorithm: elite/normal neighborhood sites + scout refresh
//
// ✨ Why choose beeopt?
//
//   - Deterministic – a single explicit RNG handle, seed it and replay any run
//   - Strict guarantees – every solution admitted to the population is feasible
//   - Sentinel errors – infeasible instances and bad configs fail loudly, once
//   - Pluggable stopping – iteration budgets and convergence deltas as values
//
// Under the hood, everything is organized under two subpackages:
//
//	cargo/ — problem Settings & Solution, cost function, feasibility checks,
//	         feasible random generation (the problem model)
//	bees/  — mutation operators, neighborhood search and the population loop
//	         (the solver), plus stop-condition strategies
//
// Quick sketch of a run:
//
//	settings, _ := cargo.NewSettings(...)
//	res, err := bees.FindBestSolution(settings, bees.DefaultConfig(),
//	    bees.StopAfterGenerations(1000))
//
// This is local search: it converges to good solutions fast, with no claim
// of global optimality. See cmd/beeopt for a YAML-driven benchmark runner.
//
//	go get github.com/katalvlaran/beeopt
package beeopt
