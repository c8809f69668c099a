// Package cargo models the border-crossing haulage problem solved by beeopt.
//
// An instance (Settings) fixes:
//
//   - n border crossings, each with a distance and a per-goods-type duty rate,
//   - m divisible goods types with required total amounts,
//   - p identical trucks of a fixed capacity and a fuel cost per unit distance.
//
// A candidate (Solution) assigns every truck to exactly one crossing and
// distributes the goods across trucks. A solution is feasible when:
//
//	(I1) every truck carries at most TruckCapacity in total, and
//	(I2) every goods type is carried in exactly its required total amount
//	     (compared within FeasibilityTol to absorb floating-point drift).
//
// The package provides the pure cost function (duties + fuel), the feasibility
// predicates, and random generation of feasible solutions: goods are split
// proportionally at random per type (exact column sums), then overloaded
// trucks are repaired by moving their largest goods entry to the least loaded
// truck until no truck exceeds capacity.
//
// All randomness flows through an explicit *rand.Rand handle; nil selects a
// fixed deterministic stream. No logging, no panics on user input - only
// sentinel errors declared in types.go.
package cargo
