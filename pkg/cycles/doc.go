// Package cycles implements phase 1 of a three-phase twisty-puzzle solver:
// given a puzzle described as piece orbits with orientation rules and
// cross-orbit parity constraints, it enumerates the Pareto-optimal cycle
// combinations of N mutually commuting group elements.
//
// # Architecture Overview
//
// The package is a pipeline of pure, single-threaded components operating
// over immutable value types:
//
//	PuzzleOrbitDefinition (immutable input)
//	  -> CombinationEnumerator drives the outer search
//	       -> HighestOrderSearch finds per-cycle-vector optimal assignments
//	            -> ReducedPartitionTable supplies per-orbit candidate partitions
//	                 -> OrderFromPartition classifies one partition's order
//	                      -> numtheory kit (partitions, p-adic valuation, lcm/gcd)
//	  -> ParetoFilter reduces the candidate list to the Pareto frontier
//
// All orders use arbitrary-precision integers (math/big), since realized
// orders on large puzzles exceed 64 bits.
//
// # Memoization
//
// Partitions, reduced partition tables, and highest-order searches are
// memoized for the lifetime of one Driver invocation via MemoCache. The
// cache is safe for concurrent use so that a Driver configured with
// WithWorkerCount can shard the outer used-cubie-counts loop across
// goroutines; see driver.go.
package cycles
