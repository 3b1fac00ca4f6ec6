package cycles

import "math/big"

// reducedPartitionTable builds the ordered, domination-reduced list of
// CubiePartitions for one orbit at one cubie budget, per spec.md §4.3.
//
// share prepends a forced 1-cycle (the "sharing" 1-element) to every
// partition of budget before classifying it.
func reducedPartitionTable(mc *MemoCache, def *PuzzleOrbitDefinition, orbitIdx, budget int, share bool) []CubiePartition {
	key := reducedKey{orbit: orbitIdx, budget: budget, share: share}
	if cached, ok := mc.getReduced(key); ok {
		return cached
	}

	orbit := def.Orbits[orbitIdx]
	raw := rawPartitions(mc, budget)

	candidates := make([]CubiePartition, 0, len(raw))
	for _, p := range raw {
		partition := p
		if share {
			withOne := make([]int, 0, len(p)+1)
			withOne = append(withOne, 1)
			withOne = append(withOne, p...)
			sortInts(withOne)
			partition = withOne
		}
		cp, ok := orderFromPartition(orbit.Name, partition, orbit.Orientation)
		if !ok {
			continue
		}
		candidates = append(candidates, cp)
	}

	sortByOrderDescendingStable(candidates)

	parityAware := def.ParticipatesInParity(orbitIdx)
	dominated := make([]bool, len(candidates))
	reduced := make([]CubiePartition, 0, len(candidates))
	for i := range candidates {
		if dominated[i] {
			continue
		}
		cur := candidates[i]
		reduced = append(reduced, cur)
		for j := i + 1; j < len(candidates); j++ {
			other := candidates[j]
			if cur.Order.Cmp(other.Order) == 0 {
				continue
			}
			if isStrictMultiple(cur.Order, other.Order) &&
				(!parityAware || cur.Signature() == other.Signature()) {
				dominated[j] = true
			}
		}
	}

	mc.putReduced(key, reduced)
	return reduced
}

// isStrictMultiple reports whether a is a strict multiple of b (b | a and
// a != b), the domination test of spec.md §4.3.
func isStrictMultiple(a, b *big.Int) bool {
	if a.Cmp(b) == 0 {
		return false
	}
	rem := new(big.Int)
	rem.Mod(a, b)
	return rem.Sign() == 0
}

// sortByOrderDescendingStable sorts candidates by realized order
// descending, preserving relative order of ties (a stable insertion sort —
// the lists involved are small enough that this never matters for
// performance, and stability keeps iteration order reproducible per
// spec.md §9).
func sortByOrderDescendingStable(candidates []CubiePartition) {
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j-1].Order.Cmp(candidates[j].Order) < 0; j-- {
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
		}
	}
}
