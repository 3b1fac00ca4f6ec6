package cycles

import "math/big"

// orderFromPartition computes the CubiePartition realized by one
// cycle-length partition under an orbit's orientation rule, per spec.md
// §4.2. ok is false when the partition is infeasible for the orbit (the
// "disallowed-critical" case with no disjoint critical position to drop);
// this is not an error, just an empty region of the search space
// (spec.md §7).
func orderFromPartition(orbitName string, partition []int, rule OrientationRule) (CubiePartition, bool) {
	lcmVal := lcmInts(partition)

	var alwaysOrient []int
	for i, v := range partition {
		if v == 1 {
			alwaysOrient = append(alwaysOrient, i)
		}
	}

	if !rule.CanOrient() {
		return CubiePartition{
			OrbitName: orbitName,
			Partition: partition,
			Order:     lcmVal,
		}, true
	}

	k := rule.Count()

	// critical_orient: indices of maximal p-adic valuation for k.
	var criticalOrient []int
	maxVal := -1
	for i, v := range partition {
		pv := pAdicValuation(v, k)
		if pv > maxVal {
			maxVal = pv
			criticalOrient = []int{i}
		} else if pv == maxVal {
			criticalOrient = append(criticalOrient, i)
		}
	}

	order := new(big.Int).Set(lcmVal)

	if rule.Constraint() == SumNone {
		if len(criticalOrient) > 0 {
			order.Mul(order, big.NewInt(int64(k)))
		}
		return CubiePartition{
			OrbitName:      orbitName,
			Partition:      partition,
			Order:          order,
			AlwaysOrient:   alwaysOrient,
			CriticalOrient: criticalOrient,
		}, true
	}

	// SumZero: determine orient_count and whether a critical position is
	// disjoint from the always-orient set. An empty partition (a 0-budget
	// cycle in this orbit) has no critical position at all, so it can never
	// count as disjoint — mirroring the reference's `critical_orient is not
	// None and (...)` guard (original_source/.../phase1.py:493-496), which
	// short-circuits false whenever critical_orient was never populated.
	criticalDisjoint := len(criticalOrient) > 0 && !intSliceIntersects(criticalOrient, alwaysOrient)
	orientCount := len(alwaysOrient)
	if criticalDisjoint {
		orientCount++
	}

	disallowedCritical := orientCount == len(partition) &&
		((k == 2 && orientCount%2 == 1) || (k > 2 && orientCount == 1))

	if disallowedCritical {
		if !criticalDisjoint {
			return CubiePartition{}, false
		}
		// Exactly one critical position must be dropped; do not multiply
		// by k.
		criticalOrient = nil
		return CubiePartition{
			OrbitName:      orbitName,
			Partition:      partition,
			Order:          order,
			AlwaysOrient:   alwaysOrient,
			CriticalOrient: criticalOrient,
		}, true
	}

	if orientCount != 0 {
		order.Mul(order, big.NewInt(int64(k)))
	}

	return CubiePartition{
		OrbitName:      orbitName,
		Partition:      partition,
		Order:          order,
		AlwaysOrient:   alwaysOrient,
		CriticalOrient: criticalOrient,
	}, true
}

func intSliceIntersects(a, b []int) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[int]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
