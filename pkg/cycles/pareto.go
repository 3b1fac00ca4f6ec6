package cycles

import "sort"

// ParetoFilter reduces a candidate list of CycleCombinations to the subset
// no combination in the list dominates, per spec.md §4.6.
//
// A dominates b when a's order_product is >= b's, every individual cycle
// order in a is >= the corresponding cycle order in b (after both are
// sorted descending, as CombinationEnumerator always leaves them), and at
// least one of those comparisons is strict. A combination that matches b in
// every order dominates it only when it is also structurally identical (see
// sameCombination); equal orders realized by different partitions are both
// kept.
func ParetoFilter(combinations []CycleCombination) []CycleCombination {
	sorted := append([]CycleCombination(nil), combinations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessCombination(sorted[j], sorted[i])
	})

	var kept []CycleCombination
	for _, cand := range sorted {
		dominated := false
		for _, k := range kept {
			if dominates(k, cand) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, cand)
		}
	}
	return kept
}

// lessCombination orders combinations by (order_product, cycle orders...)
// ascending; ParetoFilter sorts descending by negating the comparison.
func lessCombination(a, b CycleCombination) bool {
	if cmp := a.OrderProduct.Cmp(b.OrderProduct); cmp != 0 {
		return cmp < 0
	}
	for i := 0; i < len(a.Cycles) && i < len(b.Cycles); i++ {
		if cmp := a.Cycles[i].Order.Cmp(b.Cycles[i].Order); cmp != 0 {
			return cmp < 0
		}
	}
	return len(a.Cycles) < len(b.Cycles)
}

// dominates reports whether a dominates b in the Pareto sense described
// above.
func dominates(a, b CycleCombination) bool {
	if a.OrderProduct.Cmp(b.OrderProduct) < 0 {
		return false
	}
	strictSomewhere := a.OrderProduct.Cmp(b.OrderProduct) > 0
	n := len(a.Cycles)
	if len(b.Cycles) < n {
		n = len(b.Cycles)
	}
	for i := 0; i < n; i++ {
		cmp := a.Cycles[i].Order.Cmp(b.Cycles[i].Order)
		if cmp < 0 {
			return false
		}
		if cmp > 0 {
			strictSomewhere = true
		}
	}
	return strictSomewhere || sameCombination(a, b)
}

// sameCombination reports whether two combinations are structurally
// identical — same per-cycle partitions in the same order and the same
// share_orders — per spec.md §4.6's "equal class" branch. Combinations that
// merely share the same per-cycle orders but realize them with different
// partitions are NOT the same combination: both remain distinct Pareto
// points, since downstream phases distinguish candidates by partition.
func sameCombination(a, b CycleCombination) bool {
	if len(a.Cycles) != len(b.Cycles) {
		return false
	}
	for i := range a.Cycles {
		if a.Cycles[i].Order.Cmp(b.Cycles[i].Order) != 0 {
			return false
		}
		if !samePartitions(a.Cycles[i].PartitionObj, b.Cycles[i].PartitionObj) {
			return false
		}
	}
	return sameShareOrders(a.ShareOrders, b.ShareOrders)
}

func sameShareOrders(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
