package cycles

import (
	"math/big"
	"sort"
)

// padToLength left-pads a sorted partition with zeros so every orbit row
// has the same length (numCycles) before permuting, per spec.md §4.5 step 2.
// Which side the zeros go on does not matter: uniquePermutations sorts the
// row before enumerating its permutations.
func padToLength(p []int, n int) []int {
	out := make([]int, n)
	copy(out[n-len(p):], p)
	return out
}

// uniquePermutations returns every distinct permutation of row, skipping
// duplicates produced by repeated values (spec.md §4.5 step 3: "distinct
// sorted permutations").
func uniquePermutations(row []int) [][]int {
	sorted := append([]int(nil), row...)
	sort.Ints(sorted)

	var out [][]int
	used := make([]bool, len(sorted))
	current := make([]int, 0, len(sorted))

	var backtrack func()
	backtrack = func() {
		if len(current) == len(sorted) {
			out = append(out, append([]int(nil), current...))
			return
		}
		for i := 0; i < len(sorted); i++ {
			if used[i] {
				continue
			}
			if i > 0 && sorted[i] == sorted[i-1] && !used[i-1] {
				continue
			}
			used[i] = true
			current = append(current, sorted[i])
			backtrack()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	backtrack()
	return out
}

// columnIsTrivial reports whether a candidate cycle's per-orbit cubie
// budgets contribute nothing to its order: zero cubies everywhere, or (for
// an orbit with no orientation freedom) a single fixed cubie, per spec.md
// §4.5 step 3.
func columnIsTrivial(def *PuzzleOrbitDefinition, col []int) bool {
	for i, v := range col {
		orbit := def.Orbits[i]
		if orbit.Orientation.CanOrient() {
			if v != 0 {
				return false
			}
		} else if v > 1 {
			return false
		}
	}
	return true
}

// sortCyclesDescending orders cycles by realized order descending, breaking
// ties by partition content so the ordering is reproducible.
func sortCyclesDescending(cycles []Cycle) {
	sort.SliceStable(cycles, func(a, b int) bool {
		if cmp := cycles[b].Order.Cmp(cycles[a].Order); cmp != 0 {
			return cmp < 0
		}
		return lessCyclePartitions(cycles[a].PartitionObj, cycles[b].PartitionObj)
	})
}

func lessCyclePartitions(a, b []CubiePartition) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if lessPartition(a[i].Partition, b[i].Partition) {
			return true
		}
		if lessPartition(b[i].Partition, a[i].Partition) {
			return false
		}
	}
	return len(a) < len(b)
}

// productOfOrders multiplies the realized order of every cycle in the
// combination, the order_product spec.md §3 assigns to a CycleCombination.
func productOfOrders(cycles []Cycle) *big.Int {
	product := big.NewInt(1)
	for _, c := range cycles {
		product.Mul(product, c.Order)
	}
	return product
}

func containsOne(partition []int) bool {
	for _, v := range partition {
		if v == 1 {
			return true
		}
	}
	return false
}

// donorPatterns implements spec.md §4.5 step 6: for every orbit where some
// chosen cycle declared share[i] = true, a distinct donor cycle (share[i] =
// false, with a 1 already present in its orbit-i partition) must exist for
// each sharer. It returns every combination of donor assignments, one orbit
// at a time, as a cartesian product; nil means the selection is globally
// inconsistent and must be discarded.
//
// Each pattern is a []int of length len(selection[0].PartitionObj); entry i
// is a bitmask over cycle indices marking which cycles donate for orbit i
// (0 when that orbit needs no donor).
func donorPatterns(numOrbits int, selection []Cycle) [][]int {
	perOrbit := make([][]int, numOrbits)
	for i := 0; i < numOrbits; i++ {
		var sharers, donors []int
		for j, c := range selection {
			if c.Share[i] {
				sharers = append(sharers, j)
			} else if containsOne(c.PartitionObj[i].Partition) {
				donors = append(donors, j)
			}
		}
		if len(sharers) == 0 {
			perOrbit[i] = []int{0}
			continue
		}
		if len(donors) < len(sharers) {
			return nil
		}
		perOrbit[i] = bitmaskCombinations(donors, len(sharers))
	}

	patterns := [][]int{{}}
	for i := 0; i < numOrbits; i++ {
		var next [][]int
		for _, p := range patterns {
			for _, mask := range perOrbit[i] {
				next = append(next, append(append([]int(nil), p...), mask))
			}
		}
		patterns = next
	}
	return patterns
}

// bitmaskCombinations returns every k-element subset of indices, each
// encoded as a bitmask over cycle positions.
func bitmaskCombinations(indices []int, k int) []int {
	var out []int
	n := len(indices)
	chosen := make([]int, 0, k)

	var walk func(start int)
	walk = func(start int) {
		if len(chosen) == k {
			mask := 0
			for _, idx := range chosen {
				mask |= 1 << uint(idx)
			}
			out = append(out, mask)
			return
		}
		if n-start < k-len(chosen) {
			return
		}
		for i := start; i < n; i++ {
			chosen = append(chosen, indices[i])
			walk(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	walk(0)
	return out
}
