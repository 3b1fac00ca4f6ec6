package cycles

import (
	"context"
	"fmt"
	"sort"
)

// shareCategory classifies how an orbit's share flag may vary for one
// column (one cycle's per-orbit cubie budget), per spec.md §4.5 step 5.
type shareCategory int

const (
	shareCannot shareCategory = iota // budget == 0, or orientation is CannotOrient
	shareMust                        // budget == 1 and CanOrient
	shareFree                        // budget >= 2 and CanOrient
)

func classifyShare(orbit Orbit, budget int) shareCategory {
	if budget == 0 || !orbit.Orientation.CanOrient() {
		return shareCannot
	}
	if budget == 1 {
		return shareMust
	}
	return shareFree
}

// CombinationEnumerator drives the outer search described in spec.md §4.5,
// producing every order-maximizing CycleCombination candidate for numCycles
// mutually commuting elements. The result is not yet Pareto-filtered; call
// ParetoFilter on the returned slice.
//
// ctx is checked cooperatively between used-cubie-counts tuples (spec.md §5:
// "a host may check a cancel flag between used-cubie tuples"), not inside
// one tuple's search: once ctx is done, the walk stops advancing to the next
// tuple and returns whatever candidates were already collected. A nil ctx
// disables the check. Callers that need the cancellation error itself
// should inspect ctx.Err() after CombinationEnumerator returns.
func CombinationEnumerator(ctx context.Context, mc *MemoCache, def *PuzzleOrbitDefinition, numCycles int) []CycleCombination {
	n := len(def.Orbits)
	var out []CycleCombination

	usedCounts := make([]int, n)
	cancelled := false
	var walkUsed func(orbit int)
	walkUsed = func(orbit int) {
		if cancelled {
			return
		}
		if orbit == n {
			if ctx != nil && ctx.Err() != nil {
				cancelled = true
				return
			}
			out = append(out, enumerateForUsedCounts(mc, def, append([]int(nil), usedCounts...), numCycles)...)
			return
		}
		for c := 1; c <= def.Orbits[orbit].CubieCount; c++ {
			if cancelled {
				return
			}
			usedCounts[orbit] = c
			walkUsed(orbit + 1)
		}
	}
	walkUsed(0)
	return out
}

// enumerateForUsedCounts implements spec.md §4.5 steps 2-8 for one fixed
// used-cubie-counts vector u.
func enumerateForUsedCounts(mc *MemoCache, def *PuzzleOrbitDefinition, u []int, numCycles int) []CycleCombination {
	n := len(def.Orbits)

	// Step 2: per orbit, the candidate partitions of u[i] of length <= N.
	orbitPartitionChoices := make([][][]int, n)
	for i := 0; i < n; i++ {
		for _, p := range rawPartitions(mc, u[i]) {
			if len(p) <= numCycles {
				orbitPartitionChoices[i] = append(orbitPartitionChoices[i], p)
			}
		}
		if len(orbitPartitionChoices[i]) == 0 {
			return nil
		}
	}

	var results []CycleCombination
	seenColumnSets := make(map[string]bool)

	chosenPartition := make([][]int, n)
	var walkPartitionChoice func(orbit int)
	walkPartitionChoice = func(orbit int) {
		if orbit == n {
			results = append(results, enumerateForPartitionChoice(mc, def, u, numCycles, chosenPartition, seenColumnSets)...)
			return
		}
		for _, p := range orbitPartitionChoices[orbit] {
			chosenPartition[orbit] = p
			walkPartitionChoice(orbit + 1)
		}
	}
	walkPartitionChoice(0)
	return results
}

// enumerateForPartitionChoice implements step 3 onward for one fixed choice
// of per-orbit partition (each already of length <= numCycles).
func enumerateForPartitionChoice(mc *MemoCache, def *PuzzleOrbitDefinition, u []int, numCycles int, chosenPartition [][]int, seenColumnSets map[string]bool) []CycleCombination {
	n := len(def.Orbits)

	rows := make([][][]int, n)
	for i := 0; i < n; i++ {
		padded := padToLength(chosenPartition[i], numCycles)
		rows[i] = uniquePermutations(padded)
	}

	var results []CycleCombination
	rowChoice := make([][]int, n)
	var walkRows func(orbit int)
	walkRows = func(orbit int) {
		if orbit == n {
			results = append(results, emitForMatrix(mc, def, u, numCycles, rowChoice, seenColumnSets)...)
			return
		}
		for _, r := range rows[orbit] {
			rowChoice[orbit] = r
			walkRows(orbit + 1)
		}
	}
	walkRows(0)
	return results
}

// emitForMatrix implements spec.md §4.5 steps 3 (trivial-column rejection)
// through 8 (emission) for one fixed per-orbit row assignment.
func emitForMatrix(mc *MemoCache, def *PuzzleOrbitDefinition, u []int, numCycles int, rowChoice [][]int, seenColumnSets map[string]bool) []CycleCombination {
	n := len(def.Orbits)

	columns := make([][]int, numCycles)
	for j := 0; j < numCycles; j++ {
		col := make([]int, n)
		for i := 0; i < n; i++ {
			col[i] = rowChoice[i][j]
		}
		if columnIsTrivial(def, col) {
			return nil
		}
		columns[j] = col
	}

	sortedColumns := append([][]int(nil), columns...)
	sort.Slice(sortedColumns, func(a, b int) bool { return lessPartition(sortedColumns[b], sortedColumns[a]) })
	dedupeKey := fmt.Sprint(sortedColumns)
	if seenColumnSets[dedupeKey] {
		return nil
	}
	seenColumnSets[dedupeKey] = true

	// Step 5: per-column candidate cycles across every valid share vector.
	candidatesPerColumn := make([][]Cycle, numCycles)
	for j := 0; j < numCycles; j++ {
		categories := make([]shareCategory, n)
		for i := 0; i < n; i++ {
			categories[i] = classifyShare(def.Orbits[i], columns[j][i])
		}
		for _, shareVec := range enumerateShareVectors(categories) {
			candidatesPerColumn[j] = append(candidatesPerColumn[j], highestOrderSearch(mc, def, columns[j], shareVec)...)
		}
	}
	for j := 0; j < numCycles; j++ {
		if len(candidatesPerColumn[j]) == 0 {
			return nil
		}
	}

	var results []CycleCombination
	selection := make([]Cycle, numCycles)
	var walkSelection func(col int)
	walkSelection = func(col int) {
		if col == numCycles {
			results = append(results, buildCombinationsForSelection(u, selection)...)
			return
		}
		for _, c := range candidatesPerColumn[col] {
			selection[col] = c
			walkSelection(col + 1)
		}
	}
	walkSelection(0)
	return results
}

// enumerateShareVectors returns every share vector consistent with the
// per-orbit categories computed by classifyShare (spec.md §4.5 step 5).
func enumerateShareVectors(categories []shareCategory) [][]bool {
	n := len(categories)
	vectors := [][]bool{{}}
	for i := 0; i < n; i++ {
		var next [][]bool
		switch categories[i] {
		case shareCannot:
			for _, v := range vectors {
				next = append(next, append(append([]bool(nil), v...), false))
			}
		case shareMust:
			for _, v := range vectors {
				next = append(next, append(append([]bool(nil), v...), true))
			}
		case shareFree:
			for _, v := range vectors {
				next = append(next, append(append([]bool(nil), v...), false))
				next = append(next, append(append([]bool(nil), v...), true))
			}
		}
		vectors = next
	}
	return vectors
}

// buildCombinationsForSelection implements spec.md §4.5 steps 6-8 for one
// fixed choice of cycle per column.
func buildCombinationsForSelection(u []int, selection []Cycle) []CycleCombination {
	n := len(selection[0].PartitionObj)

	sharePatterns := donorPatterns(n, selection)
	if sharePatterns == nil {
		return nil
	}

	sorted := append([]Cycle(nil), selection...)
	sortCyclesDescending(sorted)

	var out []CycleCombination
	emitted := map[string]bool{}
	for start := 0; start < len(sorted); start++ {
		if start > 0 {
			if sorted[start].Order.Cmp(sorted[0].Order) != 0 {
				break
			}
			if samePartitions(sorted[start-1].PartitionObj, sorted[start].PartitionObj) {
				continue
			}
		}
		variant := append([]Cycle(nil), sorted...)
		variant[0], variant[start] = variant[start], variant[0]

		key := fmt.Sprint(variant)
		if emitted[key] {
			continue
		}
		emitted[key] = true

		orderProduct := productOfOrders(variant)
		out = append(out, CycleCombination{
			UsedCubieCounts: append([]int(nil), u...),
			OrderProduct:    orderProduct,
			ShareOrders:     sharePatterns,
			Cycles:          variant,
		})
	}
	return out
}

func samePartitions(a, b []CubiePartition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalPartition(a[i].Partition, b[i].Partition) {
			return false
		}
	}
	return true
}
