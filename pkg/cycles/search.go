package cycles

import "math/big"

// parityCheckpoint records, for one EvenParityConstraint, the orbit indices
// it spans and the index at which all of them have been committed by the
// top-down (high-index-to-low-index) DFS in highestOrderSearch.
//
// spec.md §4.4 finalizes each constraint "exactly when its highest-indexed
// orbit is assigned"; since the search assigns orbits in strictly
// decreasing index order, a constraint's members are all on the path only
// once the search reaches the *smallest* index among them (every other
// member, having a larger index, was necessarily visited earlier). This
// checkpoint is therefore keyed on that minimum member index rather than
// the maximum — the DFS-order-consistent reading of the same requirement.
type parityCheckpoint struct {
	memberIndices []int
	checkAt       int
}

func buildParityCheckpoints(def *PuzzleOrbitDefinition) []parityCheckpoint {
	checkpoints := make([]parityCheckpoint, 0, len(def.EvenParity))
	for _, c := range def.EvenParity {
		members := make([]int, len(c.Orbits))
		minIdx := len(def.Orbits)
		for i, name := range c.Orbits {
			idx := def.OrbitIndex(name)
			members[i] = idx
			if idx < minIdx {
				minIdx = idx
			}
		}
		checkpoints = append(checkpoints, parityCheckpoint{memberIndices: members, checkAt: minIdx})
	}
	return checkpoints
}

// searchFrame is one entry of the explicit DFS stack used by
// highestOrderSearch, mirroring the hand-rolled stack of
// (index, running_order, path) frames spec.md §9 recommends over plain
// recursion.
type searchFrame struct {
	i            int
	runningOrder *big.Int
	chosen       *CubiePartition
}

// highestOrderSearch finds every Cycle whose per-orbit partitions jointly
// achieve the maximum LCM for the given per-orbit cubie budgets and share
// flags, per spec.md §4.4. Results are memoized by (cubieCounts, share).
func highestOrderSearch(mc *MemoCache, def *PuzzleOrbitDefinition, cubieCounts []int, share []bool) []Cycle {
	key := searchKey(cubieCounts, share)
	if cached, ok := mc.getSearch(key); ok {
		return cached
	}

	n := len(def.Orbits)
	tables := make([][]CubiePartition, n)
	for i := 0; i < n; i++ {
		tables[i] = reducedPartitionTable(mc, def, i, cubieCounts[i], share[i])
	}

	restUpper := make([]*big.Int, n)
	running := big.NewInt(1)
	for i := 0; i < n; i++ {
		restUpper[i] = new(big.Int).Set(running)
		if len(tables[i]) > 0 {
			running = new(big.Int).Mul(running, tables[i][0].Order)
		}
	}

	checkpoints := buildParityCheckpoints(def)

	path := make([]CubiePartition, n)
	highestOrder := big.NewInt(1)
	var cycles []Cycle

	stack := []searchFrame{{i: n - 1, runningOrder: big.NewInt(1)}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.chosen != nil {
			path[frame.i+1] = *frame.chosen
		}

		if frame.i != -1 {
			i := frame.i
			for _, q := range tables[i] {
				bound := new(big.Int).Mul(frame.runningOrder, q.Order)
				bound.Mul(bound, restUpper[i])
				if bound.Cmp(highestOrder) < 0 {
					break // tables[i] is sorted descending: no later candidate can do better.
				}
				if !parityGateHolds(checkpoints, path, i, q) {
					continue
				}
				qCopy := q
				stack = append(stack, searchFrame{
					i:            i - 1,
					runningOrder: bigLCM(frame.runningOrder, q.Order),
					chosen:       &qCopy,
				})
			}
			continue
		}

		switch cmp := frame.runningOrder.Cmp(highestOrder); {
		case cmp > 0:
			highestOrder = frame.runningOrder
			cycles = cycles[:0]
			cycles = append(cycles, Cycle{
				Order:        frame.runningOrder,
				Share:        append([]bool(nil), share...),
				PartitionObj: append([]CubiePartition(nil), path...),
			})
		case cmp == 0:
			cycles = append(cycles, Cycle{
				Order:        frame.runningOrder,
				Share:        append([]bool(nil), share...),
				PartitionObj: append([]CubiePartition(nil), path...),
			})
		}
	}

	mc.putSearch(key, cycles)
	return cycles
}

// parityGateHolds checks every constraint finalized at index i (see
// parityCheckpoint) against the candidate q being assigned there plus the
// already-committed path entries for the constraint's other members.
func parityGateHolds(checkpoints []parityCheckpoint, path []CubiePartition, i int, q CubiePartition) bool {
	for _, c := range checkpoints {
		if c.checkAt != i {
			continue
		}
		sum := 0
		for _, m := range c.memberIndices {
			if m == i {
				sum += q.Signature()
			} else {
				sum += path[m].Signature()
			}
		}
		if sum%2 != 0 {
			return false
		}
	}
	return true
}
