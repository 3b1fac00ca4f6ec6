package cycles

import (
	"math/big"
	"testing"
)

func threeByThreeOneCycleDef(t *testing.T) *PuzzleOrbitDefinition {
	t.Helper()
	orbits := []Orbit{
		{Name: "edges", CubieCount: 12, Orientation: CanOrient(2, SumZero)},
		{Name: "corners", CubieCount: 8, Orientation: CanOrient(3, SumZero)},
	}
	parity := []EvenParityConstraint{{Orbits: []string{"edges", "corners"}}}
	def, err := NewPuzzleOrbitDefinition(orbits, parity)
	if err != nil {
		t.Fatalf("NewPuzzleOrbitDefinition: %v", err)
	}
	return def
}

func TestHighestOrderSearchFullBudgetMatchesKnownOptimum(t *testing.T) {
	def := threeByThreeOneCycleDef(t)
	mc := NewMemoCache()

	cycles := highestOrderSearch(mc, def, []int{12, 8}, []bool{false, false})
	if len(cycles) == 0 {
		t.Fatalf("expected at least one optimal cycle")
	}
	for _, c := range cycles {
		if c.Order.Cmp(big.NewInt(1260)) != 0 {
			t.Errorf("order = %s, want the known 3x3 single-cycle optimum 1260", c.Order)
		}
	}
}

func TestHighestOrderSearchMemoized(t *testing.T) {
	def := threeByThreeOneCycleDef(t)
	mc := NewMemoCache()

	highestOrderSearch(mc, def, []int{12, 8}, []bool{false, false})
	key := searchKey([]int{12, 8}, []bool{false, false})
	if _, ok := mc.getSearch(key); !ok {
		t.Errorf("expected highestOrderSearch result to be cached")
	}
}

func TestHighestOrderSearchRespectsParityGate(t *testing.T) {
	def := threeByThreeOneCycleDef(t)
	mc := NewMemoCache()

	cycles := highestOrderSearch(mc, def, []int{12, 8}, []bool{false, false})
	checkpoints := buildParityCheckpoints(def)
	for _, c := range cycles {
		for _, cp := range checkpoints {
			sum := 0
			for _, m := range cp.memberIndices {
				sum += c.PartitionObj[m].Signature()
			}
			if sum%2 != 0 {
				t.Errorf("cycle %+v violates parity constraint over orbits %v", c, cp.memberIndices)
			}
		}
	}
}

func TestHighestOrderSearchZeroBudgetCanOrientSlotDoesNotInflateOrder(t *testing.T) {
	// corners gets a 0-cubie budget (an empty partition) in a
	// CanOrient(3, Zero) orbit; it must contribute order 1 to the LCM, not
	// 3, per the orderFromPartition empty-partition fix. This is the
	// (720,2) fixture from spec.md §8's 3x3 N=2 scenario: edges=(1,1)
	// (order 2), corners=() (order 1), combined order 2.
	def := threeByThreeOneCycleDef(t)
	mc := NewMemoCache()

	cycles := highestOrderSearch(mc, def, []int{2, 0}, []bool{false, false})
	if len(cycles) == 0 {
		t.Fatalf("expected at least one optimal cycle")
	}
	for _, c := range cycles {
		if c.Order.Cmp(big.NewInt(2)) != 0 {
			t.Errorf("order = %s, want 2 (corners' empty partition must not multiply by its orientation factor)", c.Order)
		}
	}
}

func TestBuildParityCheckpointsUsesMinimumMemberIndex(t *testing.T) {
	def := threeByThreeOneCycleDef(t)
	checkpoints := buildParityCheckpoints(def)
	if len(checkpoints) != 1 {
		t.Fatalf("expected one checkpoint, got %d", len(checkpoints))
	}
	edgesIdx := def.OrbitIndex("edges")
	cornersIdx := def.OrbitIndex("corners")
	want := edgesIdx
	if cornersIdx < want {
		want = cornersIdx
	}
	if checkpoints[0].checkAt != want {
		t.Errorf("checkAt = %d, want %d (the minimum member index)", checkpoints[0].checkAt, want)
	}
}
