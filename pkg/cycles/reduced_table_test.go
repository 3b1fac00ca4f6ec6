package cycles

import (
	"math/big"
	"testing"
)

func TestReducedPartitionTableSortedDescending(t *testing.T) {
	mc := NewMemoCache()
	orbit := Orbit{Name: "edges", CubieCount: 12, Orientation: CanOrient(2, SumZero)}
	def, err := NewPuzzleOrbitDefinition([]Orbit{orbit}, nil)
	if err != nil {
		t.Fatalf("NewPuzzleOrbitDefinition: %v", err)
	}

	table := reducedPartitionTable(mc, def, 0, 7, false)
	if len(table) == 0 {
		t.Fatalf("expected a non-empty reduced table")
	}
	for i := 1; i < len(table); i++ {
		if table[i-1].Order.Cmp(table[i].Order) < 0 {
			t.Errorf("reduced table not sorted descending at index %d: %s < %s", i, table[i-1].Order, table[i].Order)
		}
	}
}

func TestReducedPartitionTableDominationRemovesStrictMultiples(t *testing.T) {
	mc := NewMemoCache()
	orbit := Orbit{Name: "wings", CubieCount: 10, Orientation: CannotOrient()}
	def, err := NewPuzzleOrbitDefinition([]Orbit{orbit}, nil)
	if err != nil {
		t.Fatalf("NewPuzzleOrbitDefinition: %v", err)
	}

	table := reducedPartitionTable(mc, def, 0, 6, false)
	for i := range table {
		for j := range table {
			if i == j {
				continue
			}
			if isStrictMultiple(table[i].Order, table[j].Order) {
				t.Errorf("table retains dominated entry: order %s is a strict multiple of kept order %s", table[i].Order, table[j].Order)
			}
		}
	}
}

func TestReducedPartitionTableMemoized(t *testing.T) {
	mc := NewMemoCache()
	orbit := Orbit{Name: "corners", CubieCount: 8, Orientation: CanOrient(3, SumZero)}
	def, err := NewPuzzleOrbitDefinition([]Orbit{orbit}, nil)
	if err != nil {
		t.Fatalf("NewPuzzleOrbitDefinition: %v", err)
	}

	reducedPartitionTable(mc, def, 0, 5, false)
	if _, ok := mc.getReduced(reducedKey{orbit: 0, budget: 5, share: false}); !ok {
		t.Errorf("expected reduced table to be cached")
	}
}

func TestIsStrictMultiple(t *testing.T) {
	cases := []struct {
		a, b int64
		want bool
	}{
		{6, 3, true},
		{3, 3, false},
		{7, 3, false},
		{3, 6, false},
	}
	for _, c := range cases {
		a, b := big.NewInt(c.a), big.NewInt(c.b)
		if got := isStrictMultiple(a, b); got != c.want {
			t.Errorf("isStrictMultiple(%d,%d) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
