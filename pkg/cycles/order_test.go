package cycles

import (
	"math/big"
	"testing"
)

func TestOrderFromPartitionCannotOrient(t *testing.T) {
	cp, ok := orderFromPartition("wings", []int{2, 2, 4}, CannotOrient())
	if !ok {
		t.Fatalf("expected CannotOrient partition to be feasible")
	}
	if cp.Order.Cmp(big.NewInt(4)) != 0 {
		t.Errorf("order = %s, want 4", cp.Order)
	}
}

func TestOrderFromPartitionCanOrientSumNone(t *testing.T) {
	// A single 3-cycle with CanOrient(3, None): critical cycle present, order = 3*3 = 9.
	cp, ok := orderFromPartition("corners", []int{3}, CanOrient(3, SumNone))
	if !ok {
		t.Fatalf("expected feasible partition")
	}
	if cp.Order.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("order = %s, want 9", cp.Order)
	}
}

func TestOrderFromPartitionCanOrientSumZeroMultiplies(t *testing.T) {
	// Two disjoint 3-cycles, CanOrient(3, Zero): both are critical (equal max
	// valuation) and always_orient is empty, so one critical position is
	// disjoint from always_orient; orient_count becomes 1 (not all 2
	// positions), so the boundary case does not apply and order *= k.
	cp, ok := orderFromPartition("corners", []int{3, 3}, CanOrient(3, SumZero))
	if !ok {
		t.Fatalf("expected feasible partition")
	}
	if cp.Order.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("order = %s, want 9", cp.Order)
	}
}

func TestOrderFromPartitionSumZeroAlwaysOrientMultiplies(t *testing.T) {
	// A 1-cycle plus a 2-cycle under CanOrient(2, Zero): the 1-cycle is
	// always-orient and the 2-cycle is a critical position disjoint from it,
	// so orient_count=2 covers every position, but 2 is even, so the
	// boundary case does not apply and order *= k.
	cp, ok := orderFromPartition("edges", []int{1, 2}, CanOrient(2, SumZero))
	if !ok {
		t.Fatalf("expected feasible partition")
	}
	if cp.Order.Cmp(big.NewInt(4)) != 0 {
		t.Errorf("order = %s, want 4", cp.Order)
	}
	if len(cp.AlwaysOrient) != 1 || cp.AlwaysOrient[0] != 0 {
		t.Errorf("always_orient = %v, want [0]", cp.AlwaysOrient)
	}
}

func TestOrderFromPartitionSumZeroEmptyPartitionDoesNotMultiply(t *testing.T) {
	// A 0-budget cycle in a CanOrient(3, Zero) orbit: no cycle-lengths at
	// all, so there is no critical position to count as disjoint and the
	// order must stay lcm([]) = 1, not 1*k. Regression for a bug where an
	// empty critical_orient was treated as vacuously disjoint from the
	// (also empty) always_orient set.
	cp, ok := orderFromPartition("corners", []int{}, CanOrient(3, SumZero))
	if !ok {
		t.Fatalf("expected the empty partition to be feasible")
	}
	if cp.Order.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("order = %s, want 1", cp.Order)
	}
	if len(cp.CriticalOrient) != 0 {
		t.Errorf("critical_orient = %v, want empty", cp.CriticalOrient)
	}
}

func TestOrderFromPartitionDisallowedCriticalRejected(t *testing.T) {
	// A single fixed cubie ([1]) under CanOrient(2, Zero): orient_count=1,
	// len(partition)=1, k=2 odd orient_count -> boundary case; critical is
	// not disjoint from always-orient (same single position) -> infeasible.
	_, ok := orderFromPartition("edges", []int{1}, CanOrient(2, SumZero))
	if ok {
		t.Errorf("expected the single-fixed-cubie partition to be rejected under Zero constraint")
	}
}

func TestIntSliceIntersects(t *testing.T) {
	if !intSliceIntersects([]int{1, 2}, []int{2, 3}) {
		t.Errorf("expected overlap")
	}
	if intSliceIntersects([]int{1, 2}, []int{3, 4}) {
		t.Errorf("did not expect overlap")
	}
	if intSliceIntersects(nil, []int{1}) {
		t.Errorf("empty slice should never intersect")
	}
}
