package cycles

import (
	"context"
	"math/big"
	"testing"
)

func singleOrbitDef(t *testing.T) *PuzzleOrbitDefinition {
	t.Helper()
	def, err := NewPuzzleOrbitDefinition([]Orbit{
		{Name: "x", CubieCount: 5, Orientation: CannotOrient()},
	}, nil)
	if err != nil {
		t.Fatalf("NewPuzzleOrbitDefinition: %v", err)
	}
	return def
}

func TestDriverRunSequential(t *testing.T) {
	driver := NewDriver(singleOrbitDef(t), 1)
	frontier, err := driver.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(frontier) != 1 {
		t.Fatalf("expected 1 Pareto-optimal combination, got %d", len(frontier))
	}
	if frontier[0].OrderProduct.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("order_product = %s, want 6", frontier[0].OrderProduct)
	}
}

func TestDriverRunSequentialStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frontier, err := NewDriver(singleOrbitDef(t), 1).Run(ctx)
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(frontier) != 0 {
		t.Errorf("expected no combinations once the context was cancelled before Run, got %d", len(frontier))
	}
}

func TestDriverRunShardedMatchesSequential(t *testing.T) {
	sequential, err := NewDriver(singleOrbitDef(t), 1).Run(context.Background())
	if err != nil {
		t.Fatalf("sequential Run: %v", err)
	}

	sharded, err := NewDriver(singleOrbitDef(t), 1, WithWorkerCount(4)).Run(context.Background())
	if err != nil {
		t.Fatalf("sharded Run: %v", err)
	}

	if len(sequential) != len(sharded) {
		t.Fatalf("sharded run produced %d combinations, sequential produced %d", len(sharded), len(sequential))
	}
	for i := range sequential {
		if sequential[i].OrderProduct.Cmp(sharded[i].OrderProduct) != 0 {
			t.Errorf("order_product mismatch at index %d: sequential=%s sharded=%s",
				i, sequential[i].OrderProduct, sharded[i].OrderProduct)
		}
	}
}
