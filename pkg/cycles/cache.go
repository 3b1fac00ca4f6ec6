package cycles

import (
	"fmt"
	"sync"
)

// MemoCache is process-scoped memoization for the pure-function tables
// spec.md §4.7 names: integer partitions, reduced partition tables, and
// highest-order searches keyed by (cubie-vector, share-vector).
//
// A MemoCache is safe for concurrent use: when Driver shards the outer
// used-cubie-counts loop across goroutines (WithWorkerCount > 1), every
// worker shares one MemoCache instance, so a result one worker has stored is
// reused by the others. Lookup and store are separate critical sections:
// two workers that miss on the same key at the same time both compute it,
// and the later store replaces the earlier, equal value.
// Each table uses its own mutex rather than one global lock, since the
// tables are never read-modify-written together.
type MemoCache struct {
	partitionsMu  sync.Mutex
	partitionsTab map[int][][]int

	reducedMu  sync.Mutex
	reducedTab map[reducedKey][]CubiePartition

	searchMu  sync.Mutex
	searchTab map[string][]Cycle
}

// NewMemoCache creates an empty cache. Caches are not shared across driver
// invocations that operate on different puzzle definitions; create one per
// Driver (see driver.go).
func NewMemoCache() *MemoCache {
	return &MemoCache{
		partitionsTab: make(map[int][][]int),
		reducedTab:    make(map[reducedKey][]CubiePartition),
		searchTab:     make(map[string][]Cycle),
	}
}

func (mc *MemoCache) getPartitions(n int) ([][]int, bool) {
	mc.partitionsMu.Lock()
	defer mc.partitionsMu.Unlock()
	v, ok := mc.partitionsTab[n]
	return v, ok
}

func (mc *MemoCache) putPartitions(n int, v [][]int) {
	mc.partitionsMu.Lock()
	defer mc.partitionsMu.Unlock()
	mc.partitionsTab[n] = v
}

// reducedKey is the memoization key for ReducedPartitionTable: orbit
// index, cubie budget, and the share flag.
type reducedKey struct {
	orbit  int
	budget int
	share  bool
}

func (mc *MemoCache) getReduced(k reducedKey) ([]CubiePartition, bool) {
	mc.reducedMu.Lock()
	defer mc.reducedMu.Unlock()
	v, ok := mc.reducedTab[k]
	return v, ok
}

func (mc *MemoCache) putReduced(k reducedKey, v []CubiePartition) {
	mc.reducedMu.Lock()
	defer mc.reducedMu.Unlock()
	mc.reducedTab[k] = v
}

// searchKey renders a (cubie-vector, share-vector) pair to a string key.
// HighestOrderSearch results are keyed on value equality of both vectors.
func searchKey(cubieCounts []int, share []bool) string {
	s := fmt.Sprint(cubieCounts, share)
	return s
}

func (mc *MemoCache) getSearch(key string) ([]Cycle, bool) {
	mc.searchMu.Lock()
	defer mc.searchMu.Unlock()
	v, ok := mc.searchTab[key]
	return v, ok
}

func (mc *MemoCache) putSearch(key string, v []Cycle) {
	mc.searchMu.Lock()
	defer mc.searchMu.Unlock()
	mc.searchTab[key] = v
}
