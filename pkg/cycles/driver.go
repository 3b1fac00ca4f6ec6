package cycles

import (
	"context"
	"log"
	"sync"

	"github.com/gitrdm/cyclesolver/internal/parallel"
)

// DriverOption configures a Driver. Modeled on the teacher's OptimizeOption
// functional-options pattern.
type DriverOption func(*driverConfig)

type driverConfig struct {
	logger      *log.Logger
	workerCount int
}

// WithLogger attaches a logger for progress diagnostics. Nil (the default)
// disables logging.
func WithLogger(l *log.Logger) DriverOption {
	return func(c *driverConfig) { c.logger = l }
}

// WithWorkerCount shards the outer used-cubie-counts loop across the given
// number of goroutines, all sharing one MemoCache. A value <= 1 (the
// default) runs sequentially.
func WithWorkerCount(n int) DriverOption {
	return func(c *driverConfig) { c.workerCount = n }
}

// Driver orchestrates CombinationEnumerator and ParetoFilter for one puzzle
// definition and cycle count, per spec.md §5.
type Driver struct {
	def       *PuzzleOrbitDefinition
	numCycles int
	cfg       driverConfig
	cache     *MemoCache
}

// NewDriver constructs a Driver with a fresh MemoCache scoped to this
// invocation (see MemoCache).
func NewDriver(def *PuzzleOrbitDefinition, numCycles int, opts ...DriverOption) *Driver {
	cfg := driverConfig{workerCount: 1}
	for _, o := range opts {
		o(&cfg)
	}
	return &Driver{
		def:       def,
		numCycles: numCycles,
		cfg:       cfg,
		cache:     NewMemoCache(),
	}
}

// Run finds every Pareto-optimal CycleCombination for the driver's puzzle
// definition and cycle count. It runs sequentially unless WithWorkerCount
// configured more than one shard, in which case the outer used-cubie-counts
// loop is sharded across a parallel.WorkerPool and every shard's results
// are merged and Pareto-filtered together after all shards complete.
func (d *Driver) Run(ctx context.Context) ([]CycleCombination, error) {
	if d.cfg.workerCount <= 1 {
		all := CombinationEnumerator(ctx, d.cache, d.def, d.numCycles)
		d.log("sequential run produced %d candidates", len(all))
		return ParetoFilter(all), ctx.Err()
	}
	return d.runSharded(ctx)
}

// runSharded partitions the outer loop by the first orbit's used-cubie
// count (the same dimension CombinationEnumerator's own outer loop walks),
// dispatching one task per value to a bounded parallel.WorkerPool.
func (d *Driver) runSharded(ctx context.Context) ([]CycleCombination, error) {
	pool := parallel.NewWorkerPool(d.cfg.workerCount)
	defer pool.Shutdown()

	n := len(d.def.Orbits)
	if n == 0 {
		return nil, nil
	}

	var mu sync.Mutex
	var all []CycleCombination
	var submitErr error

	for c := 1; c <= d.def.Orbits[0].CubieCount; c++ {
		c := c
		err := pool.Submit(ctx, func() {
			shard := enumerateShardForFirstOrbitCount(ctx, d.cache, d.def, d.numCycles, c)
			mu.Lock()
			all = append(all, shard...)
			mu.Unlock()
		})
		if err != nil {
			submitErr = err
			break
		}
	}

	pool.Shutdown()
	if submitErr != nil {
		return nil, submitErr
	}

	d.log("parallel run (%d workers) produced %d candidates", d.cfg.workerCount, len(all))
	return ParetoFilter(all), ctx.Err()
}

func (d *Driver) log(format string, args ...interface{}) {
	if d.cfg.logger != nil {
		d.cfg.logger.Printf(format, args...)
	}
}

// enumerateShardForFirstOrbitCount runs CombinationEnumerator restricted to
// used-cubie-counts vectors whose first-orbit entry equals firstCount. It
// shares the caller's MemoCache, letting independent shards reuse each
// other's per-orbit reduced-partition and search results. Like
// CombinationEnumerator, it checks ctx cooperatively between used-cubie
// tuples rather than inside one tuple's search.
func enumerateShardForFirstOrbitCount(ctx context.Context, mc *MemoCache, def *PuzzleOrbitDefinition, numCycles, firstCount int) []CycleCombination {
	n := len(def.Orbits)
	var out []CycleCombination

	usedCounts := make([]int, n)
	usedCounts[0] = firstCount

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
	walkUsed(1)
	return out
}
