package cycles

import (
	"fmt"
	"math/big"
)

// OrientationSumConstraint distinguishes an unconstrained per-orbit
// orientation sum from one that must sum to zero mod the orientation count.
type OrientationSumConstraint int

const (
	// SumNone places no constraint on the per-orbit orientation sum.
	SumNone OrientationSumConstraint = iota
	// SumZero requires the per-orbit orientation sum to be 0.
	SumZero
)

func (c OrientationSumConstraint) String() string {
	if c == SumZero {
		return "Zero"
	}
	return "None"
}

// OrientationRule is a tagged union: either a piece orbit has no orientation
// degree of freedom (CannotOrient), or each piece carries an orientation in
// Z/count with an optional zero-sum constraint (CanOrient).
type OrientationRule struct {
	// canOrient is false for CannotOrient.
	canOrient  bool
	count      int
	constraint OrientationSumConstraint
}

// CannotOrient returns the orientation rule for an orbit with no
// orientation degree of freedom.
func CannotOrient() OrientationRule {
	return OrientationRule{}
}

// CanOrient returns the orientation rule for an orbit whose pieces carry an
// orientation in Z/count, subject to the given sum constraint. count must
// be >= 2.
func CanOrient(count int, constraint OrientationSumConstraint) OrientationRule {
	return OrientationRule{canOrient: true, count: count, constraint: constraint}
}

// CanOrient reports whether the rule allows orientation.
func (r OrientationRule) CanOrient() bool { return r.canOrient }

// Count returns the orientation modulus. Only meaningful when CanOrient().
func (r OrientationRule) Count() int { return r.count }

// Constraint returns the sum constraint. Only meaningful when CanOrient().
func (r OrientationRule) Constraint() OrientationSumConstraint { return r.constraint }

func (r OrientationRule) String() string {
	if !r.canOrient {
		return "CannotOrient"
	}
	return fmt.Sprintf("CanOrient{count:%d, constraint:%s}", r.count, r.constraint)
}

// Orbit is one equivalence class of puzzle pieces that a group element
// permutes among themselves.
type Orbit struct {
	Name        string
	CubieCount  int
	Orientation OrientationRule
}

// EvenParityConstraint requires the sum, over the listed orbits, of each
// selected partition's signature to be even.
type EvenParityConstraint struct {
	Orbits []string
}

// PuzzleOrbitDefinition is the validated, immutable description of a puzzle
// the core operates on.
type PuzzleOrbitDefinition struct {
	Orbits     []Orbit
	EvenParity []EvenParityConstraint

	// orbitIndex maps orbit name to its position in Orbits, computed once
	// at construction time.
	orbitIndex map[string]int
	// constraintOrbitFlags[i] is true iff orbit i participates in at least
	// one EvenParityConstraint. Used by ReducedPartitionTable's domination
	// test (spec.md §4.3).
	constraintOrbitFlags []bool
}

// NewPuzzleOrbitDefinition validates and constructs a PuzzleOrbitDefinition.
// It rejects duplicate orbit names, non-positive cubie counts, orientation
// counts below 2, and parity constraints referencing unknown orbit names.
func NewPuzzleOrbitDefinition(orbits []Orbit, evenParity []EvenParityConstraint) (*PuzzleOrbitDefinition, error) {
	if len(orbits) == 0 {
		return nil, &ValidationError{Field: "orbits", Reason: "must be non-empty", Err: ErrNoOrbits}
	}

	index := make(map[string]int, len(orbits))
	for i, o := range orbits {
		if o.Name == "" {
			return nil, &ValidationError{Field: "orbits", Reason: "orbit name must be non-empty"}
		}
		if _, dup := index[o.Name]; dup {
			return nil, &ValidationError{Field: "orbits", Reason: fmt.Sprintf("duplicate orbit name %q", o.Name), Err: ErrDuplicateOrbit}
		}
		if o.CubieCount < 1 {
			return nil, &ValidationError{Field: "orbits", Reason: fmt.Sprintf("orbit %q: cubie_count must be >= 1", o.Name)}
		}
		if o.Orientation.canOrient && o.Orientation.count < 2 {
			return nil, &ValidationError{Field: "orbits", Reason: fmt.Sprintf("orbit %q: orientation count must be >= 2", o.Name), Err: ErrBadOrientationCount}
		}
		index[o.Name] = i
	}

	flags := make([]bool, len(orbits))
	for _, c := range evenParity {
		if len(c.Orbits) == 0 {
			return nil, &ValidationError{Field: "even_parity", Reason: "constraint must reference at least one orbit"}
		}
		for _, name := range c.Orbits {
			i, ok := index[name]
			if !ok {
				return nil, &ValidationError{Field: "even_parity", Reason: fmt.Sprintf("unknown orbit name %q", name), Err: ErrUnknownOrbitName}
			}
			flags[i] = true
		}
	}

	return &PuzzleOrbitDefinition{
		Orbits:               append([]Orbit(nil), orbits...),
		EvenParity:           append([]EvenParityConstraint(nil), evenParity...),
		orbitIndex:           index,
		constraintOrbitFlags: flags,
	}, nil
}

// OrbitIndex returns the position of the named orbit, or -1 if unknown.
func (d *PuzzleOrbitDefinition) OrbitIndex(name string) int {
	if i, ok := d.orbitIndex[name]; ok {
		return i
	}
	return -1
}

// ParticipatesInParity reports whether orbit i participates in any
// EvenParityConstraint.
func (d *PuzzleOrbitDefinition) ParticipatesInParity(i int) bool {
	return d.constraintOrbitFlags[i]
}

// CubiePartition describes one orbit's contribution to one group element's
// cycle structure: the cycle-length partition, the order it realizes under
// the orbit's orientation rule, and which partition positions are forced or
// eligible to be "oriented".
type CubiePartition struct {
	OrbitName      string
	Partition      []int
	Order          *big.Int
	AlwaysOrient   []int
	CriticalOrient []int
}

// Signature returns (sum(partition) - len(partition)) mod 2.
func (p CubiePartition) Signature() int {
	return signature(p.Partition)
}

// equalPartition reports whether two CubiePartitions have identical
// cycle-length sequences (used by dominance/tie-break comparisons).
func equalPartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Cycle is a single group element's full description across all orbits.
type Cycle struct {
	Order        *big.Int
	Share        []bool
	PartitionObj []CubiePartition
}

// CycleCombination is one candidate of N mutually commuting elements.
type CycleCombination struct {
	UsedCubieCounts []int
	OrderProduct    *big.Int
	ShareOrders     [][]int
	Cycles          []Cycle
}
