// Package puzzledefs builds cycles.PuzzleOrbitDefinition values for the
// twisty-puzzle families the original three-phase solver targeted: NxNxN
// cubes and N-layer megaminxes.
package puzzledefs

import (
	"fmt"

	"github.com/gitrdm/cyclesolver/pkg/cycles"
)

// Cube builds the orbit structure of an NxNxN Rubik's-cube-style puzzle,
// N >= 2. Odd N carries edges and a center row tied to corner parity; every
// N carries wing, x-center, and oblique orbits scaling as (N/2 - 1) and
// (N/2 - 1)^2 respectively.
func Cube(n int) (*cycles.PuzzleOrbitDefinition, error) {
	if n < 2 {
		return nil, fmt.Errorf("puzzledefs: cube size must be >= 2, got %d", n)
	}

	orbits := []cycles.Orbit{
		{Name: "corners", CubieCount: 8, Orientation: cycles.CanOrient(3, cycles.SumZero)},
	}
	var parity []cycles.EvenParityConstraint

	if n%2 == 1 {
		orbits = append(orbits, cycles.Orbit{
			Name: "edges", CubieCount: 12, Orientation: cycles.CanOrient(2, cycles.SumZero),
		})
		parity = append(parity, cycles.EvenParityConstraint{Orbits: []string{"edges", "corners"}})

		for c2 := 1; c2 < n/2; c2++ {
			name := fmt.Sprintf("+centers%d", c2)
			orbits = append(orbits, cycles.Orbit{Name: name, CubieCount: 24, Orientation: cycles.CannotOrient()})
			parity = append(parity, cycles.EvenParityConstraint{
				Orbits: []string{"corners", fmt.Sprintf("wings%d", c2), name},
			})
		}
	}

	for w := 1; w < n/2; w++ {
		orbits = append(orbits, cycles.Orbit{
			Name: fmt.Sprintf("wings%d", w), CubieCount: 24, Orientation: cycles.CannotOrient(),
		})
	}

	for c1 := 1; c1 < n/2; c1++ {
		for c2 := 1; c2 < n/2; c2++ {
			if c1 == c2 {
				name := fmt.Sprintf("xcenters%d", c1)
				orbits = append(orbits, cycles.Orbit{Name: name, CubieCount: 24, Orientation: cycles.CannotOrient()})
				parity = append(parity, cycles.EvenParityConstraint{Orbits: []string{"corners", name}})
				continue
			}
			name := fmt.Sprintf("obliques%d;%d", c1, c2)
			orbits = append(orbits, cycles.Orbit{Name: name, CubieCount: 24, Orientation: cycles.CannotOrient()})
			parity = append(parity, cycles.EvenParityConstraint{
				Orbits: []string{"corners", fmt.Sprintf("wings%d", c1), fmt.Sprintf("wings%d", c2), name},
			})
		}
	}

	return cycles.NewPuzzleOrbitDefinition(orbits, parity)
}

// Minx builds the orbit structure of an N-layer megaminx-style dodecahedral
// puzzle, N >= 2. Every orbit carries even parity on its own, since every
// face turn on these puzzles induces only 5-cycles.
func Minx(n int) (*cycles.PuzzleOrbitDefinition, error) {
	if n < 2 {
		return nil, fmt.Errorf("puzzledefs: minx size must be >= 2, got %d", n)
	}

	orbits := []cycles.Orbit{
		{Name: "corners", CubieCount: 20, Orientation: cycles.CanOrient(3, cycles.SumZero)},
	}
	parity := []cycles.EvenParityConstraint{{Orbits: []string{"corners"}}}

	if n%2 == 1 {
		orbits = append(orbits, cycles.Orbit{
			Name: "edges", CubieCount: 30, Orientation: cycles.CanOrient(2, cycles.SumZero),
		})
		parity = append(parity, cycles.EvenParityConstraint{Orbits: []string{"edges"}})

		for c2 := 1; c2 < n/2; c2++ {
			name := fmt.Sprintf("+centers%d", c2)
			orbits = append(orbits, cycles.Orbit{Name: name, CubieCount: 60, Orientation: cycles.CannotOrient()})
			parity = append(parity, cycles.EvenParityConstraint{Orbits: []string{name}})
		}
	}

	for w := 1; w < n/2; w++ {
		name := fmt.Sprintf("wings%d", w)
		orbits = append(orbits, cycles.Orbit{Name: name, CubieCount: 60, Orientation: cycles.CannotOrient()})
		parity = append(parity, cycles.EvenParityConstraint{Orbits: []string{name}})
	}

	for c1 := 1; c1 < n/2; c1++ {
		for c2 := 1; c2 < n/2; c2++ {
			var name string
			if c1 == c2 {
				name = fmt.Sprintf("xcenters%d", c1)
			} else {
				name = fmt.Sprintf("obliques%d;%d", c1, c2)
			}
			orbits = append(orbits, cycles.Orbit{Name: name, CubieCount: 60, Orientation: cycles.CannotOrient()})
			parity = append(parity, cycles.EvenParityConstraint{Orbits: []string{name}})
		}
	}

	return cycles.NewPuzzleOrbitDefinition(orbits, parity)
}
