package layout

import (
	"math"
	"math/rand"
	"sort"
)

// Force refinement parameters. The pass is a heuristic overlap
// reducer, not a physical simulation: no velocity carries between
// iterations, and y is re-pinned after every step so only x drifts.
const (
	forceIterations    = 10
	repulsionStrength  = 5000.0
	attractionStrength = 0.1
	forceDamping       = 0.9
)

// refinePositions nudges node x-positions apart in place. Every node
// repels every other node with magnitude repulsion/distance², and is
// pulled back toward its pre-refinement position. Coincident nodes are
// pushed along a random unit vector drawn from rng. The x-coordinate
// is never clamped to the canvas, matching the ring and row structure
// the strategies produced.
func refinePositions(pos map[string]Point, rng *rand.Rand) {
	if len(pos) < 2 {
		return
	}

	ids := make([]string, 0, len(pos))
	for id := range pos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ideal := make(map[string]Point, len(pos))
	for id, p := range pos {
		ideal[id] = p
	}

	for iter := 0; iter < forceIterations; iter++ {
		forces := make(map[string]Point, len(pos))

		for i, a := range ids {
			for j, b := range ids {
				if i == j {
					continue
				}
				delta := pos[a].Sub(pos[b])
				d := math.Hypot(delta.X, delta.Y)
				if d < 1e-9 {
					theta := rng.Float64() * 2 * math.Pi
					delta = Point{X: math.Cos(theta), Y: math.Sin(theta)}
					d = 1
				}
				mag := repulsionStrength / (d * d)
				forces[a] = forces[a].Add(delta.Scale(mag / d))
			}
		}

		for _, id := range ids {
			pull := ideal[id].Sub(pos[id]).Scale(attractionStrength)
			step := forces[id].Add(pull).Scale(forceDamping)
			p := pos[id].Add(step)
			p.Y = ideal[id].Y
			pos[id] = p
		}
	}
}
