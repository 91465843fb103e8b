// Package tsp - deterministic instance generation.
//
// RandomEuclidean places N points uniformly in a [0,scale)² square and uses
// rounded Euclidean distances. Same (n, seed, scale) ⇒ identical instance on
// every platform; seed==0 selects a fixed default stream. No time-based
// randomness is used anywhere.
package tsp

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// DefaultScale is the side of the square used when scale ≤ 0.
const DefaultScale = 100.0

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ defaultRNGSeed).
// math/rand.Rand is not goroutine-safe; each call gets its own stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Point is a city location in the plane.
type Point struct {
	X float64
	Y float64
}

// RandomPoints returns n deterministic points in [0,scale)².
//
// Complexity: O(n).
func RandomPoints(n int, seed int64, scale float64) []Point {
	if n < 0 {
		n = 0
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = DefaultScale
	}
	var (
		r   = rngFromSeed(seed)
		out = make([]Point, n)
	)
	for i := range out {
		out[i] = Point{X: r.Float64() * scale, Y: r.Float64() * scale}
	}

	return out
}

// NewInstanceFromPoints builds a Euclidean instance, distances rounded to 1e-9.
//
// Errors: ErrInvalidInstance for an empty point set.
//
// Complexity: O(N²).
func NewInstanceFromPoints(points []Point) (*Instance, error) {
	var (
		n    = len(points)
		d    = make(map[Pair]float64, n*(n-1)/2)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d[Pair{I: i, J: j}] = round1e9(math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y))
		}
	}

	return NewInstance(n, d)
}

// RandomEuclidean returns a deterministic Euclidean instance named
// "euclid-{n}-{seed}".
//
// Errors: ErrInvalidInstance for n < 1.
func RandomEuclidean(n int, seed int64, scale float64) (*Instance, error) {
	if err := validateCityCount(n); err != nil {
		return nil, err
	}
	inst, err := NewInstanceFromPoints(RandomPoints(n, seed, scale))
	if err != nil {
		return nil, err
	}

	return inst.WithName(fmt.Sprintf("euclid-%d-%d", n, seed)), nil
}
