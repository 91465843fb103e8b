// Package tsp - immutable problem instance.
//
// An Instance is a complete, symmetric, non-negative cost structure over N
// cities. Costs are keyed by canonical unordered pairs, so Distance(i,j) and
// Distance(j,i) always agree. Internally the costs are also laid out in a
// dense N×N slice for O(1) lookups by the objective builder.
package tsp

import "fmt"

// Instance is a validated TSP instance. The zero value is not usable;
// construct instances with NewInstance, NewInstanceFromMatrix, LoadInstance
// or RandomEuclidean.
type Instance struct {
	name  string
	n     int
	pairs map[Pair]float64
	dense []float64 // row-major n×n, zero diagonal
}

// NewInstance validates distances and returns an instance over n cities.
// Keys may be given in either orientation; every unordered pair of distinct
// cities must be present. The input map is not retained.
//
// Errors: ErrInvalidInstance (see validate.go for the individual checks).
//
// Complexity: O(N² + E log E).
func NewInstance(n int, distances map[Pair]float64) (*Instance, error) {
	if err := validateCityCount(n); err != nil {
		return nil, err
	}
	canon, err := canonicalDistances(n, distances)
	if err != nil {
		return nil, err
	}
	if err = validateComplete(n, canon); err != nil {
		return nil, err
	}

	return newInstance(n, canon), nil
}

// NewInstanceFromMatrix builds an instance from a square, symmetric matrix
// with zero diagonal and non-negative finite off-diagonal entries.
//
// Complexity: O(N²).
func NewInstanceFromMatrix(m DistanceMatrix) (*Instance, error) {
	n, err := validateMatrix(m)
	if err != nil {
		return nil, err
	}

	var (
		canon = make(map[Pair]float64, n*(n-1)/2)
		i, j  int
		v     float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ = m.At(i, j) // readable: validateMatrix touched every cell
			canon[Pair{I: i, J: j}] = v
		}
	}

	return newInstance(n, canon), nil
}

// newInstance lays out validated canonical costs.
func newInstance(n int, canon map[Pair]float64) *Instance {
	var dense = make([]float64, n*n)
	for p, c := range canon {
		dense[p.I*n+p.J] = c
		dense[p.J*n+p.I] = c
	}

	return &Instance{n: n, pairs: canon, dense: dense}
}

// WithName returns a copy of inst carrying name.
func (inst *Instance) WithName(name string) *Instance {
	var c = *inst
	c.name = name

	return &c
}

// Name returns the instance name ("" when unnamed).
func (inst *Instance) Name() string { return inst.name }

// NumCities returns N.
func (inst *Instance) NumCities() int { return inst.n }

// NumPairs returns C(N,2).
func (inst *Instance) NumPairs() int { return inst.n * (inst.n - 1) / 2 }

// Distance returns the cost between cities i and j; Distance(i,i) is 0.
//
// Errors: ErrInvalidInstance when i or j is out of range.
func (inst *Instance) Distance(i, j int) (float64, error) {
	if i < 0 || i >= inst.n || j < 0 || j >= inst.n {
		return 0, fmt.Errorf("Distance(%d,%d) with %d cities: %w", i, j, inst.n, ErrInvalidInstance)
	}

	return inst.dense[i*inst.n+j], nil
}

// at is the unchecked lookup used on hot paths after validation.
func (inst *Instance) at(i, j int) float64 { return inst.dense[i*inst.n+j] }

// Distances returns a copy of the canonical pair→cost mapping.
func (inst *Instance) Distances() map[Pair]float64 {
	var out = make(map[Pair]float64, len(inst.pairs))
	for k, v := range inst.pairs {
		out[k] = v
	}

	return out
}

// Pairs returns all canonical pairs in lexicographic order:
// (0,1), (0,2), …, (0,N-1), (1,2), …, (N-2,N-1).
//
// Complexity: O(N²).
func (inst *Instance) Pairs() []Pair {
	var (
		out  = make([]Pair, 0, inst.NumPairs())
		i, j int
	)
	for i = 0; i < inst.n; i++ {
		for j = i + 1; j < inst.n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}

	return out
}

// validate re-checks an instance handed to a builder. Instances from the
// constructors always pass; a zero Instance does not.
func (inst *Instance) validate() error {
	if inst == nil {
		return invalidf("nil instance")
	}
	if err := validateCityCount(inst.n); err != nil {
		return err
	}
	if len(inst.dense) != inst.n*inst.n {
		return invalidf("instance not initialized")
	}

	return validateComplete(inst.n, inst.pairs)
}
