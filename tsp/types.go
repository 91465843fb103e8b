package tsp

import "errors"

var (
	// ErrInvalidInstance is returned when an instance cannot describe a
	// complete symmetric TSP: fewer than one city, a missing, self or
	// out-of-range pair, a negative/NaN/Inf cost, conflicting (i,j)/(j,i)
	// costs, or a malformed instance file.
	ErrInvalidInstance = errors.New("tsp: invalid instance")

	// ErrEncodingMismatch is returned when a declared variable handle does not
	// equal the dense (city, stop) index. It indicates a model that was not
	// built by a single Builder from an empty state.
	ErrEncodingMismatch = errors.New("tsp: variable handle does not match encoding")

	// ErrDimensionMismatch is returned by tour utilities for permutations of
	// the wrong length or with out-of-range/duplicate cities.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// Pair is an unordered pair of distinct cities in canonical form (I < J).
type Pair struct {
	I int
	J int
}

// NewPair returns the canonical pair {i, j}.
func NewPair(i, j int) Pair {
	if j < i {
		return Pair{I: j, J: i}
	}

	return Pair{I: i, J: j}
}

// Canonical returns p with I < J.
func (p Pair) Canonical() Pair { return NewPair(p.I, p.J) }

// DistanceMatrix is the read surface of a square cost matrix.
// It is satisfied by dense matrix types exposing Rows/Cols/At.
type DistanceMatrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
}
