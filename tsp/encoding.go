package tsp

import (
	"fmt"

	"github.com/katalvlaran/permqp/qp"
)

// Encoding is the dense bijection between (city, stop) pairs and variable
// handles of an N-city model:
//
//	Var(city, stop) = city·N + stop,   Coords(id) = (id / N, id mod N).
//
// Builders declare variables in exactly this order, so the handle returned
// by qp.Model.AddBinaryVar equals Var(city, stop).
type Encoding struct {
	n int
}

// NewEncoding returns the encoding for n cities.
func NewEncoding(n int) Encoding { return Encoding{n: n} }

// NumCities returns N.
func (e Encoding) NumCities() int { return e.n }

// Size returns N², the number of variables.
func (e Encoding) Size() int { return e.n * e.n }

// Var returns the handle of x(city, stop). Arguments are not range-checked;
// use Valid for untrusted input.
func (e Encoding) Var(city, stop int) qp.VarID {
	return qp.VarID(city*e.n + stop)
}

// Coords inverts Var.
func (e Encoding) Coords(id qp.VarID) (city, stop int) {
	return int(id) / e.n, int(id) % e.n
}

// Valid reports whether (city, stop) lies in [0,N)².
func (e Encoding) Valid(city, stop int) bool {
	return city >= 0 && city < e.n && stop >= 0 && stop < e.n
}

// Next returns the cyclic successor stop (stop+1) mod N.
func (e Encoding) Next(stop int) int { return (stop + 1) % e.n }

// Assignment encodes a visiting order (order[stop] = city) as a 0/1 vector
// indexed by handle: the permutation matrix of the tour, flattened.
//
// Errors: ErrDimensionMismatch when order is not a permutation of [0,N).
//
// Complexity: O(N²) allocation, O(N) writes.
func (e Encoding) Assignment(order []int) ([]bool, error) {
	if err := ValidatePermutation(order, e.n); err != nil {
		return nil, fmt.Errorf("Assignment: %w", err)
	}
	var x = make([]bool, e.Size())
	for stop, city := range order {
		x[e.Var(city, stop)] = true
	}

	return x, nil
}
