// Package tsp - visiting-order utilities.
//
// A visiting order is a permutation of {0..N-1}: order[stop] = city. It is the
// row-by-row reading of a permutation matrix and the form accepted by
// Encoding.Assignment and Instance.TourCost.
package tsp

import "fmt"

// ValidatePermutation checks that order is a permutation of {0..n-1}.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(order []int, n int) error {
	if n <= 0 || len(order) != n {
		return fmt.Errorf("permutation of length %d for %d cities: %w", len(order), n, ErrDimensionMismatch)
	}
	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n {
			return fmt.Errorf("city %d at stop %d out of range: %w", v, i, ErrDimensionMismatch)
		}
		if seen[v] {
			return fmt.Errorf("city %d repeated at stop %d: %w", v, i, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// IdentityOrder returns the visiting order [0, 1, …, n-1].
func IdentityOrder(n int) []int {
	if n < 0 {
		n = 0
	}
	var out = make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// RotateOrder returns order cyclically shifted left by k stops. Rotations
// describe the same physical tour; the model does not break this symmetry.
func RotateOrder(order []int, k int) []int {
	var n = len(order)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n
	var out = make([]int, 0, n)
	out = append(out, order[k:]...)
	out = append(out, order[:k]...)

	return out
}

// ReverseOrder returns order read backwards (the reflected tour).
func ReverseOrder(order []int) []int {
	var out = make([]int, len(order))
	for i, v := range order {
		out[len(order)-1-i] = v
	}

	return out
}
