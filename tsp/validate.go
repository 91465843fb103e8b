// Package tsp - validation utilities for instances.
//
// This file contains small, deterministic helpers that:
//  1. Validate the city count.
//  2. Validate and canonicalize pair→cost entries (range, self pairs, finiteness,
//     negativity, conflicting duplicates).
//  3. Validate completeness over all C(N,2) unordered pairs.
//  4. Validate square distance matrices (shape, diagonal, symmetry).
//
// Design principles:
//   - Deterministic: entries are checked in sorted order, so the first reported
//     problem does not depend on map iteration.
//   - No logging, no panics on user input - only ErrInvalidInstance with context.
//   - O(N²) worst-case.
package tsp

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// invalidf wraps ErrInvalidInstance with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInstance, fmt.Sprintf(format, args...))
}

// validateCityCount enforces N ≥ 1.
//
// Complexity: O(1).
func validateCityCount(n int) error {
	if n < 1 {
		return invalidf("num_cities %d < 1", n)
	}

	return nil
}

// validateCost rejects NaN, ±Inf and negative costs.
//
// Complexity: O(1).
func validateCost(p Pair, c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return invalidf("cost of pair (%d,%d) is not finite", p.I, p.J)
	}
	if c < 0 {
		return invalidf("cost of pair (%d,%d) is negative: %v", p.I, p.J, c)
	}

	return nil
}

// validatePair checks range and distinctness of a raw (possibly reversed) key.
//
// Complexity: O(1).
func validatePair(n int, p Pair) error {
	if p.I < 0 || p.I >= n || p.J < 0 || p.J >= n {
		return invalidf("pair (%d,%d) out of range [0,%d)", p.I, p.J, n)
	}
	if p.I == p.J {
		return invalidf("self pair (%d,%d)", p.I, p.J)
	}

	return nil
}

// canonicalDistances validates raw entries and folds them into canonical
// pairs. Both (i,j) and (j,i) may be given only when their costs agree.
//
// Complexity: O(E log E) for E entries (sorting for determinism).
func canonicalDistances(n int, raw map[Pair]float64) (map[Pair]float64, error) {
	var keys = make([]Pair, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Pair) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}
		return cmp.Compare(a.J, b.J)
	})

	var (
		out  = make(map[Pair]float64, len(raw))
		cost float64
		key  Pair
		prev float64
		seen bool
		err  error
	)
	for _, k := range keys {
		if err = validatePair(n, k); err != nil {
			return nil, err
		}
		cost = raw[k]
		key = k.Canonical()
		if err = validateCost(key, cost); err != nil {
			return nil, err
		}
		if prev, seen = out[key]; seen && math.Abs(prev-cost) > symTol {
			return nil, invalidf("asymmetric costs for pair (%d,%d): %v vs %v", key.I, key.J, prev, cost)
		}
		out[key] = cost
	}

	return out, nil
}

// validateComplete checks that every unordered pair i<j has a cost.
// Pairs are scanned in lexicographic order; the first gap is reported.
//
// Complexity: O(N²).
func validateComplete(n int, d map[Pair]float64) error {
	var (
		i, j int
		ok   bool
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if _, ok = d[Pair{I: i, J: j}]; !ok {
				return invalidf("missing distance for pair (%d,%d)", i, j)
			}
		}
	}

	return nil
}

// validateMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 1,
//   - diagonal ≈ 0 (|a_ii| ≤ symTol), finite,
//   - off-diagonal finite and non-negative,
//   - |a_ij − a_ji| ≤ symTol.
//
// Returns n on success.
//
// Complexity: O(N²).
func validateMatrix(m DistanceMatrix) (int, error) {
	if m == nil {
		return 0, invalidf("nil distance matrix")
	}
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc {
		return 0, invalidf("distance matrix is %dx%d, not square", nr, nc)
	}
	if err := validateCityCount(nr); err != nil {
		return 0, err
	}

	var (
		n        = nr
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		if aij, err = m.At(i, i); err != nil {
			return 0, invalidf("read (%d,%d): %v", i, i, err)
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) || math.Abs(aij) > symTol {
			return 0, invalidf("diagonal entry (%d,%d)=%v is not zero", i, i, aij)
		}
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return 0, invalidf("read (%d,%d): %v", i, j, err)
			}
			if aji, err = m.At(j, i); err != nil {
				return 0, invalidf("read (%d,%d): %v", j, i, err)
			}
			if err = validateCost(Pair{I: i, J: j}, aij); err != nil {
				return 0, err
			}
			if err = validateCost(Pair{I: j, J: i}, aji); err != nil {
				return 0, err
			}
			if math.Abs(aij-aji) > symTol {
				return 0, invalidf("asymmetric costs for pair (%d,%d): %v vs %v", i, j, aij, aji)
			}
		}
	}

	return n, nil
}
