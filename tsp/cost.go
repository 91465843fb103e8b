// Package tsp - cost utilities.
//
// TourCost sums the closed-cycle cost of a visiting order; ForwardCost sums
// only the transitions the default objective encodes. Both are exact
// references for what a model assigns to a permutation assignment.
//
// Stable summation: results are rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"fmt"
	"math"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns Σ d(order[a], order[(a+1) mod N]) over all stops a,
// i.e. the cost of the closed Hamiltonian cycle. With WithBothDirections the
// model objective evaluated on Encoding.Assignment(order) equals this value.
//
// Errors: ErrDimensionMismatch when order is not a permutation of [0,N).
//
// Complexity: O(N).
func (inst *Instance) TourCost(order []int) (float64, error) {
	return inst.orderCost(order, false)
}

// ForwardCost returns the sum over stops a where order[a] < order[a+1 mod N]
// of d(order[a], order[a+1 mod N]). This is exactly the value of the default
// objective (one orientation per unordered pair) on the order's assignment.
//
// Complexity: O(N).
func (inst *Instance) ForwardCost(order []int) (float64, error) {
	return inst.orderCost(order, true)
}

func (inst *Instance) orderCost(order []int, forwardOnly bool) (float64, error) {
	if err := ValidatePermutation(order, inst.n); err != nil {
		return 0, fmt.Errorf("tour cost: %w", err)
	}

	var (
		sum  float64
		a    int
		u, v int
	)
	for a = 0; a < inst.n; a++ {
		u = order[a]
		v = order[(a+1)%inst.n]
		if forwardOnly && u >= v {
			continue
		}
		sum += inst.at(u, v)
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
