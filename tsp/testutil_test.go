// Package tsp_test provides lightweight helpers shared across the *_test.go
// files of this package: tiny matrix implementations, instance builders and
// permutation enumeration.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permqp/qp"
	"github.com/katalvlaran/permqp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for comparing objective values with tour costs.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for generated instances.
	seedDet = int64(7)

	// maxEnumN bounds exhaustive permutation checks (N! assignments).
	maxEnumN = 6
)

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests (bounds-checked).
// -----------------------------------------------------------------------------

// testDense is a dense matrix satisfying tsp.DistanceMatrix.
type testDense struct{ a [][]float64 }

var _ tsp.DistanceMatrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= len(m.a[i]) {
		return 0, tsp.ErrDimensionMismatch
	}

	return m.a[i][j], nil
}

// -----------------------------------------------------------------------------
// Instance builders
// -----------------------------------------------------------------------------

// mustInstance builds an instance or fails the test.
func mustInstance(t testing.TB, n int, d map[tsp.Pair]float64) *tsp.Instance {
	t.Helper()
	inst, err := tsp.NewInstance(n, d)
	require.NoError(t, err)

	return inst
}

// distinctInstance assigns every pair a different cost so that recovered
// coefficients identify their pair: d(i,j) = 10·(i+1) + (j+1).
func distinctInstance(t testing.TB, n int) *tsp.Instance {
	t.Helper()
	var d = make(map[tsp.Pair]float64, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d[tsp.Pair{I: i, J: j}] = float64(10*(i+1) + (j + 1))
		}
	}

	return mustInstance(t, n, d)
}

// euclid builds a symmetric Euclidean matrix from 2D points.
func euclid(pts [][2]float64) testDense {
	var (
		n = len(pts)
		a = make([][]float64, n)
	)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			a[i][j] = d
			a[j][i] = d
		}
	}

	return testDense{a: a}
}

// -----------------------------------------------------------------------------
// Model helpers
// -----------------------------------------------------------------------------

// mustBuild builds the model of inst or fails the test.
func mustBuild(t testing.TB, inst *tsp.Instance, opts ...tsp.Option) *qp.Model {
	t.Helper()
	m, err := tsp.Build(inst, opts...)
	require.NoError(t, err)
	require.True(t, m.Ready())

	return m
}

// forEachPermutation calls fn with every permutation of [0,n) (Heap's
// algorithm). fn must not retain the slice.
func forEachPermutation(n int, fn func(order []int)) {
	var (
		a = tsp.IdentityOrder(n)
		c = make([]int, n)
		i = 0
	)
	fn(a)
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			fn(a)
			c[i]++
			i = 0
			continue
		}
		c[i] = 0
		i++
	}
}

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}
