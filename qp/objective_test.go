package qp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permqp/qp"
)

func TestObjective_Accumulates(t *testing.T) {
	obj := qp.NewObjective(qp.Minimize, 4)
	require.True(t, obj.IsZero())

	require.NoError(t, obj.AddQuadratic(0, 1, 2))
	require.NoError(t, obj.AddQuadratic(2, 3, 1))
	require.NoError(t, obj.AddQuadratic(0, 1, 0.5))
	require.NoError(t, obj.AddLinear(4, 3))
	require.NoError(t, obj.AddLinear(4, -1))

	require.Equal(t, 2, obj.Len())
	require.Equal(t, []qp.QuadraticTerm{
		{Pair: qp.VarPair{A: 0, B: 1}, Coeff: 2.5},
		{Pair: qp.VarPair{A: 2, B: 3}, Coeff: 1},
	}, obj.QuadraticTerms())
	require.Equal(t, []qp.LinearTerm{{Var: 4, Coeff: 2}}, obj.LinearTerms())
	require.False(t, obj.IsZero())
}

func TestObjective_OrderedKeysAndCanonical(t *testing.T) {
	obj := qp.NewObjective(qp.Minimize, 3)
	require.NoError(t, obj.AddQuadratic(1, 0, 2))
	require.NoError(t, obj.AddQuadratic(0, 1, 3))
	require.NoError(t, obj.AddQuadratic(2, 2, 1))

	require.Equal(t, 3, obj.Len())
	c, ok := obj.Quadratic(1, 0)
	require.True(t, ok)
	require.Equal(t, 2.0, c)
	c, ok = obj.Quadratic(0, 1)
	require.True(t, ok)
	require.Equal(t, 3.0, c)
	_, ok = obj.Quadratic(0, 2)
	require.False(t, ok)

	require.Equal(t, []qp.QuadraticTerm{
		{Pair: qp.VarPair{A: 0, B: 1}, Coeff: 5},
		{Pair: qp.VarPair{A: 2, B: 2}, Coeff: 1},
	}, obj.Canonical())
}

func TestObjective_RejectsInvalidInput(t *testing.T) {
	obj := qp.NewObjective(qp.Maximize, 0)
	require.Equal(t, qp.Maximize, obj.Sense())

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, obj.AddQuadratic(0, 1, v), qp.ErrInvalidCoefficient)
		require.ErrorIs(t, obj.AddLinear(0, v), qp.ErrInvalidCoefficient)
		require.ErrorIs(t, obj.SetConstant(v), qp.ErrInvalidCoefficient)
	}
	require.ErrorIs(t, obj.AddQuadratic(-1, 1, 1), qp.ErrUnknownVariable)
	require.ErrorIs(t, obj.AddLinear(-2, 1), qp.ErrUnknownVariable)
	require.True(t, obj.IsZero())

	require.NoError(t, obj.SetConstant(4))
	require.Equal(t, 4.0, obj.Constant())
}

func TestLinearConstraint_Terms(t *testing.T) {
	c := qp.NewLinearConstraint("row", qp.GE, 2, 0)
	require.Equal(t, "row", c.Name())
	require.Equal(t, ">=", c.Sense().String())

	require.NoError(t, c.AddTerm(3, 1))
	require.NoError(t, c.AddTerm(1, 2))
	require.NoError(t, c.AddTerm(3, 1))
	require.ErrorIs(t, c.AddTerm(0, math.NaN()), qp.ErrInvalidCoefficient)
	require.ErrorIs(t, c.AddTerm(-1, 1), qp.ErrUnknownVariable)

	require.Equal(t, 2, c.Len())
	require.Equal(t, []qp.LinearTerm{{Var: 3, Coeff: 2}, {Var: 1, Coeff: 2}}, c.Terms())
	_, ok := c.Coefficient(0)
	require.False(t, ok)
}

func TestVarPair_Canonical(t *testing.T) {
	require.Equal(t, qp.VarPair{A: 1, B: 4}, qp.VarPair{A: 4, B: 1}.Canonical())
	require.Equal(t, qp.VarPair{A: 1, B: 4}, qp.VarPair{A: 1, B: 4}.Canonical())
}
