package tsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/permqp/qp"
	"github.com/katalvlaran/permqp/tsp"
)

func TestBuild_Counts(t *testing.T) {
	for n := 2; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := mustBuild(t, distinctInstance(t, n))

			pairs := n * (n - 1) / 2
			require.Equal(t, qp.Stats{
				Variables:      n * n,
				QuadraticTerms: pairs * n,
				Constraints:    2 * n,
			}, m.Stats())
			require.Equal(t, tsp.NumObjectiveTerms(n, false), m.Stats().QuadraticTerms)

			both := mustBuild(t, distinctInstance(t, n), tsp.WithBothDirections())
			require.Equal(t, 2*pairs*n, both.Stats().QuadraticTerms)
			require.Equal(t, n*n*(n-1), tsp.NumObjectiveTerms(n, true))
		})
	}
}

func TestBuild_NamesAreUnique(t *testing.T) {
	const n = 5
	m := mustBuild(t, distinctInstance(t, n))

	names := make(map[string]bool)
	for _, v := range m.Variables() {
		require.False(t, names[v.Name], v.Name)
		names[v.Name] = true
	}
	require.Len(t, names, n*n)

	cons := make(map[string]bool)
	for _, c := range m.Constraints() {
		require.False(t, cons[c.Name()], c.Name())
		cons[c.Name()] = true
	}
	require.Len(t, cons, 2*n)
}

func TestBuild_VariablesFollowEncoding(t *testing.T) {
	const n = 4
	m := mustBuild(t, distinctInstance(t, n))
	enc := tsp.NewEncoding(n)

	for city := 0; city < n; city++ {
		for stop := 0; stop < n; stop++ {
			id, err := m.VariableByName(tsp.DefaultVariableName(city, stop))
			require.NoError(t, err)
			require.Equal(t, enc.Var(city, stop), id)
		}
	}
}

func TestBuild_ObjectiveRecoversDistances(t *testing.T) {
	for _, both := range []bool{false, true} {
		t.Run(fmt.Sprintf("both=%v", both), func(t *testing.T) {
			const n = 5
			var (
				inst = distinctInstance(t, n)
				enc  = tsp.NewEncoding(n)
				opts []tsp.Option
			)
			if both {
				opts = append(opts, tsp.WithBothDirections())
			}
			m := mustBuild(t, inst, opts...)

			perPair := make(map[tsp.Pair]int)
			for _, term := range m.Objective().QuadraticTerms() {
				i, a := enc.Coords(term.Pair.A)
				j, b := enc.Coords(term.Pair.B)
				require.NotEqual(t, i, j)
				require.Equal(t, enc.Next(a), b, "stop of second factor follows the first")
				if !both {
					require.Less(t, i, j, "default orientation has the smaller city first")
				}

				d, err := inst.Distance(i, j)
				require.NoError(t, err)
				require.Equal(t, d, term.Coeff)
				perPair[tsp.NewPair(i, j)]++
			}

			want := n
			if both {
				want = 2 * n
			}
			require.Len(t, perPair, inst.NumPairs())
			for p, c := range perPair {
				require.Equal(t, want, c, "pair %v", p)
			}
		})
	}
}

func TestBuild_ThreeCityScenario(t *testing.T) {
	inst := mustInstance(t, 3, map[tsp.Pair]float64{
		{I: 0, J: 1}: 1,
		{I: 0, J: 2}: 2,
		{I: 1, J: 2}: 3,
	})
	m := mustBuild(t, inst)

	a, err := m.VariableByName("x_0_0")
	require.NoError(t, err)
	b, err := m.VariableByName("x_1_1")
	require.NoError(t, err)
	c, ok := m.Objective().Quadratic(a, b)
	require.True(t, ok)
	require.Equal(t, 1.0, c)

	// Wrap-around: city 1 at the last stop, city 2 back at stop 0.
	a, err = m.VariableByName("x_1_2")
	require.NoError(t, err)
	b, err = m.VariableByName("x_2_0")
	require.NoError(t, err)
	c, ok = m.Objective().Quadratic(a, b)
	require.True(t, ok)
	require.Equal(t, 3.0, c)

	row, err := m.Constraint("city_0_once")
	require.NoError(t, err)
	require.Equal(t, qp.EQ, row.Sense())
	require.Equal(t, 1.0, row.RHS())
	require.Equal(t, []qp.LinearTerm{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}, {Var: 2, Coeff: 1}}, row.Terms())

	col, err := m.Constraint("one_city_at_stop_2")
	require.NoError(t, err)
	require.Equal(t, []qp.LinearTerm{{Var: 2, Coeff: 1}, {Var: 5, Coeff: 1}, {Var: 8, Coeff: 1}}, col.Terms())

	names := make([]string, 0, m.NumConstraints())
	for _, k := range m.Constraints() {
		names = append(names, k.Name())
	}
	require.Equal(t, []string{
		"city_0_once", "city_1_once", "city_2_once",
		"one_city_at_stop_0", "one_city_at_stop_1", "one_city_at_stop_2",
	}, names)
}

func TestBuild_SingleCity(t *testing.T) {
	m := mustBuild(t, mustInstance(t, 1, nil))

	require.Equal(t, qp.Stats{Variables: 1, Constraints: 2}, m.Stats())
	require.True(t, m.Objective().IsZero())

	v, err := m.Variable(0)
	require.NoError(t, err)
	require.Equal(t, "x_0_0", v.Name)

	ok, err := m.Feasible([]bool{true})
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = m.Feasible([]bool{false})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBuild_PermutationsAreExactlyFeasible(t *testing.T) {
	const n = 3
	m := mustBuild(t, distinctInstance(t, n))
	enc := tsp.NewEncoding(n)

	feasible := 0
	for mask := 0; mask < 1<<(n*n); mask++ {
		x := make([]bool, n*n)
		for id := range x {
			x[id] = mask&(1<<id) != 0
		}
		ok, err := m.Feasible(x)
		require.NoError(t, err)
		if ok {
			feasible++
		}
	}
	require.Equal(t, 6, feasible)

	forEachPermutation(n, func(order []int) {
		x, err := enc.Assignment(order)
		require.NoError(t, err)
		for _, c := range m.Constraints() {
			v, err := m.ConstraintValue(c.Name(), x)
			require.NoError(t, err)
			require.Equal(t, 1.0, v)
		}
	})
}

func TestBuild_ObjectiveMatchesTourCosts(t *testing.T) {
	for n := 2; n <= maxEnumN; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var (
				inst    = distinctInstance(t, n)
				enc     = tsp.NewEncoding(n)
				forward = mustBuild(t, inst)
				both    = mustBuild(t, inst, tsp.WithBothDirections())
			)
			forEachPermutation(n, func(order []int) {
				x, err := enc.Assignment(order)
				require.NoError(t, err)

				got, err := forward.Evaluate(x)
				require.NoError(t, err)
				want, err := inst.ForwardCost(order)
				require.NoError(t, err)
				require.InDelta(t, want, got, epsTiny, "order %v", order)

				got, err = both.Evaluate(x)
				require.NoError(t, err)
				want, err = inst.TourCost(order)
				require.NoError(t, err)
				require.InDelta(t, want, got, epsTiny, "order %v", order)
			})
		})
	}
}

func TestBuild_InvalidInstance(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	// The missing pair never reaches the registry: NewInstance rejects it.
	_, err := tsp.NewInstance(3, map[tsp.Pair]float64{{I: 0, J: 1}: 1, {I: 0, J: 2}: 2})
	require.ErrorIs(t, err, tsp.ErrInvalidInstance)
	require.ErrorContains(t, err, "missing distance for pair (1,2)")

	for _, inst := range []*tsp.Instance{nil, {}} {
		m, err := tsp.Build(inst, tsp.WithLogger(zap.New(core)))
		require.Nil(t, m)
		require.ErrorIs(t, err, tsp.ErrInvalidInstance)
	}
	require.Equal(t, 2, logs.FilterMessage("tsp: instance rejected").Len())
	require.Zero(t, logs.FilterMessage("tsp: variables declared").Len())
}

func TestBuild_CollidingNamers(t *testing.T) {
	inst := distinctInstance(t, 3)

	m, err := tsp.Build(inst, tsp.WithVariableNamer(func(city, stop int) string {
		return fmt.Sprintf("x_%d", city)
	}))
	require.Nil(t, m)
	require.ErrorIs(t, err, qp.ErrDuplicateVariableName)

	m, err = tsp.Build(inst, tsp.WithStopConstraintNamer(tsp.DefaultCityConstraintName))
	require.Nil(t, m)
	require.ErrorIs(t, err, qp.ErrDuplicateConstraintName)

	m, err = tsp.Build(inst, tsp.WithCityConstraintNamer(func(int) string { return "" }))
	require.Nil(t, m)
	require.ErrorIs(t, err, qp.ErrEmptyName)
}

func TestBuilder_StepOrder(t *testing.T) {
	b, err := tsp.NewBuilder(distinctInstance(t, 3))
	require.NoError(t, err)
	require.Equal(t, qp.PhaseEmpty, b.Phase())
	require.Equal(t, 9, b.Encoding().Size())

	_, err = b.Model()
	require.ErrorIs(t, err, qp.ErrNotReady)
	require.ErrorIs(t, b.BuildObjective(), qp.ErrPhase)
	require.ErrorIs(t, b.BuildConstraints(), qp.ErrPhase)

	require.NoError(t, b.DeclareVariables())
	require.Equal(t, qp.PhaseVariablesDeclared, b.Phase())
	require.ErrorIs(t, b.DeclareVariables(), qp.ErrPhase)

	require.NoError(t, b.BuildObjective())
	require.ErrorIs(t, b.BuildObjective(), qp.ErrPhase)
	_, err = b.Model()
	require.ErrorIs(t, err, qp.ErrNotReady)

	require.NoError(t, b.BuildConstraints())
	require.ErrorIs(t, b.BuildConstraints(), qp.ErrPhase)
	require.NoError(t, b.Err())

	m, err := b.Model()
	require.NoError(t, err)
	require.True(t, m.Ready())

	again, err := b.Model()
	require.NoError(t, err)
	require.Same(t, m, again)
	require.Equal(t, qp.PhaseReady, b.Phase())
}

func TestBuilder_PoisonedAfterFailure(t *testing.T) {
	b, err := tsp.NewBuilder(distinctInstance(t, 2), tsp.WithVariableNamer(func(int, int) string { return "x" }))
	require.NoError(t, err)

	first := b.DeclareVariables()
	require.ErrorIs(t, first, qp.ErrDuplicateVariableName)
	require.Equal(t, first, b.Err())
	require.Equal(t, qp.PhaseEmpty, b.Phase())

	require.Equal(t, first, b.BuildObjective())
	require.Equal(t, first, b.BuildConstraints())
	m, err := b.Model()
	require.Nil(t, m)
	require.Equal(t, first, err)
}

func TestBuild_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := tsp.Build(distinctInstance(t, 4),
		tsp.WithLogger(zap.New(core)),
		tsp.WithModelName("four"),
		tsp.WithBothDirections(),
	)
	require.NoError(t, err)

	var msgs []string
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
		require.Equal(t, "four", e.ContextMap()["model"])
		require.EqualValues(t, 4, e.ContextMap()["cities"])
	}
	require.Equal(t, []string{
		"tsp: variables declared",
		"tsp: objective set",
		"tsp: constraints set",
		"tsp: model ready",
	}, msgs)

	obj := logs.FilterMessage("tsp: objective set").All()[0].ContextMap()
	require.EqualValues(t, 48, obj["terms"])
	require.Equal(t, true, obj["both_directions"])
}

func TestBuild_ModelName(t *testing.T) {
	m := mustBuild(t, distinctInstance(t, 2))
	require.Equal(t, tsp.DefaultModelName, m.Name())

	m = mustBuild(t, distinctInstance(t, 2), tsp.WithModelName("pair"))
	require.Equal(t, "pair", m.Name())
}

func TestStandaloneTermAndConstraintBuilders(t *testing.T) {
	inst := distinctInstance(t, 4)

	terms, err := tsp.ObjectiveTerms(inst)
	require.NoError(t, err)
	require.Len(t, terms, tsp.NumObjectiveTerms(4, false))
	require.Equal(t, mustBuild(t, inst).Objective().QuadraticTerms(), terms)

	rows, err := tsp.CityConstraints(inst)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	cols, err := tsp.StopConstraints(inst, tsp.WithStopConstraintNamer(func(a int) string { return fmt.Sprintf("s%d", a) }))
	require.NoError(t, err)
	require.Equal(t, "s3", cols[3].Name())

	_, err = tsp.ObjectiveTerms(nil)
	require.ErrorIs(t, err, tsp.ErrInvalidInstance)
	_, err = tsp.CityConstraints(&tsp.Instance{})
	require.ErrorIs(t, err, tsp.ErrInvalidInstance)
	_, err = tsp.StopConstraints(nil)
	require.ErrorIs(t, err, tsp.ErrInvalidInstance)
}
