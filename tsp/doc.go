// Package tsp builds the quadratic binary model of the symmetric Travelling
// Salesman Problem.
//
// One binary variable x(city, stop) per city and tour position; x = 1 iff the
// city is visited at that stop. The model (a *qp.Model) consists of:
//
//   - N² binary variables, declared in row-major (city, stop) order so that
//     the handle of x(city, stop) is city·N + stop (see Encoding),
//   - a minimized quadratic objective with one term per unordered pair i<j
//     and stop a: d(i,j)·x(i,a)·x(j,(a+1) mod N), N·C(N,2) terms in all,
//   - 2N equality constraints: every city at exactly one stop
//     ("city_{i}_once") and every stop holding exactly one city
//     ("one_city_at_stop_{a}").
//
// Feasible assignments are exactly the permutation matrices. Rotations and
// reflections of a tour are distinct assignments; the model does not break
// that symmetry.
//
// The default objective keeps one orientation per unordered pair, so on a
// permutation it equals Instance.ForwardCost. WithBothDirections adds the
// reverse orientation and the objective then equals Instance.TourCost, the
// full cyclic tour cost.
//
// Usage:
//
//	inst, err := tsp.NewInstance(3, map[tsp.Pair]float64{
//		{I: 0, J: 1}: 1, {I: 0, J: 2}: 2, {I: 1, J: 2}: 3,
//	})
//	if err != nil { … }
//	model, err := tsp.Build(inst)          // Ready *qp.Model
//	err = model.WriteLP(os.Stdout)
//
// Instances can also come from a square matrix (NewInstanceFromMatrix), a
// YAML/JSON file (LoadInstance) or a seeded generator (RandomEuclidean).
//
// Solving the model, choosing a solver and decoding solver output are out of
// scope.
package tsp
