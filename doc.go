// Package permqp turns permutation problems into quadratic binary programs,
// starting with the symmetric Travelling Salesman Problem.
//
// What is permqp?
//
//	A small, deterministic model builder:
//		• qp/          - quadratic binary program: variables, objective,
//		                 named linear constraints, phase order, LP/YAML/JSON export
//		• tsp/         - TSP instances, the (city, stop) encoding, the cyclic
//		                 adjacency objective and exactly-one constraints
//		• cmd/permqp/  - command-line front end (build, stats, generate)
//
// The model of an N-city instance has N² binary variables x(city, stop),
// N·C(N,2) quadratic objective terms and 2N equality constraints. It is
// handed to an external solver; permqp never solves or decodes.
//
// Quick start:
//
//	inst, _ := tsp.NewInstance(3, map[tsp.Pair]float64{
//		{I: 0, J: 1}: 1, {I: 0, J: 2}: 2, {I: 1, J: 2}: 3,
//	})
//	model, _ := tsp.Build(inst)
//	_ = model.WriteLP(os.Stdout)
//
// See the package docs of qp and tsp for contracts and complexity.
package permqp
