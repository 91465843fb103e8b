// Package qp provides a small, deterministic quadratic binary program model.
//
// A Model is the hand-off value between a problem-specific builder (see
// package tsp) and an external solver. It holds:
//
//   - Variables - binary decision variables addressed by dense VarID handles
//     (arena indices 0..n-1), each with a unique, non-empty name.
//   - Objective - an optional constant, linear terms and quadratic terms
//     (ordered VarPair keys), minimized or maximized.
//   - Constraints - named linear constraints Σ c·x (==|<=|>=) rhs.
//
// Construction follows a strict phase order:
//
//	Empty → VariablesDeclared → ObjectiveSet → ConstraintsSet → Ready
//
// Every mutator checks the current phase and fails with ErrPhase when called
// out of order, so a builder cannot silently duplicate variables, terms or
// constraints. Seal moves the model to Ready; a Ready model is read-only and
// safe to share between goroutines.
//
// Besides read accessors the package offers:
//
//   - Evaluate / Violations / Feasible for a 0/1 assignment,
//   - WriteLP (CPLEX LP text, the format most MIQP/QUBO tools ingest),
//   - Document plus YAML/JSON marshalling for tooling.
//
// The package never logs and never panics on user input; all failures are
// the sentinel errors declared in errors.go.
package qp
