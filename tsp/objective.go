// Package tsp - objective terms (cyclic adjacency cost).
//
// For every unordered pair i<j (lexicographic order) and every stop a the
// objective holds
//
//	d(i,j) · x(i,a) · x(j,(a+1) mod N)
//
// "city i at stop a, city j at the next stop (cyclically) costs d(i,j)".
// Coefficients are the instance distances verbatim. With WithBothDirections
// the reverse orientation d(i,j) · x(j,a) · x(i,(a+1) mod N) follows each term.
package tsp

import "github.com/katalvlaran/permqp/qp"

// NumObjectiveTerms returns the number of quadratic terms produced for n
// cities: N·C(N,2), doubled with both directions.
func NumObjectiveTerms(n int, bothDirections bool) int {
	var t = n * n * (n - 1) / 2
	if bothDirections {
		t *= 2
	}
	if t < 0 {
		return 0
	}

	return t
}

// ObjectiveTerms returns the quadratic objective terms of inst in emission
// order (pair-major, then stop). N=1 yields no terms.
//
// Errors: ErrInvalidInstance.
//
// Complexity: O(N³) time and space.
func ObjectiveTerms(inst *Instance, opts ...Option) ([]qp.QuadraticTerm, error) {
	if err := inst.validate(); err != nil {
		return nil, err
	}

	return objectiveTerms(inst, NewEncoding(inst.n), gatherOptions(opts...)), nil
}

// objectiveTerms generates the terms for a validated instance.
func objectiveTerms(inst *Instance, enc Encoding, o Options) []qp.QuadraticTerm {
	var (
		n    = inst.n
		out  = make([]qp.QuadraticTerm, 0, NumObjectiveTerms(n, o.bothDirections))
		i, j int
		a, b int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = inst.at(i, j)
			for a = 0; a < n; a++ {
				b = enc.Next(a)
				out = append(out, qp.QuadraticTerm{
					Pair:  qp.VarPair{A: enc.Var(i, a), B: enc.Var(j, b)},
					Coeff: d,
				})
				if o.bothDirections {
					out = append(out, qp.QuadraticTerm{
						Pair:  qp.VarPair{A: enc.Var(j, a), B: enc.Var(i, b)},
						Coeff: d,
					})
				}
			}
		}
	}

	return out
}
