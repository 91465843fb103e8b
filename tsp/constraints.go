// Package tsp - exactly-one constraint families.
//
// Family A (rows of the permutation matrix): for each city i,
//
//	Σ_a x(i,a) == 1      "city i is visited exactly once"
//
// Family B (columns): for each stop a,
//
//	Σ_i x(i,a) == 1      "stop a holds exactly one city"
//
// Together they admit exactly the N×N permutation matrices.
package tsp

import "github.com/katalvlaran/permqp/qp"

// CityConstraints returns family A, one constraint per city in city order.
//
// Errors: ErrInvalidInstance.
//
// Complexity: O(N²).
func CityConstraints(inst *Instance, opts ...Option) ([]*qp.LinearConstraint, error) {
	if err := inst.validate(); err != nil {
		return nil, err
	}

	return cityConstraints(NewEncoding(inst.n), gatherOptions(opts...))
}

// StopConstraints returns family B, one constraint per stop in stop order.
//
// Errors: ErrInvalidInstance.
//
// Complexity: O(N²).
func StopConstraints(inst *Instance, opts ...Option) ([]*qp.LinearConstraint, error) {
	if err := inst.validate(); err != nil {
		return nil, err
	}

	return stopConstraints(NewEncoding(inst.n), gatherOptions(opts...))
}

func cityConstraints(enc Encoding, o Options) ([]*qp.LinearConstraint, error) {
	var (
		n   = enc.NumCities()
		out = make([]*qp.LinearConstraint, 0, n)
		c   *qp.LinearConstraint
		err error
	)
	for i := 0; i < n; i++ {
		c = qp.NewLinearConstraint(o.cityNamer(i), qp.EQ, 1, n)
		for a := 0; a < n; a++ {
			if err = c.AddTerm(enc.Var(i, a), 1); err != nil {
				return nil, err
			}
		}
		out = append(out, c)
	}

	return out, nil
}

func stopConstraints(enc Encoding, o Options) ([]*qp.LinearConstraint, error) {
	var (
		n   = enc.NumCities()
		out = make([]*qp.LinearConstraint, 0, n)
		c   *qp.LinearConstraint
		err error
	)
	for a := 0; a < n; a++ {
		c = qp.NewLinearConstraint(o.stopNamer(a), qp.EQ, 1, n)
		for i := 0; i < n; i++ {
			if err = c.AddTerm(enc.Var(i, a), 1); err != nil {
				return nil, err
			}
		}
		out = append(out, c)
	}

	return out, nil
}
