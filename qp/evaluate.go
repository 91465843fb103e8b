// Package qp - evaluation of 0/1 assignments against a model.
//
// An assignment is a []bool indexed by VarID with exactly NumVariables()
// entries. These helpers are read-only and work in any phase once the
// relevant parts (objective, constraints) exist.
package qp

import "fmt"

// checkAssignment validates the assignment length.
func (m *Model) checkAssignment(op string, x []bool) error {
	if len(x) != len(m.vars) {
		return fmt.Errorf("%s: got %d values for %d variables: %w", op, len(x), len(m.vars), ErrAssignmentLength)
	}

	return nil
}

// Evaluate returns the objective value of x. A model without an objective
// evaluates to 0.
//
// Complexity: O(L + T).
func (m *Model) Evaluate(x []bool) (float64, error) {
	if err := m.checkAssignment("Evaluate", x); err != nil {
		return 0, err
	}
	if m.objective == nil {
		return 0, nil
	}

	return m.objective.value(x), nil
}

// ConstraintValue returns the left-hand side Σ c·x of the named constraint.
func (m *Model) ConstraintValue(name string, x []bool) (float64, error) {
	if err := m.checkAssignment("ConstraintValue", x); err != nil {
		return 0, err
	}
	at, ok := m.consByName[name]
	if !ok {
		return 0, fmt.Errorf("ConstraintValue %q: %w", name, ErrUnknownConstraint)
	}

	return m.constraints[at].lhs(x), nil
}

// Violations returns the names of constraints that x violates, in insertion
// order, using DefaultTolerance.
//
// Complexity: O(Σ k) over all constraint terms.
func (m *Model) Violations(x []bool) ([]string, error) {
	if err := m.checkAssignment("Violations", x); err != nil {
		return nil, err
	}
	var out []string
	for _, c := range m.constraints {
		if !c.satisfied(x, DefaultTolerance) {
			out = append(out, c.name)
		}
	}

	return out, nil
}

// Feasible reports whether x satisfies every constraint.
func (m *Model) Feasible(x []bool) (bool, error) {
	v, err := m.Violations(x)
	if err != nil {
		return false, err
	}

	return len(v) == 0, nil
}
