// Package qp - Model: variable arena, objective and constraints with a
// strict construction phase order.
//
// Phase rules (see Phase):
//   - AddBinaryVar:        Empty | VariablesDeclared        → VariablesDeclared
//   - SetObjective:        VariablesDeclared                → ObjectiveSet
//   - AddLinearConstraint: ObjectiveSet | ConstraintsSet    → ConstraintsSet
//   - Seal:                ObjectiveSet | ConstraintsSet    → Ready
//
// Any other call order fails with ErrPhase (ErrNotReady for an early Seal)
// and leaves the model unchanged. Failed calls never mutate the model.
//
// Concurrency: a Model under construction is not safe for concurrent use.
// After Seal every method is read-only.
package qp

import "fmt"

// Model is a quadratic binary program.
type Model struct {
	name string

	phase Phase

	vars   []Variable
	byName map[string]VarID

	objective *Objective

	constraints []*LinearConstraint
	consByName  map[string]int
}

// NewModel returns an empty model named name.
func NewModel(name string) *Model {
	return &Model{
		name:       name,
		phase:      PhaseEmpty,
		byName:     make(map[string]VarID),
		consByName: make(map[string]int),
	}
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Phase returns the current construction phase.
func (m *Model) Phase() Phase { return m.phase }

// Ready reports whether the model has been sealed.
func (m *Model) Ready() bool { return m.phase == PhaseReady }

// phaseError builds an ErrPhase carrying the operation and current phase.
func (m *Model) phaseError(op string) error {
	return fmt.Errorf("%s in phase %s: %w", op, m.phase, ErrPhase)
}

// ---------- Variables ----------

// AddBinaryVar registers a binary variable and returns its dense handle.
// Handles are assigned sequentially from 0.
//
// Errors: ErrPhase, ErrEmptyName, ErrDuplicateVariableName.
//
// Complexity: O(1) amortized.
func (m *Model) AddBinaryVar(name string) (VarID, error) {
	if m.phase != PhaseEmpty && m.phase != PhaseVariablesDeclared {
		return -1, m.phaseError("AddBinaryVar")
	}
	if name == "" {
		return -1, qpErrorf("AddBinaryVar", ErrEmptyName)
	}
	if _, dup := m.byName[name]; dup {
		return -1, fmt.Errorf("AddBinaryVar %q: %w", name, ErrDuplicateVariableName)
	}

	var id = VarID(len(m.vars))
	m.vars = append(m.vars, Variable{ID: id, Name: name, Type: Binary})
	m.byName[name] = id
	m.phase = PhaseVariablesDeclared

	return id, nil
}

// NumVariables returns the number of registered variables.
func (m *Model) NumVariables() int { return len(m.vars) }

// Variable returns the variable with handle id.
func (m *Model) Variable(id VarID) (Variable, error) {
	if id < 0 || int(id) >= len(m.vars) {
		return Variable{}, qpErrorf("Variable", ErrUnknownVariable)
	}

	return m.vars[id], nil
}

// VariableByName resolves a variable name to its handle.
func (m *Model) VariableByName(name string) (VarID, error) {
	id, ok := m.byName[name]
	if !ok {
		return -1, fmt.Errorf("VariableByName %q: %w", name, ErrUnknownVariable)
	}

	return id, nil
}

// Variables returns a copy of all variables in handle order.
func (m *Model) Variables() []Variable {
	return append([]Variable(nil), m.vars...)
}

// varName returns the name of id; ids are validated on insertion.
func (m *Model) varName(id VarID) string { return m.vars[id].Name }

// ---------- Objective ----------

// SetObjective attaches a copy of obj. It may be called exactly once, after
// the variables are declared; every referenced handle must exist.
//
// Errors: ErrNilArgument, ErrPhase, ErrUnknownVariable.
//
// Complexity: O(L + T) copy.
func (m *Model) SetObjective(obj *Objective) error {
	if obj == nil {
		return qpErrorf("SetObjective", ErrNilArgument)
	}
	if m.phase != PhaseVariablesDeclared {
		return m.phaseError("SetObjective")
	}
	if int(obj.maxVar()) >= len(m.vars) {
		return fmt.Errorf("SetObjective: handle %d of %d: %w", obj.maxVar(), len(m.vars), ErrUnknownVariable)
	}
	m.objective = obj.clone()
	m.phase = PhaseObjectiveSet

	return nil
}

// Objective returns a copy of the attached objective, or nil before SetObjective.
func (m *Model) Objective() *Objective {
	if m.objective == nil {
		return nil
	}

	return m.objective.clone()
}

// ---------- Constraints ----------

// AddLinearConstraint attaches a copy of c. Names must be unique and
// non-empty, every referenced handle must exist and rhs must be finite.
//
// Errors: ErrNilArgument, ErrPhase, ErrEmptyName, ErrDuplicateConstraintName,
// ErrUnknownVariable, ErrInvalidCoefficient.
//
// Complexity: O(k) for k terms.
func (m *Model) AddLinearConstraint(c *LinearConstraint) error {
	if c == nil {
		return qpErrorf("AddLinearConstraint", ErrNilArgument)
	}
	if m.phase != PhaseObjectiveSet && m.phase != PhaseConstraintsSet {
		return m.phaseError("AddLinearConstraint")
	}
	if c.name == "" {
		return qpErrorf("AddLinearConstraint", ErrEmptyName)
	}
	if _, dup := m.consByName[c.name]; dup {
		return fmt.Errorf("AddLinearConstraint %q: %w", c.name, ErrDuplicateConstraintName)
	}
	if !isFinite(c.rhs) {
		return fmt.Errorf("AddLinearConstraint %q: rhs: %w", c.name, ErrInvalidCoefficient)
	}
	if int(c.maxVar()) >= len(m.vars) {
		return fmt.Errorf("AddLinearConstraint %q: %w", c.name, ErrUnknownVariable)
	}

	m.consByName[c.name] = len(m.constraints)
	m.constraints = append(m.constraints, c.clone())
	m.phase = PhaseConstraintsSet

	return nil
}

// NumConstraints returns the number of attached constraints.
func (m *Model) NumConstraints() int { return len(m.constraints) }

// Constraint returns a copy of the named constraint.
func (m *Model) Constraint(name string) (*LinearConstraint, error) {
	at, ok := m.consByName[name]
	if !ok {
		return nil, fmt.Errorf("Constraint %q: %w", name, ErrUnknownConstraint)
	}

	return m.constraints[at].clone(), nil
}

// Constraints returns copies of all constraints in insertion order.
func (m *Model) Constraints() []*LinearConstraint {
	var out = make([]*LinearConstraint, len(m.constraints))
	for i, c := range m.constraints {
		out[i] = c.clone()
	}

	return out
}

// ---------- Lifecycle ----------

// Seal moves the model to Ready. Afterwards every mutator fails with ErrPhase.
//
// Errors: ErrNotReady when no objective is attached, ErrPhase when already sealed.
func (m *Model) Seal() error {
	switch m.phase {
	case PhaseObjectiveSet, PhaseConstraintsSet:
		m.phase = PhaseReady
		return nil
	case PhaseReady:
		return m.phaseError("Seal")
	default:
		return fmt.Errorf("Seal in phase %s: %w", m.phase, ErrNotReady)
	}
}

// Stats reports the model size.
func (m *Model) Stats() Stats {
	var s = Stats{
		Variables:   len(m.vars),
		Constraints: len(m.constraints),
	}
	if m.objective != nil {
		s.LinearTerms = len(m.objective.linear)
		s.QuadraticTerms = len(m.objective.quadratic)
	}

	return s
}
