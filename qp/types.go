// Package qp: domain types shared by the model, objective and constraints.

package qp

import "math"

// VarID is a dense handle of a variable: its index in the model arena.
// The first variable added to a model gets 0, the next 1, and so on.
type VarID int

// VarType is the domain of a decision variable. Only binaries are modelled.
type VarType uint8

const (
	// Binary variables take values in {0,1}.
	Binary VarType = iota
)

// String returns the LP-style name of the domain.
func (t VarType) String() string {
	switch t {
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Variable is a registered decision variable.
type Variable struct {
	ID   VarID
	Name string
	Type VarType
}

// VarPair is an ordered pair of variables keying a quadratic term.
// (a,b) and (b,a) are distinct keys; see Objective.Canonical for merging.
type VarPair struct {
	A VarID
	B VarID
}

// Canonical returns the pair with A <= B.
func (p VarPair) Canonical() VarPair {
	if p.B < p.A {
		return VarPair{A: p.B, B: p.A}
	}

	return p
}

// LinearTerm is coefficient·x[Var].
type LinearTerm struct {
	Var   VarID
	Coeff float64
}

// QuadraticTerm is coefficient·x[Pair.A]·x[Pair.B].
type QuadraticTerm struct {
	Pair  VarPair
	Coeff float64
}

// Sense is the comparison of a linear constraint.
type Sense uint8

const (
	// EQ is Σ c·x == rhs.
	EQ Sense = iota
	// LE is Σ c·x <= rhs.
	LE
	// GE is Σ c·x >= rhs.
	GE
)

// String returns the operator form used in documents ("==", "<=", ">=").
func (s Sense) String() string {
	switch s {
	case EQ:
		return "=="
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "?"
	}
}

// lpOperator returns the CPLEX LP operator for s.
func (s Sense) lpOperator() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "="
	}
}

// ObjectiveSense tells whether the objective is minimized or maximized.
type ObjectiveSense uint8

const (
	// Minimize is the default sense.
	Minimize ObjectiveSense = iota
	// Maximize flips the optimization direction.
	Maximize
)

// String returns "minimize" or "maximize".
func (s ObjectiveSense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Phase is the construction state of a Model.
type Phase uint8

const (
	// PhaseEmpty: nothing registered yet.
	PhaseEmpty Phase = iota
	// PhaseVariablesDeclared: at least one variable, no objective.
	PhaseVariablesDeclared
	// PhaseObjectiveSet: objective attached, no constraints yet.
	PhaseObjectiveSet
	// PhaseConstraintsSet: at least one constraint attached.
	PhaseConstraintsSet
	// PhaseReady: sealed, read-only.
	PhaseReady
)

// String returns a stable name for logs and errors.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseVariablesDeclared:
		return "variables-declared"
	case PhaseObjectiveSet:
		return "objective-set"
	case PhaseConstraintsSet:
		return "constraints-set"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Stats summarizes model size.
type Stats struct {
	Variables      int
	LinearTerms    int
	QuadraticTerms int
	Constraints    int
}

// DefaultTolerance is the absolute tolerance used when checking constraints.
const DefaultTolerance = 1e-9

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
