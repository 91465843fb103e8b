// Package qp: sentinel error set.
// All functions return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); callers match them with errors.Is.

package qp

import (
	"errors"
	"fmt"
)

var (
	// ErrPhase is returned when a mutator is called out of the construction
	// order Empty → VariablesDeclared → ObjectiveSet → ConstraintsSet → Ready,
	// including any mutation of a sealed model.
	ErrPhase = errors.New("qp: operation not allowed in current phase")

	// ErrNotReady is returned by Seal when the model has no objective yet.
	ErrNotReady = errors.New("qp: model is not ready")

	// ErrEmptyName signals an empty variable or constraint name.
	ErrEmptyName = errors.New("qp: empty name")

	// ErrDuplicateVariableName signals that a variable name is already registered.
	ErrDuplicateVariableName = errors.New("qp: duplicate variable name")

	// ErrDuplicateConstraintName signals that a constraint name is already registered.
	ErrDuplicateConstraintName = errors.New("qp: duplicate constraint name")

	// ErrUnknownVariable signals a VarID outside the model arena or an unknown name.
	ErrUnknownVariable = errors.New("qp: unknown variable")

	// ErrUnknownConstraint signals a constraint name that is not registered.
	ErrUnknownConstraint = errors.New("qp: unknown constraint")

	// ErrInvalidCoefficient signals a NaN or ±Inf coefficient, constant or rhs.
	ErrInvalidCoefficient = errors.New("qp: coefficient must be finite")

	// ErrAssignmentLength signals that an assignment does not cover exactly
	// the model variables.
	ErrAssignmentLength = errors.New("qp: assignment length mismatch")

	// ErrNilArgument signals a nil objective or constraint argument.
	ErrNilArgument = errors.New("qp: nil argument")
)

// qpErrorf tags err with the call site while keeping it matchable by errors.Is.
func qpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
