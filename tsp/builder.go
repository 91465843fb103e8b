// Package tsp - model builder.
//
// Builder assembles a qp.Model from an Instance in three ordered steps:
//
//	DeclareVariables → BuildObjective → BuildConstraints → Model
//
// Contracts:
//   - NewBuilder validates the instance; an invalid instance never reaches
//     the variable registry.
//   - Calling a step out of order (or twice) fails with qp.ErrPhase and leaves
//     the builder usable.
//   - Any other failure poisons the builder: the half-built model is dropped
//     and every later call, Model included, returns that first error.
//   - Model seals and returns the model only after all three steps.
//
// Build runs the whole pipeline; it returns either a Ready model or an error.
package tsp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/permqp/qp"
)

// Builder constructs the quadratic binary model of one instance.
// A Builder is single-use and not safe for concurrent use.
type Builder struct {
	inst  *Instance
	enc   Encoding
	opts  Options
	log   *zap.Logger
	model *qp.Model
	err   error
}

// NewBuilder validates inst and prepares an empty model.
//
// Errors: ErrInvalidInstance.
func NewBuilder(inst *Instance, opts ...Option) (*Builder, error) {
	var o = gatherOptions(opts...)
	if err := inst.validate(); err != nil {
		o.logger.Debug("tsp: instance rejected", zap.Error(err))
		return nil, err
	}

	return &Builder{
		inst:  inst,
		enc:   NewEncoding(inst.n),
		opts:  o,
		log:   o.logger.With(zap.String("model", o.modelName), zap.Int("cities", inst.n)),
		model: qp.NewModel(o.modelName),
	}, nil
}

// Encoding returns the (city, stop) ↔ handle mapping of the model.
func (b *Builder) Encoding() Encoding { return b.enc }

// Phase returns the phase of the model under construction.
func (b *Builder) Phase() qp.Phase {
	if b.model == nil {
		return qp.PhaseEmpty
	}

	return b.model.Phase()
}

// Err returns the error that poisoned the builder, if any.
func (b *Builder) Err() error { return b.err }

// fail records err unless it is a phase-order error, which leaves the
// model untouched.
func (b *Builder) fail(step string, err error) error {
	err = fmt.Errorf("%s: %w", step, err)
	if errors.Is(err, qp.ErrPhase) {
		return err
	}
	b.err = err
	b.model = nil
	b.log.Debug("tsp: build failed", zap.String("step", step), zap.Error(err))

	return err
}

// expectPhase guards a step against out-of-order or repeated invocation.
func (b *Builder) expectPhase(step string, want qp.Phase) error {
	if got := b.model.Phase(); got != want {
		return fmt.Errorf("%s: model in phase %s, want %s: %w", step, got, want, qp.ErrPhase)
	}

	return nil
}

// DeclareVariables registers x(city, stop) for all N² pairs in row-major
// order, so that each handle equals Encoding.Var(city, stop).
//
// Errors: qp.ErrPhase, qp.ErrDuplicateVariableName (colliding namer),
// qp.ErrEmptyName, ErrEncodingMismatch.
//
// Complexity: O(N²).
func (b *Builder) DeclareVariables() error {
	const step = "declare variables"
	if b.err != nil {
		return b.err
	}
	if err := b.expectPhase(step, qp.PhaseEmpty); err != nil {
		return err
	}

	var (
		n          = b.inst.n
		city, stop int
		id         qp.VarID
		err        error
	)
	for city = 0; city < n; city++ {
		for stop = 0; stop < n; stop++ {
			id, err = b.model.AddBinaryVar(b.opts.variableNamer(city, stop))
			if err != nil {
				return b.fail(step, fmt.Errorf("city %d stop %d: %w", city, stop, err))
			}
			if id != b.enc.Var(city, stop) {
				return b.fail(step, fmt.Errorf("city %d stop %d got handle %d: %w", city, stop, id, ErrEncodingMismatch))
			}
		}
	}
	b.log.Debug("tsp: variables declared", zap.Int("variables", b.model.NumVariables()))

	return nil
}

// BuildObjective attaches the cyclic adjacency objective (see objective.go),
// minimized.
//
// Errors: qp.ErrPhase, qp.ErrInvalidCoefficient, qp.ErrUnknownVariable.
//
// Complexity: O(N³).
func (b *Builder) BuildObjective() error {
	const step = "build objective"
	if b.err != nil {
		return b.err
	}
	if err := b.expectPhase(step, qp.PhaseVariablesDeclared); err != nil {
		return err
	}

	var (
		terms = objectiveTerms(b.inst, b.enc, b.opts)
		obj   = qp.NewObjective(qp.Minimize, len(terms))
		err   error
	)
	for _, t := range terms {
		if err = obj.AddQuadratic(t.Pair.A, t.Pair.B, t.Coeff); err != nil {
			return b.fail(step, err)
		}
	}
	if err = b.model.SetObjective(obj); err != nil {
		return b.fail(step, err)
	}
	b.log.Debug("tsp: objective set",
		zap.Int("terms", obj.Len()),
		zap.Bool("both_directions", b.opts.bothDirections),
	)

	return nil
}

// BuildConstraints attaches family A (one row per city) followed by family B
// (one row per stop): 2N equality constraints.
//
// Errors: qp.ErrPhase, qp.ErrDuplicateConstraintName (colliding namers),
// qp.ErrEmptyName.
//
// Complexity: O(N²).
func (b *Builder) BuildConstraints() error {
	const step = "build constraints"
	if b.err != nil {
		return b.err
	}
	if err := b.expectPhase(step, qp.PhaseObjectiveSet); err != nil {
		return err
	}

	rows, err := cityConstraints(b.enc, b.opts)
	if err != nil {
		return b.fail(step, err)
	}
	cols, err := stopConstraints(b.enc, b.opts)
	if err != nil {
		return b.fail(step, err)
	}
	for _, c := range append(rows, cols...) {
		if err = b.model.AddLinearConstraint(c); err != nil {
			return b.fail(step, err)
		}
	}
	b.log.Debug("tsp: constraints set", zap.Int("constraints", b.model.NumConstraints()))

	return nil
}

// Model seals and returns the finished model. Calling it again returns the
// same Ready model.
//
// Errors: the poisoning error, or qp.ErrNotReady before BuildConstraints.
func (b *Builder) Model() (*qp.Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	switch b.model.Phase() {
	case qp.PhaseReady:
		return b.model, nil
	case qp.PhaseConstraintsSet:
		if err := b.model.Seal(); err != nil {
			return nil, err
		}
		b.log.Debug("tsp: model ready")
		return b.model, nil
	default:
		return nil, fmt.Errorf("model in phase %s: %w", b.model.Phase(), qp.ErrNotReady)
	}
}

// Build constructs the complete model of inst: N² binary variables, the
// cyclic adjacency objective and 2N exactly-one constraints. It never returns
// a partially built model.
//
// Errors: ErrInvalidInstance, qp.ErrDuplicateVariableName,
// qp.ErrDuplicateConstraintName (custom namers), and the other qp sentinels.
//
// Complexity: O(N³).
func Build(inst *Instance, opts ...Option) (*qp.Model, error) {
	b, err := NewBuilder(inst, opts...)
	if err != nil {
		return nil, err
	}
	if err = b.DeclareVariables(); err != nil {
		return nil, err
	}
	if err = b.BuildObjective(); err != nil {
		return nil, err
	}
	if err = b.BuildConstraints(); err != nil {
		return nil, err
	}

	return b.Model()
}
