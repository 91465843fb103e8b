// Package qp - named linear constraints.
//
// A LinearConstraint is Σ coeff·x[var] (sense) rhs. Terms keep insertion
// order; adding the same variable twice accumulates into the first term.
package qp

import "math"

// LinearConstraint is a named linear constraint under construction.
type LinearConstraint struct {
	name  string
	sense Sense
	rhs   float64
	terms []LinearTerm
	index map[VarID]int
}

// NewLinearConstraint returns an empty constraint. sizeHint preallocates
// room for that many terms.
func NewLinearConstraint(name string, sense Sense, rhs float64, sizeHint int) *LinearConstraint {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &LinearConstraint{
		name:  name,
		sense: sense,
		rhs:   rhs,
		terms: make([]LinearTerm, 0, sizeHint),
		index: make(map[VarID]int, sizeHint),
	}
}

// Name returns the constraint name.
func (c *LinearConstraint) Name() string { return c.name }

// Sense returns the comparison operator.
func (c *LinearConstraint) Sense() Sense { return c.sense }

// RHS returns the right-hand side.
func (c *LinearConstraint) RHS() float64 { return c.rhs }

// Len returns the number of distinct variables in the constraint.
func (c *LinearConstraint) Len() int { return len(c.terms) }

// Terms returns a copy of the terms in insertion order.
func (c *LinearConstraint) Terms() []LinearTerm {
	return append([]LinearTerm(nil), c.terms...)
}

// Coefficient returns the coefficient of v, or (0,false) when v is absent.
func (c *LinearConstraint) Coefficient(v VarID) (float64, bool) {
	at, ok := c.index[v]
	if !ok {
		return 0, false
	}

	return c.terms[at].Coeff, true
}

// AddTerm adds coeff·x[v].
//
// Complexity: O(1) amortized.
func (c *LinearConstraint) AddTerm(v VarID, coeff float64) error {
	if !isFinite(coeff) {
		return qpErrorf("AddTerm", ErrInvalidCoefficient)
	}
	if v < 0 {
		return qpErrorf("AddTerm", ErrUnknownVariable)
	}
	if c.index == nil {
		c.index = make(map[VarID]int)
	}
	if at, ok := c.index[v]; ok {
		c.terms[at].Coeff += coeff
		return nil
	}
	c.index[v] = len(c.terms)
	c.terms = append(c.terms, LinearTerm{Var: v, Coeff: coeff})

	return nil
}

// lhs evaluates Σ coeff·x[var]. Ids are assumed in range.
func (c *LinearConstraint) lhs(x []bool) float64 {
	var sum float64
	for _, t := range c.terms {
		if x[t.Var] {
			sum += t.Coeff
		}
	}

	return sum
}

// satisfied reports whether x meets the constraint within tol.
func (c *LinearConstraint) satisfied(x []bool, tol float64) bool {
	var v = c.lhs(x)
	switch c.sense {
	case LE:
		return v <= c.rhs+tol
	case GE:
		return v >= c.rhs-tol
	default:
		return math.Abs(v-c.rhs) <= tol
	}
}

// maxVar returns the largest VarID referenced, or -1 when empty.
func (c *LinearConstraint) maxVar() VarID {
	var m VarID = -1
	for _, t := range c.terms {
		if t.Var > m {
			m = t.Var
		}
	}

	return m
}

// clone returns an independent deep copy.
func (c *LinearConstraint) clone() *LinearConstraint {
	var out = &LinearConstraint{
		name:  c.name,
		sense: c.sense,
		rhs:   c.rhs,
		terms: append([]LinearTerm(nil), c.terms...),
		index: make(map[VarID]int, len(c.index)),
	}
	for k, v := range c.index {
		out.index[k] = v
	}

	return out
}
