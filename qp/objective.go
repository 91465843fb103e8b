// Package qp - objective container.
//
// Objective collects a constant, linear terms and quadratic terms in the order
// they were added. Keys are deduplicated: adding the same VarID (linear) or the
// same ordered VarPair (quadratic) twice accumulates the coefficients into the
// first occurrence, so term order stays the order of first insertion.
//
// An Objective is a plain value under construction; once attached to a Model
// via SetObjective the model stores its own copy and the caller's instance can
// no longer affect it.
package qp

// Objective is a quadratic objective under construction.
type Objective struct {
	sense     ObjectiveSense
	constant  float64
	linear    []LinearTerm
	linIndex  map[VarID]int
	quadratic []QuadraticTerm
	quadIndex map[VarPair]int
}

// NewObjective returns an empty objective with the given sense.
// sizeHint preallocates room for that many quadratic terms.
//
// Complexity: O(sizeHint) allocation.
func NewObjective(sense ObjectiveSense, sizeHint int) *Objective {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Objective{
		sense:     sense,
		linIndex:  make(map[VarID]int),
		quadratic: make([]QuadraticTerm, 0, sizeHint),
		quadIndex: make(map[VarPair]int, sizeHint),
	}
}

// Sense returns the optimization direction.
func (o *Objective) Sense() ObjectiveSense { return o.sense }

// Constant returns the constant offset.
func (o *Objective) Constant() float64 { return o.constant }

// SetConstant sets the constant offset.
func (o *Objective) SetConstant(c float64) error {
	if !isFinite(c) {
		return qpErrorf("SetConstant", ErrInvalidCoefficient)
	}
	o.constant = c

	return nil
}

// AddLinear adds coeff·x[v]. Repeated v accumulate.
//
// Complexity: O(1) amortized.
func (o *Objective) AddLinear(v VarID, coeff float64) error {
	if !isFinite(coeff) {
		return qpErrorf("AddLinear", ErrInvalidCoefficient)
	}
	if v < 0 {
		return qpErrorf("AddLinear", ErrUnknownVariable)
	}
	if o.linIndex == nil {
		o.linIndex = make(map[VarID]int)
	}
	if at, ok := o.linIndex[v]; ok {
		o.linear[at].Coeff += coeff
		return nil
	}
	o.linIndex[v] = len(o.linear)
	o.linear = append(o.linear, LinearTerm{Var: v, Coeff: coeff})

	return nil
}

// AddQuadratic adds coeff·x[a]·x[b] under the ordered key (a,b).
// Repeated keys accumulate; (b,a) is a different key.
//
// Complexity: O(1) amortized.
func (o *Objective) AddQuadratic(a, b VarID, coeff float64) error {
	if !isFinite(coeff) {
		return qpErrorf("AddQuadratic", ErrInvalidCoefficient)
	}
	if a < 0 || b < 0 {
		return qpErrorf("AddQuadratic", ErrUnknownVariable)
	}
	if o.quadIndex == nil {
		o.quadIndex = make(map[VarPair]int)
	}
	var key = VarPair{A: a, B: b}
	if at, ok := o.quadIndex[key]; ok {
		o.quadratic[at].Coeff += coeff
		return nil
	}
	o.quadIndex[key] = len(o.quadratic)
	o.quadratic = append(o.quadratic, QuadraticTerm{Pair: key, Coeff: coeff})

	return nil
}

// LinearTerms returns a copy of the linear terms in insertion order.
func (o *Objective) LinearTerms() []LinearTerm {
	return append([]LinearTerm(nil), o.linear...)
}

// QuadraticTerms returns a copy of the quadratic terms in insertion order.
func (o *Objective) QuadraticTerms() []QuadraticTerm {
	return append([]QuadraticTerm(nil), o.quadratic...)
}

// Quadratic returns the coefficient stored under the ordered key (a,b).
func (o *Objective) Quadratic(a, b VarID) (float64, bool) {
	at, ok := o.quadIndex[VarPair{A: a, B: b}]
	if !ok {
		return 0, false
	}

	return o.quadratic[at].Coeff, true
}

// Len returns the number of distinct quadratic keys.
func (o *Objective) Len() int { return len(o.quadratic) }

// IsZero reports whether the objective is the zero polynomial.
func (o *Objective) IsZero() bool {
	return o.constant == 0 && len(o.linear) == 0 && len(o.quadratic) == 0
}

// Canonical returns the quadratic terms merged under unordered keys
// (VarPair.Canonical), in order of first appearance. Solvers that treat
// x_a·x_b and x_b·x_a as the same monomial see exactly these coefficients.
//
// Complexity: O(T) for T quadratic terms.
func (o *Objective) Canonical() []QuadraticTerm {
	var (
		out   = make([]QuadraticTerm, 0, len(o.quadratic))
		index = make(map[VarPair]int, len(o.quadratic))
		key   VarPair
		at    int
		ok    bool
	)
	for _, t := range o.quadratic {
		key = t.Pair.Canonical()
		if at, ok = index[key]; ok {
			out[at].Coeff += t.Coeff
			continue
		}
		index[key] = len(out)
		out = append(out, QuadraticTerm{Pair: key, Coeff: t.Coeff})
	}

	return out
}

// value evaluates the objective on x without length checks; callers
// (Model.Evaluate) validate ids against the arena beforehand.
//
// Complexity: O(L + T).
func (o *Objective) value(x []bool) float64 {
	var sum = o.constant
	for _, t := range o.linear {
		if x[t.Var] {
			sum += t.Coeff
		}
	}
	for _, t := range o.quadratic {
		if x[t.Pair.A] && x[t.Pair.B] {
			sum += t.Coeff
		}
	}

	return sum
}

// maxVar returns the largest VarID referenced, or -1 for an empty objective.
func (o *Objective) maxVar() VarID {
	var m VarID = -1
	for _, t := range o.linear {
		if t.Var > m {
			m = t.Var
		}
	}
	for _, t := range o.quadratic {
		if t.Pair.A > m {
			m = t.Pair.A
		}
		if t.Pair.B > m {
			m = t.Pair.B
		}
	}

	return m
}

// clone returns an independent deep copy.
func (o *Objective) clone() *Objective {
	var c = &Objective{
		sense:     o.sense,
		constant:  o.constant,
		linear:    append([]LinearTerm(nil), o.linear...),
		linIndex:  make(map[VarID]int, len(o.linIndex)),
		quadratic: append([]QuadraticTerm(nil), o.quadratic...),
		quadIndex: make(map[VarPair]int, len(o.quadIndex)),
	}
	for k, v := range o.linIndex {
		c.linIndex[k] = v
	}
	for k, v := range o.quadIndex {
		c.quadIndex[k] = v
	}

	return c
}
