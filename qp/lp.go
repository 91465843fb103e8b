// Package qp - CPLEX LP export.
//
// WriteLP renders a model in the CPLEX LP text format:
//
//	\ Problem name: TSP
//
//	Minimize
//	 obj: [ 2 x_0_0*x_1_1 + 4 x_0_1*x_1_2 ]/2
//	Subject To
//	 city_0_once: x_0_0 + x_0_1 + x_0_2 = 1
//	Binaries
//	 x_0_0 x_0_1 x_0_2
//	End
//
// Quadratic objective terms live inside "[ ... ]/2", so their coefficients
// are written doubled. Terms are emitted in model order and long expressions
// are wrapped, keeping every line well under the 255-character limit of
// common LP readers.
package qp

import (
	"bufio"
	"io"
	"strconv"
)

// lpWrapWidth is the soft line width for wrapped expressions.
const lpWrapWidth = 78

// lpWriter accumulates the first write error (errWriter pattern) and
// tracks the current column for wrapping.
type lpWriter struct {
	w   *bufio.Writer
	col int
	err error
}

func (lw *lpWriter) raw(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = lw.w.WriteString(s)
	lw.col += len(s)
}

func (lw *lpWriter) newline() {
	lw.raw("\n")
	lw.col = 0
}

// token writes s, wrapping onto a new indented line when it would overflow.
func (lw *lpWriter) token(s string) {
	if lw.col > 1 && lw.col+len(s)+1 > lpWrapWidth {
		lw.newline()
		lw.raw(" ")
	}
	lw.raw(" ")
	lw.raw(s)
}

// formatCoeff renders v in the shortest exact decimal form.
func formatCoeff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// signed returns the operator and magnitude tokens of a term; first terms
// carry only a leading "-" when negative.
func signed(v float64, first bool) (string, float64) {
	if v < 0 {
		return "-", -v
	}
	if first {
		return "", v
	}

	return "+", v
}

// writeLinear writes a linear expression; unit coefficients are omitted.
func (m *Model) writeLinear(lw *lpWriter, terms []LinearTerm) {
	var (
		op  string
		mag float64
	)
	for i, t := range terms {
		op, mag = signed(t.Coeff, i == 0)
		if op != "" {
			lw.token(op)
		}
		if mag == 1 {
			lw.token(m.varName(t.Var))
			continue
		}
		lw.token(formatCoeff(mag) + " " + m.varName(t.Var))
	}
}

// writeQuadratic writes "[ ... ]/2" with doubled coefficients.
func (m *Model) writeQuadratic(lw *lpWriter, terms []QuadraticTerm, first bool) {
	if len(terms) == 0 {
		return
	}
	if !first {
		lw.token("+")
	}
	lw.token("[")

	var (
		op   string
		mag  float64
		mono string
	)
	for i, t := range terms {
		op, mag = signed(2*t.Coeff, i == 0)
		if op != "" {
			lw.token(op)
		}
		if t.Pair.A == t.Pair.B {
			mono = m.varName(t.Pair.A) + "^2"
		} else {
			mono = m.varName(t.Pair.A) + "*" + m.varName(t.Pair.B)
		}
		lw.token(formatCoeff(mag) + " " + mono)
	}
	lw.token("]/2")
}

// WriteLP writes the model in CPLEX LP format to w.
// The model does not need to be sealed; missing parts render empty.
//
// Complexity: O(V + L + T + Σ k).
func (m *Model) WriteLP(w io.Writer) error {
	var lw = &lpWriter{w: bufio.NewWriter(w)}

	lw.raw(`\ Problem name: ` + m.name)
	lw.newline()
	lw.newline()

	// Objective.
	var obj = m.objective
	if obj == nil {
		obj = NewObjective(Minimize, 0)
	}
	if obj.sense == Maximize {
		lw.raw("Maximize")
	} else {
		lw.raw("Minimize")
	}
	lw.newline()
	lw.raw(" obj:")
	m.writeLinear(lw, obj.linear)
	m.writeQuadratic(lw, obj.quadratic, len(obj.linear) == 0)
	var noTerms = len(obj.linear) == 0 && len(obj.quadratic) == 0
	if obj.constant != 0 || noTerms {
		op, mag := signed(obj.constant, noTerms)
		if op != "" {
			lw.token(op)
		}
		lw.token(formatCoeff(mag))
	}
	lw.newline()

	// Constraints.
	lw.raw("Subject To")
	lw.newline()
	for _, c := range m.constraints {
		lw.raw(" " + c.name + ":")
		m.writeLinear(lw, c.terms)
		if len(c.terms) == 0 {
			lw.token("0 " + m.firstVarName())
		}
		lw.token(c.sense.lpOperator())
		lw.token(formatCoeff(c.rhs))
		lw.newline()
	}

	// Domains.
	if len(m.vars) > 0 {
		lw.raw("Binaries")
		lw.newline()
		for _, v := range m.vars {
			lw.token(v.Name)
		}
		lw.newline()
	}
	lw.raw("End")
	lw.newline()

	if lw.err != nil {
		return lw.err
	}

	return lw.w.Flush()
}

// firstVarName names some variable for rendering empty constraint rows.
func (m *Model) firstVarName() string {
	if len(m.vars) == 0 {
		return "x"
	}

	return m.vars[0].Name
}
