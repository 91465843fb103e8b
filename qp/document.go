// Package qp - serializable model document.
//
// Document flattens a Model into plain structs with yaml/json tags, using
// variable names instead of handles so the output is self-describing.
// Model implements yaml.Marshaler and json.Marshaler through it.
package qp

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ModelDocument is the serializable form of a Model.
type ModelDocument struct {
	Name        string               `yaml:"name" json:"name"`
	Phase       string               `yaml:"phase" json:"phase"`
	Variables   []VariableDocument   `yaml:"variables" json:"variables"`
	Objective   ObjectiveDocument    `yaml:"objective" json:"objective"`
	Constraints []ConstraintDocument `yaml:"constraints" json:"constraints"`
}

// VariableDocument describes one variable.
type VariableDocument struct {
	Index int    `yaml:"index" json:"index"`
	Name  string `yaml:"name" json:"name"`
	Type  string `yaml:"type" json:"type"`
}

// LinearTermDocument is coeff·var.
type LinearTermDocument struct {
	Var   string  `yaml:"var" json:"var"`
	Coeff float64 `yaml:"coeff" json:"coeff"`
}

// QuadraticTermDocument is coeff·a·b.
type QuadraticTermDocument struct {
	A     string  `yaml:"a" json:"a"`
	B     string  `yaml:"b" json:"b"`
	Coeff float64 `yaml:"coeff" json:"coeff"`
}

// ObjectiveDocument describes the objective.
type ObjectiveDocument struct {
	Sense     string                  `yaml:"sense" json:"sense"`
	Constant  float64                 `yaml:"constant,omitempty" json:"constant,omitempty"`
	Linear    []LinearTermDocument    `yaml:"linear,omitempty" json:"linear,omitempty"`
	Quadratic []QuadraticTermDocument `yaml:"quadratic,omitempty" json:"quadratic,omitempty"`
}

// ConstraintDocument describes a linear constraint.
type ConstraintDocument struct {
	Name  string               `yaml:"name" json:"name"`
	Terms []LinearTermDocument `yaml:"terms" json:"terms"`
	Sense string               `yaml:"sense" json:"sense"`
	RHS   float64              `yaml:"rhs" json:"rhs"`
}

// Document returns the serializable form of m.
//
// Complexity: O(V + L + T + Σ k).
func (m *Model) Document() ModelDocument {
	var doc = ModelDocument{
		Name:        m.name,
		Phase:       m.phase.String(),
		Variables:   make([]VariableDocument, len(m.vars)),
		Constraints: make([]ConstraintDocument, len(m.constraints)),
	}
	for i, v := range m.vars {
		doc.Variables[i] = VariableDocument{Index: int(v.ID), Name: v.Name, Type: v.Type.String()}
	}

	doc.Objective.Sense = Minimize.String()
	if obj := m.objective; obj != nil {
		doc.Objective.Sense = obj.sense.String()
		doc.Objective.Constant = obj.constant
		doc.Objective.Linear = m.linearDocs(obj.linear)
		if len(obj.quadratic) > 0 {
			doc.Objective.Quadratic = make([]QuadraticTermDocument, len(obj.quadratic))
			for i, t := range obj.quadratic {
				doc.Objective.Quadratic[i] = QuadraticTermDocument{
					A:     m.varName(t.Pair.A),
					B:     m.varName(t.Pair.B),
					Coeff: t.Coeff,
				}
			}
		}
	}

	for i, c := range m.constraints {
		doc.Constraints[i] = ConstraintDocument{
			Name:  c.name,
			Terms: m.linearDocs(c.terms),
			Sense: c.sense.String(),
			RHS:   c.rhs,
		}
	}

	return doc
}

func (m *Model) linearDocs(terms []LinearTerm) []LinearTermDocument {
	if len(terms) == 0 {
		return nil
	}
	var out = make([]LinearTermDocument, len(terms))
	for i, t := range terms {
		out[i] = LinearTermDocument{Var: m.varName(t.Var), Coeff: t.Coeff}
	}

	return out
}

// MarshalYAML implements yaml.Marshaler.
func (m *Model) MarshalYAML() (interface{}, error) {
	return m.Document(), nil
}

// MarshalJSON implements json.Marshaler.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Document())
}

// Interface checks.
var (
	_ yaml.Marshaler = (*Model)(nil)
	_ json.Marshaler = (*Model)(nil)
)
