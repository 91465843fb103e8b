// Package tsp - instance files.
//
// Instance files are YAML (JSON is accepted as a YAML subset). Two layouts:
//
//	name: demo
//	num_cities: 3
//	distances:
//	  - {from: 0, to: 1, cost: 1}
//	  - {from: 0, to: 2, cost: 2}
//	  - {from: 1, to: 2, cost: 3}
//
// or a full symmetric matrix:
//
//	num_cities: 3
//	matrix: [[0, 1, 2], [1, 0, 3], [2, 3, 0]]
//
// Structural checks run through struct tags (go-playground/validator); the
// semantic checks are those of NewInstance / NewInstanceFromMatrix. Every
// failure matches ErrInvalidInstance.
package tsp

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// instanceDocument is the on-disk form of an instance.
type instanceDocument struct {
	Name      string         `yaml:"name,omitempty" validate:"max=256"`
	NumCities int            `yaml:"num_cities" validate:"required,min=1"`
	Distances []edgeDocument `yaml:"distances,omitempty" validate:"excluded_with=Matrix,dive"`
	Matrix    [][]float64    `yaml:"matrix,omitempty"`
}

// edgeDocument is one undirected edge of the distance list.
type edgeDocument struct {
	From int      `yaml:"from" validate:"min=0"`
	To   int      `yaml:"to" validate:"min=0,nefield=From"`
	Cost *float64 `yaml:"cost" validate:"required,gte=0"`
}

// rowsMatrix adapts [][]float64 to DistanceMatrix.
type rowsMatrix [][]float64

func (m rowsMatrix) Rows() int { return len(m) }
func (m rowsMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}
func (m rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[i]) {
		return 0, fmt.Errorf("index (%d,%d) out of range", i, j)
	}

	return m[i][j], nil
}

// docValidator is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var docValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadInstance decodes and validates an instance file from r.
// Unknown fields are rejected.
//
// Errors: ErrInvalidInstance (wrapping the decode/validation detail).
//
// Complexity: O(file size + N²).
func LoadInstance(r io.Reader) (*Instance, error) {
	var (
		doc instanceDocument
		dec = yaml.NewDecoder(r)
	)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidf("empty instance file")
		}
		return nil, invalidf("decode: %v", err)
	}
	if err := docValidator.Struct(doc); err != nil {
		return nil, invalidf("%v", err)
	}

	var (
		inst *Instance
		err  error
	)
	if doc.Matrix != nil {
		if len(doc.Matrix) != doc.NumCities {
			return nil, invalidf("matrix has %d rows for num_cities %d", len(doc.Matrix), doc.NumCities)
		}
		for i, row := range doc.Matrix {
			if len(row) != doc.NumCities {
				return nil, invalidf("matrix row %d has %d entries for num_cities %d", i, len(row), doc.NumCities)
			}
		}
		inst, err = NewInstanceFromMatrix(rowsMatrix(doc.Matrix))
	} else {
		inst, err = NewInstance(doc.NumCities, doc.distanceMap())
	}
	if err != nil {
		return nil, err
	}

	return inst.WithName(doc.Name), nil
}

// distanceMap folds the edge list into a pair map. Repeated edges with
// conflicting costs are reported; identical repeats are tolerated.
func (doc instanceDocument) distanceMap() map[Pair]float64 {
	var out = make(map[Pair]float64, len(doc.Distances))
	for _, e := range doc.Distances {
		var key = Pair{I: e.From, J: e.To}
		if prev, ok := out[key]; ok && prev != *e.Cost {
			// Keep both orientations so canonicalDistances reports the conflict.
			out[Pair{I: e.To, J: e.From}] = *e.Cost
			continue
		}
		out[key] = *e.Cost
	}

	return out
}

// WriteInstance encodes inst as a YAML edge-list instance file.
// Edges are written in lexicographic pair order.
func WriteInstance(w io.Writer, inst *Instance) error {
	if err := inst.validate(); err != nil {
		return err
	}

	var doc = instanceDocument{
		Name:      inst.name,
		NumCities: inst.n,
		Distances: make([]edgeDocument, 0, inst.NumPairs()),
	}
	for _, p := range inst.Pairs() {
		var c = inst.at(p.I, p.J)
		doc.Distances = append(doc.Distances, edgeDocument{From: p.I, To: p.J, Cost: &c})
	}

	var enc = yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write instance: %w", err)
	}

	return enc.Close()
}
