// Package parser loads YAML puzzle definitions and assembles them into a
// solver-ready puzzle graph. Definitions list only the cages; the exclusive
// row and column uniqueness constraints are created automatically.
//
// Example file:
//
//	width: 2
//	cages:
//	  - {value: 3, op: "+", cells: [[0, 0], [0, 1]]}
//	  - {value: 2, op: "*", cells: [[1, 0], [1, 1]]}
package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/kenken/internal/domain"
	"svw.info/kenken/internal/validator"
)

// ParseFile reads and parses a puzzle definition file.
func ParseFile(path string) (*domain.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML definition and builds the puzzle.
func Parse(data []byte) (*domain.Puzzle, error) {
	def, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// Decode unmarshals a YAML definition without building the puzzle.
func Decode(data []byte) (domain.Definition, error) {
	var def domain.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return domain.Definition{}, fmt.Errorf("decode definition: %w", err)
	}
	return def, nil
}

// Build validates a definition and assembles the cell arena and constraint
// list. The returned puzzle satisfies the cage partition invariant.
func Build(def domain.Definition) (*domain.Puzzle, error) {
	if err := validator.New().Validate(def); err != nil {
		return nil, err
	}

	width := def.Width
	cells := make([]*domain.Cell, width*width)
	for r := 0; r < width; r++ {
		for c := 0; c < width; c++ {
			cells[r*width+c] = domain.NewCell(r, c)
		}
	}

	constraints := make([]domain.Constraint, 0, len(def.Cages)+2*width)
	for _, cage := range def.Cages {
		members := make([]*domain.Cell, len(cage.Cells))
		for i, coord := range cage.Cells {
			members[i] = cells[coord[0]*width+coord[1]]
		}
		switch cage.Op {
		case domain.OpAdd:
			constraints = append(constraints, domain.NewAdd(members, cage.Value))
		case domain.OpSub:
			constraints = append(constraints, domain.NewSub(members, cage.Value))
		case domain.OpMul:
			constraints = append(constraints, domain.NewMul(members, cage.Value))
		case domain.OpDiv:
			constraints = append(constraints, domain.NewDiv(members, cage.Value))
		case domain.OpGiven:
			constraints = append(constraints, domain.NewGiven(members, cage.Value))
		}
	}

	// One uniqueness constraint per row and per column.
	for i := 0; i < width; i++ {
		row := make([]*domain.Cell, width)
		col := make([]*domain.Cell, width)
		for j := 0; j < width; j++ {
			row[j] = cells[i*width+j]
			col[j] = cells[j*width+i]
		}
		constraints = append(constraints, domain.NewUniqueness(row))
		constraints = append(constraints, domain.NewUniqueness(col))
	}

	return domain.NewPuzzle(width, cells, constraints), nil
}
