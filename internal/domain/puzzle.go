package domain

// Puzzle owns the cell arena and constraint list for one KenKen grid. The
// arena is row-major; constraints hold non-owning pointers into it. Built
// once from a validated definition, mutated only through cell values during
// a solve.
type Puzzle struct {
	width       int
	cells       []*Cell
	constraints []Constraint
}

// NewPuzzle assembles a puzzle from a row-major cell arena and its
// constraint list. Structural validation happens in the loader.
func NewPuzzle(width int, cells []*Cell, constraints []Constraint) *Puzzle {
	return &Puzzle{width: width, cells: cells, constraints: constraints}
}

func (p *Puzzle) Width() int { return p.width }

// Cells returns the arena in row-major order.
func (p *Puzzle) Cells() []*Cell { return p.cells }

// CellAt returns the cell at the given coordinate.
func (p *Puzzle) CellAt(row, col int) *Cell { return p.cells[row*p.width+col] }

func (p *Puzzle) Constraints() []Constraint { return p.constraints }

// Domain is the set of values any cell may take, {1..width}.
func (p *Puzzle) Domain() ValueSet { return FullDomain(p.width) }

// Unassigned returns the cells without a value, in arena order.
func (p *Puzzle) Unassigned() []*Cell {
	out := make([]*Cell, 0, len(p.cells))
	for _, cell := range p.cells {
		if !cell.Assigned() {
			out = append(out, cell)
		}
	}
	return out
}

// IsSolved reports whether every constraint is fully assigned and satisfied.
func (p *Puzzle) IsSolved() bool {
	for _, c := range p.constraints {
		if !Solved(c) {
			return false
		}
	}
	return true
}

// IsConsistent reports whether every constraint is locally consistent.
func (p *Puzzle) IsConsistent() bool {
	for _, c := range p.constraints {
		if !Consistent(c) {
			return false
		}
	}
	return true
}

// Reset clears every cell value.
func (p *Puzzle) Reset() {
	for _, cell := range p.cells {
		cell.Clear()
	}
}

// Grid snapshots the current values as a width×width matrix, 0 marking
// unassigned cells.
func (p *Puzzle) Grid() [][]int {
	out := make([][]int, p.width)
	for r := 0; r < p.width; r++ {
		row := make([]int, p.width)
		for c := 0; c < p.width; c++ {
			row[c] = p.CellAt(r, c).Value()
		}
		out[r] = row
	}
	return out
}
