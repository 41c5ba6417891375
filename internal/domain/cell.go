package domain

import "fmt"

// Cell is one square of the grid, identified by an immutable (row, col)
// coordinate. Only its value changes after puzzle assembly, and only the
// search engine changes it.
type Cell struct {
	row, col    int
	value       int // 0 = unassigned
	domain      ValueSet
	constraints []Constraint
}

// NewCell creates an unassigned cell at the given coordinate.
func NewCell(row, col int) *Cell {
	return &Cell{row: row, col: col}
}

func (c *Cell) Row() int { return c.row }
func (c *Cell) Col() int { return c.col }

// Value returns the current assignment, 0 when unassigned.
func (c *Cell) Value() int { return c.value }

// Assigned reports whether the cell currently holds a value.
func (c *Cell) Assigned() bool { return c.value != 0 }

// SetValue assigns v to the cell.
func (c *Cell) SetValue(v int) { c.value = v }

// Clear returns the cell to the unassigned state.
func (c *Cell) Clear() { c.value = 0 }

// SetDomain fixes the full set of values the cell may take.
func (c *Cell) SetDomain(d ValueSet) { c.domain = d }

// Constraints returns every constraint the cell participates in.
func (c *Cell) Constraints() []Constraint { return c.constraints }

// Candidates computes the values this cell could still legally take, reduced
// from the cell domain by each of its constraints in turn. Each reduction
// output is intersected back into the running set, so a reduction can only
// remove values. Pure query; no global state is touched.
func (c *Cell) Candidates() ValueSet {
	candidates := c.domain
	for _, con := range c.constraints {
		candidates = candidates.Intersect(con.Reduce(candidates))
	}
	return candidates
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.col)
}
