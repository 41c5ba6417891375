package domain

import "fmt"

// Reducer narrows a candidate set by the rules of one constraint kind.
// Implementations are stateless; a single shared value serves every
// constraint in a puzzle.
type Reducer interface {
	ReduceUnique(c *Uniqueness, candidates ValueSet) ValueSet
	ReduceAdd(c *Add, candidates ValueSet) ValueSet
	ReduceSub(c *Sub, candidates ValueSet) ValueSet
	ReduceMul(c *Mul, candidates ValueSet) ValueSet
	ReduceDiv(c *Div, candidates ValueSet) ValueSet
	ReduceGiven(c *Given, candidates ValueSet) ValueSet
}

// Constraint groups cells whose values must collectively satisfy a rule.
// Membership is fixed at puzzle assembly.
type Constraint interface {
	// Cells returns the member cells.
	Cells() []*Cell
	// Evaluate applies the rule to a fully assigned value list.
	Evaluate(values []int) bool
	// Reduce narrows a candidate set using the currently assigned member
	// values. Without a bound reducer the input is returned unchanged.
	Reduce(candidates ValueSet) ValueSet
	// SetReducer binds the reduction strategy used by Reduce.
	SetReducer(r Reducer)
}

// ValueConstraint is implemented by the cage constraints, which carry a
// target value and an operator symbol.
type ValueConstraint interface {
	Constraint
	Target() int
	Op() Op
}

// Solved reports whether every cell of c is assigned and the rule holds.
func Solved(c Constraint) bool {
	cells := c.Cells()
	values := make([]int, 0, len(cells))
	for _, cell := range cells {
		if !cell.Assigned() {
			return false
		}
		values = append(values, cell.Value())
	}
	return c.Evaluate(values)
}

// Consistent reports local partial consistency: a constraint with any
// unassigned cell is presumed consistent; only fully assigned constraints
// are checked against their rule. Pruning power lives in Reduce, not here.
func Consistent(c Constraint) bool {
	for _, cell := range c.Cells() {
		if !cell.Assigned() {
			return true
		}
	}
	return Solved(c)
}

// group holds the cell bookkeeping shared by every constraint kind.
type group struct {
	cells   []*Cell
	reducer Reducer
}

func (g *group) Cells() []*Cell       { return g.cells }
func (g *group) SetReducer(r Reducer) { g.reducer = r }

// Values returns the current member values, 0 marking unassigned cells.
func (g *group) Values() []int {
	out := make([]int, len(g.cells))
	for i, cell := range g.cells {
		out[i] = cell.Value()
	}
	return out
}

// Assigned returns the member cells that currently hold a value.
func (g *group) Assigned() []*Cell {
	out := make([]*Cell, 0, len(g.cells))
	for _, cell := range g.cells {
		if cell.Assigned() {
			out = append(out, cell)
		}
	}
	return out
}

// Unassigned returns the member cells without a value.
func (g *group) Unassigned() []*Cell {
	out := make([]*Cell, 0, len(g.cells))
	for _, cell := range g.cells {
		if !cell.Assigned() {
			out = append(out, cell)
		}
	}
	return out
}

// attach registers c on each of its member cells.
func attach(c Constraint, cells []*Cell) {
	for _, cell := range cells {
		cell.constraints = append(cell.constraints, c)
	}
}

// Uniqueness requires all assigned values in the group to be distinct.
// One instance covers each row and one each column.
type Uniqueness struct {
	group
}

func NewUniqueness(cells []*Cell) *Uniqueness {
	u := &Uniqueness{group{cells: cells}}
	attach(u, cells)
	return u
}

func (u *Uniqueness) Evaluate(values []int) bool {
	var seen ValueSet
	for _, v := range values {
		if seen.Has(v) {
			return false
		}
		seen = seen.Add(v)
	}
	return true
}

func (u *Uniqueness) Reduce(candidates ValueSet) ValueSet {
	if u.reducer == nil {
		return candidates
	}
	return u.reducer.ReduceUnique(u, candidates)
}

// cage extends group with the target value shared by the arithmetic
// constraints.
type cage struct {
	group
	target int
}

func (c *cage) Target() int { return c.target }

// Label is the cage tag drawn by renderers, e.g. "7+".
func Label(c ValueConstraint) string {
	return fmt.Sprintf("%d%s", c.Target(), c.Op())
}

// Add requires the member values to sum to the target.
type Add struct {
	cage
}

func NewAdd(cells []*Cell, target int) *Add {
	a := &Add{cage{group{cells: cells}, target}}
	attach(a, cells)
	return a
}

func (a *Add) Op() Op { return OpAdd }

func (a *Add) Evaluate(values []int) bool {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum == a.target
}

// Remainder is the target minus the sum of the assigned member values.
func (a *Add) Remainder() int {
	sum := 0
	for _, cell := range a.Assigned() {
		sum += cell.Value()
	}
	return a.target - sum
}

func (a *Add) Reduce(candidates ValueSet) ValueSet {
	if a.reducer == nil {
		return candidates
	}
	return a.reducer.ReduceAdd(a, candidates)
}

// Mul requires the member values to multiply to the target.
type Mul struct {
	cage
}

func NewMul(cells []*Cell, target int) *Mul {
	m := &Mul{cage{group{cells: cells}, target}}
	attach(m, cells)
	return m
}

func (m *Mul) Op() Op { return OpMul }

func (m *Mul) Evaluate(values []int) bool {
	product := 1
	for _, v := range values {
		product *= v
	}
	return product == m.target
}

// Remainder is the target divided by the product of the assigned member
// values (integer division; the empty product is 1).
func (m *Mul) Remainder() int {
	product := 1
	for _, cell := range m.Assigned() {
		product *= cell.Value()
	}
	return m.target / product
}

func (m *Mul) Reduce(candidates ValueSet) ValueSet {
	if m.reducer == nil {
		return candidates
	}
	return m.reducer.ReduceMul(m, candidates)
}

// Sub requires the absolute difference of its two member values to equal
// the target. Always binary.
type Sub struct {
	cage
}

func NewSub(cells []*Cell, target int) *Sub {
	s := &Sub{cage{group{cells: cells}, target}}
	attach(s, cells)
	return s
}

func (s *Sub) Op() Op { return OpSub }

func (s *Sub) Evaluate(values []int) bool {
	d := values[0] - values[1]
	if d < 0 {
		d = -d
	}
	return d == s.target
}

func (s *Sub) Reduce(candidates ValueSet) ValueSet {
	if s.reducer == nil {
		return candidates
	}
	return s.reducer.ReduceSub(s, candidates)
}

// Div requires one member value to be the other times the target, dividing
// evenly. Always binary.
type Div struct {
	cage
}

func NewDiv(cells []*Cell, target int) *Div {
	d := &Div{cage{group{cells: cells}, target}}
	attach(d, cells)
	return d
}

func (d *Div) Op() Op { return OpDiv }

func (d *Div) Evaluate(values []int) bool {
	return values[0] == values[1]*d.target || values[1] == values[0]*d.target
}

func (d *Div) Reduce(candidates ValueSet) ValueSet {
	if d.reducer == nil {
		return candidates
	}
	return d.reducer.ReduceDiv(d, candidates)
}

// Given fixes a single cell to the target value.
type Given struct {
	cage
}

func NewGiven(cells []*Cell, target int) *Given {
	g := &Given{cage{group{cells: cells}, target}}
	attach(g, cells)
	return g
}

func (g *Given) Op() Op { return OpGiven }

func (g *Given) Evaluate(values []int) bool {
	return values[0] == g.target
}

func (g *Given) Reduce(candidates ValueSet) ValueSet {
	if g.reducer == nil {
		return candidates
	}
	return g.reducer.ReduceGiven(g, candidates)
}
