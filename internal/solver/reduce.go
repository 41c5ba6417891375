package solver

import "svw.info/kenken/internal/domain"

// Reducer implements domain.Reducer with one pure function per constraint
// kind. It holds no state, so a single value is shared by every constraint
// in a puzzle. Same inputs always give the same output; nothing beyond the
// constraint's own cells is consulted.
type Reducer struct{}

// ReduceUnique toggles each assigned sibling value out of the candidate set.
// The toggle is a symmetric difference, which behaves as removal as long as
// the assigned values are a subset of the candidates; the caller intersects
// the result back anyway.
func (Reducer) ReduceUnique(c *domain.Uniqueness, candidates domain.ValueSet) domain.ValueSet {
	out := candidates
	for _, cell := range c.Assigned() {
		out = out.Toggle(cell.Value())
	}
	return out
}

// ReduceAdd narrows by the remaining sum. With one cell left only the exact
// remainder survives. Otherwise a candidate must leave a strictly positive
// remainder for the cells still to come; exact-remainder matches are pruned
// too, a deliberately conservative rule.
func (Reducer) ReduceAdd(c *domain.Add, candidates domain.ValueSet) domain.ValueSet {
	remainder := c.Remainder()

	if len(c.Unassigned()) == 1 {
		if candidates.Has(remainder) {
			return domain.NewValueSet(remainder)
		}
		return domain.NewValueSet()
	}

	out := domain.NewValueSet()
	for _, v := range candidates.Values() {
		if remainder-v > 0 {
			out = out.Add(v)
		}
	}
	return out
}

// ReduceMul narrows by the remaining product. With one cell left only the
// exact remainder survives; otherwise a candidate must divide it evenly.
func (Reducer) ReduceMul(c *domain.Mul, candidates domain.ValueSet) domain.ValueSet {
	remainder := c.Remainder()

	if len(c.Unassigned()) == 1 {
		if candidates.Has(remainder) {
			return domain.NewValueSet(remainder)
		}
		return domain.NewValueSet()
	}

	out := domain.NewValueSet()
	for _, v := range candidates.Values() {
		if remainder%v == 0 {
			out = out.Add(v)
		}
	}
	return out
}

// ReduceSub keeps every candidate that appears in at least one unordered
// pair satisfying the difference rule.
func (Reducer) ReduceSub(c *domain.Sub, candidates domain.ValueSet) domain.ValueSet {
	return reducePairs(c, candidates)
}

// ReduceDiv keeps every candidate that appears in at least one unordered
// pair satisfying the quotient rule.
func (Reducer) ReduceDiv(c *domain.Div, candidates domain.ValueSet) domain.ValueSet {
	return reducePairs(c, candidates)
}

// ReduceGiven collapses the set to the target value, or to nothing.
func (Reducer) ReduceGiven(c *domain.Given, candidates domain.ValueSet) domain.ValueSet {
	if candidates.Has(c.Target()) {
		return domain.NewValueSet(c.Target())
	}
	return domain.NewValueSet()
}

// reducePairs forms all unordered candidate pairs, evaluates the binary
// constraint on each, and flattens the surviving pairs back to a value set.
func reducePairs(c domain.Constraint, candidates domain.ValueSet) domain.ValueSet {
	values := candidates.Values()
	out := domain.NewValueSet()
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if c.Evaluate([]int{values[i], values[j]}) {
				out = out.Add(values[i]).Add(values[j])
			}
		}
	}
	return out
}
