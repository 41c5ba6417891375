package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/kenken/internal/domain"
)

// rowCells builds cells at (0, i), assigning any non-zero values.
func rowCells(values ...int) []*domain.Cell {
	out := make([]*domain.Cell, len(values))
	for i, v := range values {
		out[i] = domain.NewCell(0, i)
		if v != 0 {
			out[i].SetValue(v)
		}
	}
	return out
}

func set(values ...int) domain.ValueSet { return domain.NewValueSet(values...) }

func TestReduceUnique(t *testing.T) {
	u := domain.NewUniqueness(rowCells(2, 0, 0))
	got := Reducer{}.ReduceUnique(u, set(1, 2, 3))
	assert.Equal(t, []int{1, 3}, got.Values(), "assigned sibling values drop out")
}

func TestReduceUniqueNothingAssigned(t *testing.T) {
	u := domain.NewUniqueness(rowCells(0, 0))
	got := Reducer{}.ReduceUnique(u, set(1, 2))
	assert.Equal(t, []int{1, 2}, got.Values())
}

func TestReduceAddLastCellTakesRemainder(t *testing.T) {
	a := domain.NewAdd(rowCells(4, 0), 6)
	got := Reducer{}.ReduceAdd(a, set(1, 2, 3))
	assert.Equal(t, []int{2}, got.Values())
}

func TestReduceAddLastCellRemainderMissing(t *testing.T) {
	a := domain.NewAdd(rowCells(4, 0), 6)
	got := Reducer{}.ReduceAdd(a, set(1, 3))
	assert.Equal(t, 0, got.Len())
}

func TestReduceAddKeepsStrictlySmallerThanRemainder(t *testing.T) {
	// Remainder 6 with two cells still open: the exact match 6 is pruned
	// too, since the other cell must absorb a positive value.
	a := domain.NewAdd(rowCells(4, 0, 0), 10)
	got := Reducer{}.ReduceAdd(a, set(1, 2, 3, 4, 5, 6))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.Values())
}

func TestReduceMulLastCellTakesRemainder(t *testing.T) {
	m := domain.NewMul(rowCells(3, 0), 12)
	got := Reducer{}.ReduceMul(m, set(1, 2, 3, 4))
	assert.Equal(t, []int{4}, got.Values())
}

func TestReduceMulKeepsDivisors(t *testing.T) {
	m := domain.NewMul(rowCells(2, 0, 0), 12)
	got := Reducer{}.ReduceMul(m, set(1, 2, 3, 4, 5, 6))
	assert.Equal(t, []int{1, 2, 3, 6}, got.Values(), "remainder 6 keeps only its divisors")
}

func TestReduceSubKeepsSatisfyingPairs(t *testing.T) {
	s := domain.NewSub(rowCells(0, 0), 1)
	got := Reducer{}.ReduceSub(s, set(2, 3, 5))
	assert.Equal(t, []int{2, 3}, got.Values())
}

func TestReduceSubNoPairs(t *testing.T) {
	s := domain.NewSub(rowCells(0, 0), 1)
	got := Reducer{}.ReduceSub(s, set(1, 3, 5))
	assert.Equal(t, 0, got.Len())

	// A single candidate forms no pair at all.
	got = Reducer{}.ReduceSub(s, set(4))
	assert.Equal(t, 0, got.Len())
}

func TestReduceDivKeepsSatisfyingPairs(t *testing.T) {
	d := domain.NewDiv(rowCells(0, 0), 2)
	got := Reducer{}.ReduceDiv(d, set(1, 2, 3, 4))
	assert.Equal(t, []int{1, 2, 4}, got.Values())
}

func TestReduceGiven(t *testing.T) {
	g := domain.NewGiven(rowCells(0), 3)
	assert.Equal(t, []int{3}, Reducer{}.ReduceGiven(g, set(1, 2, 3)).Values())
	assert.Equal(t, 0, Reducer{}.ReduceGiven(g, set(1, 2)).Len())
}

func TestReduceIsPure(t *testing.T) {
	a := domain.NewAdd(rowCells(4, 0, 0), 10)
	in := set(1, 2, 3, 4, 5, 6)
	first := Reducer{}.ReduceAdd(a, in)
	second := Reducer{}.ReduceAdd(a, in)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, in.Values(), "input set untouched")
}
