package solver

import (
	"sort"
	"time"

	"svw.info/kenken/internal/domain"
	"svw.info/kenken/internal/ports"
)

// Engine solves puzzles by constrained backtracking: candidate reduction
// prunes values up front, a recursive search assigns the rest. Stateless;
// the puzzle is the only thing mutated, strictly by the sequential
// recursion, so one Engine may serve independent puzzles on any number of
// goroutines.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Solve searches for a full assignment satisfying every constraint.
// On failure the puzzle is left with all cells unassigned; on success the
// cell values hold the solution.
func (e *Engine) Solve(p *domain.Puzzle) (bool, ports.Stats) {
	start := time.Now()
	var stats ports.Stats

	// Every cell starts from the full {1..N} domain; every constraint is
	// bound to the shared stateless reducer.
	for _, cell := range p.Cells() {
		cell.SetDomain(p.Domain())
	}
	reducer := Reducer{}
	for _, c := range p.Constraints() {
		c.SetReducer(reducer)
	}

	var solve func(depth int) bool
	solve = func(depth int) bool {
		unassigned := p.Unassigned()
		if len(unassigned) == 0 {
			// Full assignment: one final check over every constraint.
			return p.IsSolved()
		}
		if depth > 0 {
			stats.RecursiveCalls++
		}

		// Most-constrained-first: fewest legal values tried first, so
		// dead branches fail early. Key computed once per cell; stable
		// sort keeps arena order on ties.
		counts := make(map[*domain.Cell]int, len(unassigned))
		for _, cell := range unassigned {
			counts[cell] = cell.Candidates().Len()
		}
		sort.SliceStable(unassigned, func(i, j int) bool {
			return counts[unassigned[i]] < counts[unassigned[j]]
		})

		// Only the first cell in sorted order is examined per call.
		// Cells behind it are reached through recursion once it is
		// assigned; exhausting its candidates fails the whole call.
		cell := unassigned[0]
		for _, candidate := range cell.Candidates().Values() {
			cell.SetValue(candidate)
			if p.IsConsistent() {
				if solve(depth + 1) {
					return true
				}
			}
			cell.Clear()
		}
		stats.Backtracks++
		return false
	}

	ok := solve(0)
	stats.Duration = time.Since(start)
	return ok, stats
}
