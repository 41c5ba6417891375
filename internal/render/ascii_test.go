package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/kenken/internal/parser"
	"svw.info/kenken/internal/solver"
)

func TestFormatOneByOne(t *testing.T) {
	p, err := parser.Parse([]byte(`
width: 1
cages:
  - {value: 1, op: "$", cells: [[0, 0]]}
`))
	require.NoError(t, err)
	ok, _ := solver.NewEngine().Solve(p)
	require.True(t, ok)

	want := strings.Join([]string{
		"#--------------#",
		"|1$            |",
		"|              |",
		"|      1       |",
		"|              |",
		"|              |",
		"#--------------#",
	}, "\n")
	assert.Equal(t, want, NewASCII().Format(p))
}

func TestFormatTwoByTwo(t *testing.T) {
	p, err := parser.Parse([]byte(`
width: 2
cages:
  - {value: 3, op: "+", cells: [[0, 0], [0, 1]]}
  - {value: 2, op: "*", cells: [[1, 0], [1, 1]]}
`))
	require.NoError(t, err)
	ok, _ := solver.NewEngine().Solve(p)
	require.True(t, ok)

	out := NewASCII().Format(p)
	lines := strings.Split(out, "\n")
	// Top rule, then 5 content lines and a rule per grid row.
	require.Len(t, lines, 13)

	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Equal(t, "#--------------#--------------#", lines[0])
	assert.Contains(t, lines[1], "3+")
	assert.Contains(t, lines[7], "2*")

	// Cells of one cage share an open border: no pipe between columns.
	assert.Contains(t, lines[3], "  ")
	for _, l := range lines {
		assert.Equal(t, len(lines[0]), len(l), "uniform line width")
	}

	// The cage rows are separated by a full rule.
	assert.Equal(t, lines[0], lines[6])
	assert.Equal(t, lines[0], lines[12])
}

func TestFormatUnsolvedShowsCandidates(t *testing.T) {
	p, err := parser.Parse([]byte(`
width: 2
cages:
  - {value: 3, op: "+", cells: [[0, 0], [0, 1]]}
  - {value: 2, op: "*", cells: [[1, 0], [1, 1]]}
`))
	require.NoError(t, err)
	for _, cell := range p.Cells() {
		cell.SetDomain(p.Domain())
	}
	for _, c := range p.Constraints() {
		c.SetReducer(solver.Reducer{})
	}

	out := NewASCII().Format(p)
	assert.Contains(t, out, ".", "unassigned cells render as dots")
	assert.Contains(t, out, "12", "candidate footer lists remaining values")
}
