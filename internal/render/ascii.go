// Package render draws puzzles as text grids with cage boundaries.
package render

import (
	"strconv"
	"strings"

	"svw.info/kenken/internal/domain"
)

// ASCII pretty-prints a puzzle. Cage boundaries are drawn with '#', '-' and
// '|'; each cell shows its cage label top-left (on the cage's first cell),
// its value centered, and its remaining candidates bottom-right.
//
// Example output for a solved 2x2:
//
//	#--------------#--------------#
//	|3+                           |
//	|                             |
//	|      2              1       |
//	|                             |
//	|                             |
//	#--------------#--------------#
//	|2*                           |
//	|                             |
//	|      1              2       |
//	|                             |
//	|                             |
//	#--------------#--------------#
type ASCII struct {
	BoxWidth  int
	BoxHeight int
}

// NewASCII returns a formatter with the default box geometry.
func NewASCII() *ASCII { return &ASCII{BoxWidth: 14, BoxHeight: 5} }

func (f *ASCII) Format(p *domain.Puzzle) string {
	l := &layout{
		puzzle: p,
		width:  f.BoxWidth,
		height: f.BoxHeight,
		cages:  make(map[*domain.Cell]domain.ValueConstraint),
	}
	for _, c := range p.Constraints() {
		if vc, ok := c.(domain.ValueConstraint); ok {
			for _, cell := range vc.Cells() {
				l.cages[cell] = vc
			}
		}
	}

	rows := make([]string, p.Width())
	for r := range rows {
		rows[r] = l.formatRow(r)
	}
	return strings.Join(rows, "\n")
}

type layout struct {
	puzzle *domain.Puzzle
	width  int
	height int
	cages  map[*domain.Cell]domain.ValueConstraint
}

// boundary reports whether cell has a cage edge toward (row, col): true when
// no cell of the same cage sits there.
func (l *layout) boundary(cell *domain.Cell, row, col int) bool {
	for _, other := range l.cages[cell].Cells() {
		if other.Row() == row && other.Col() == col {
			return false
		}
	}
	return true
}

func (l *layout) rightBoundary(cell *domain.Cell) bool {
	return l.boundary(cell, cell.Row(), cell.Col()+1)
}

func (l *layout) bottomBoundary(cell *domain.Cell) bool {
	return l.boundary(cell, cell.Row()+1, cell.Col())
}

// header is the cage label, drawn only in the first (row-major) cell of the
// cage.
func (l *layout) header(cell *domain.Cell) string {
	cage := l.cages[cell]
	if cage == nil || first(cage.Cells()) != cell {
		return ""
	}
	return domain.Label(cage)
}

// footer lists the cell's current candidates as a digit run.
func (l *layout) footer(cell *domain.Cell) string {
	var b strings.Builder
	for _, v := range cell.Candidates().Values() {
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (l *layout) formatCell(cell *domain.Cell, line int) string {
	var b strings.Builder
	if cell.Col() == 0 {
		b.WriteByte('|')
	}

	switch {
	case line == 0:
		b.WriteString(padRight(l.header(cell), l.width))
	case line == l.height/2:
		b.WriteString(padCenter(value(cell), l.width))
	case line == l.height-1:
		b.WriteString(padLeft(l.footer(cell), l.width))
	default:
		b.WriteString(strings.Repeat(" ", l.width))
	}

	if l.rightBoundary(cell) {
		b.WriteByte('|')
	} else {
		b.WriteByte(' ')
	}
	return b.String()
}

func (l *layout) formatRow(row int) string {
	var b strings.Builder
	if row == 0 {
		b.WriteByte('#')
		for c := 0; c < l.puzzle.Width(); c++ {
			b.WriteString(strings.Repeat("-", l.width))
			b.WriteByte('#')
		}
		b.WriteByte('\n')
	}

	for line := 0; line < l.height; line++ {
		for col := 0; col < l.puzzle.Width(); col++ {
			b.WriteString(l.formatCell(l.puzzle.CellAt(row, col), line))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('#')
	for col := 0; col < l.puzzle.Width(); col++ {
		if l.bottomBoundary(l.puzzle.CellAt(row, col)) {
			b.WriteString(strings.Repeat("-", l.width))
		} else {
			b.WriteString(strings.Repeat(" ", l.width))
		}
		b.WriteByte('#')
	}
	return b.String()
}

// first returns the row-major smallest cell of a cage.
func first(cells []*domain.Cell) *domain.Cell {
	min := cells[0]
	for _, c := range cells[1:] {
		if c.Row() < min.Row() || (c.Row() == min.Row() && c.Col() < min.Col()) {
			min = c
		}
	}
	return min
}

func value(cell *domain.Cell) string {
	if !cell.Assigned() {
		return "."
	}
	return strconv.Itoa(cell.Value())
}

func pad(left int, text string, right int) string {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func padRight(text string, width int) string { return pad(0, text, width-len(text)) }

func padLeft(text string, width int) string { return pad(width-len(text), text, 0) }

func padCenter(text string, width int) string {
	left := (width - len(text)) / 2
	return pad(left, text, width-(left+len(text)))
}
