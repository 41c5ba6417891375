package validator

import (
	"errors"
	"fmt"

	"svw.info/kenken/internal/domain"
)

var (
	ErrBadWidth   = errors.New("width must be at least 1")
	ErrNoCages    = errors.New("definition has no cages")
	ErrUnknownOp  = errors.New("unknown cage operator")
	ErrBadArity   = errors.New("wrong cage size for operator")
	ErrOutOfRange = errors.New("cell coordinate out of range")
	ErrOverlap    = errors.New("cell appears in more than one cage")
	ErrCoverage   = errors.New("cages do not cover the grid")
)

// Structural checks a parsed definition against the cage partition rules
// before the solver ever sees it. The solver assumes these invariants and
// never re-checks them.
type Structural struct{}

func New() *Structural { return &Structural{} }

func (v *Structural) Validate(def domain.Definition) error {
	if def.Width < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWidth, def.Width)
	}
	if len(def.Cages) == 0 {
		return ErrNoCages
	}

	seen := make(map[[2]int]bool, def.Width*def.Width)
	for i, cage := range def.Cages {
		if !cage.Op.Known() {
			return fmt.Errorf("%w: cage %d has op %q", ErrUnknownOp, i, cage.Op)
		}
		if err := checkArity(cage.Op, len(cage.Cells)); err != nil {
			return fmt.Errorf("%w: cage %d (%s) has %d cells", err, i, cage.Op, len(cage.Cells))
		}
		for _, coord := range cage.Cells {
			r, c := coord[0], coord[1]
			if r < 0 || r >= def.Width || c < 0 || c >= def.Width {
				return fmt.Errorf("%w: (%d,%d) in cage %d", ErrOutOfRange, r, c, i)
			}
			if seen[coord] {
				return fmt.Errorf("%w: (%d,%d)", ErrOverlap, r, c)
			}
			seen[coord] = true
		}
	}

	if len(seen) != def.Width*def.Width {
		return fmt.Errorf("%w: expected %d cells, cages cover %d",
			ErrCoverage, def.Width*def.Width, len(seen))
	}
	return nil
}

func checkArity(op domain.Op, n int) error {
	switch op {
	case domain.OpSub, domain.OpDiv:
		if n != 2 {
			return ErrBadArity
		}
	case domain.OpGiven:
		if n != 1 {
			return ErrBadArity
		}
	default:
		if n < 1 {
			return ErrBadArity
		}
	}
	return nil
}
