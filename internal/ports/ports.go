package ports

import (
	"context"
	"time"

	"svw.info/kenken/internal/domain"
)

// Stats captures the search effort of one solve.
type Stats struct {
	Backtracks     int
	RecursiveCalls int
	Duration       time.Duration
}

// Solver runs a full constrained search over a puzzle. Failure to find a
// solution is reported through the boolean, never an error.
type Solver interface {
	Solve(p *domain.Puzzle) (bool, Stats)
}

// Formatter renders a puzzle's current state as text.
type Formatter interface {
	Format(p *domain.Puzzle) string
}

// Storage persists and retrieves solve records as JSON.
type Storage interface {
	Save(ctx context.Context, rec *domain.Record) error
	Load(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
