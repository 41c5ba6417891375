package usecase

import (
	"context"
	"errors"

	"svw.info/kenken/internal/domain"
	"svw.info/kenken/internal/ports"
)

// Service wires the solver and storage behind nil-guarded methods for the
// CLI and HTTP adapters.
type Service struct {
	Solver  ports.Solver
	Storage ports.Storage
}

func NewService(s ports.Solver, st ports.Storage) *Service {
	return &Service{Solver: s, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(p *domain.Puzzle) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	ok, st := u.Solver.Solve(p)
	return ok, st, nil
}

func (u *Service) Save(ctx context.Context, rec *domain.Record) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, rec)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Record, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
