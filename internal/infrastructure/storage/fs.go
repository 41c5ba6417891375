package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/kenken/internal/domain"
)

// FS stores solve records as JSON files bucketed by grid size, e.g.
// data/4x4/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func widthDir(w int) string { return fmt.Sprintf("%dx%d", w, w) }

func (s *FS) pathFor(id string, width int) string {
	return filepath.Join(s.dir, widthDir(width), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, rec *domain.Record) error {
	if rec == nil || rec.ID == "" {
		return errors.New("invalid record: missing ID")
	}
	if rec.Width < 1 {
		return errors.New("invalid record: missing width")
	}
	target := s.pathFor(rec.ID, rec.Width)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Record, error) {
	id = strings.TrimSpace(id)
	// Scan size buckets, then the flat legacy layout.
	candidates := []string{filepath.Join(s.dir, id+".json")}
	if ents, err := os.ReadDir(s.dir); err == nil {
		for _, e := range ents {
			if e.IsDir() {
				candidates = append(candidates, filepath.Join(s.dir, e.Name(), id+".json"))
			}
		}
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Record
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.RecordMeta, error) {
	var out []domain.RecordMeta

	dirs := []string{s.dir}
	if ents, err := os.ReadDir(s.dir); err == nil {
		for _, e := range ents {
			if e.IsDir() {
				dirs = append(dirs, filepath.Join(s.dir, e.Name()))
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	for _, dir := range dirs {
		ents, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var rec domain.Record
			if err := json.Unmarshal(data, &rec); err != nil || rec.ID == "" {
				continue
			}
			out = append(out, domain.RecordMeta{
				ID:        rec.ID,
				Name:      rec.Name,
				Width:     rec.Width,
				Solved:    rec.Solved,
				CreatedAt: rec.CreatedAt,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
