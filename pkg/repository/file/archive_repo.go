// Package file is the zero-dependency archive backend used when no database
// is configured: one JSON file per saved resume under the data directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mkravets/resume-editor/pkg/archive"
)

// ArchiveRepository stores saved resumes as data/<id>.json.
type ArchiveRepository struct {
	dir string
}

func NewArchiveRepository(dir string) (*ArchiveRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare archive dir: %w", err)
	}
	return &ArchiveRepository{dir: dir}, nil
}

func (r *ArchiveRepository) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

func (r *ArchiveRepository) Save(_ context.Context, rec archive.Record) error {
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now().UTC()
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path(rec.ID), data, 0o644)
}

func (r *ArchiveRepository) List(_ context.Context, limit, offset int) ([]archive.Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}
	all := []archive.Summary{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := r.read(filepath.Join(r.dir, e.Name()))
		if err != nil {
			// A foreign or truncated file in the data dir must not break listing.
			continue
		}
		all = append(all, archive.Summary{ID: rec.ID, Name: rec.Name, SavedAt: rec.SavedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SavedAt.After(all[j].SavedAt) })
	if offset >= len(all) {
		return []archive.Summary{}, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *ArchiveRepository) Get(_ context.Context, id string) (archive.Record, error) {
	rec, err := r.read(r.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return archive.Record{}, archive.ErrNotFound
		}
		return archive.Record{}, err
	}
	return rec, nil
}

func (r *ArchiveRepository) read(path string) (archive.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return archive.Record{}, err
	}
	var rec archive.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return archive.Record{}, err
	}
	return rec, nil
}
