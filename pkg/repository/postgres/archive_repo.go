package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/resume-editor/pkg/archive"
)

// ArchiveRepository persists saved resumes in PostgreSQL.
type ArchiveRepository struct {
	pool *pgxpool.Pool
}

func NewArchiveRepository(pool *pgxpool.Pool) (*ArchiveRepository, error) {
	r := &ArchiveRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ArchiveRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS saved_resumes (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL,
	document JSONB NOT NULL
);
`)
	return err
}

func (r *ArchiveRepository) Save(ctx context.Context, rec archive.Record) error {
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO saved_resumes (id, name, saved_at, document)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, saved_at = EXCLUDED.saved_at, document = EXCLUDED.document
`, rec.ID, rec.Name, rec.SavedAt, rec.Document)
	return err
}

func (r *ArchiveRepository) List(ctx context.Context, limit, offset int) ([]archive.Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, name, saved_at FROM saved_resumes
ORDER BY saved_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []archive.Summary{}
	for rows.Next() {
		var s archive.Summary
		var saved time.Time
		if err := rows.Scan(&s.ID, &s.Name, &saved); err != nil {
			return nil, err
		}
		s.SavedAt = saved.UTC()
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *ArchiveRepository) Get(ctx context.Context, id string) (archive.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, saved_at, document FROM saved_resumes WHERE id = $1
`, id)
	var rec archive.Record
	var saved time.Time
	if err := row.Scan(&rec.ID, &rec.Name, &saved, &rec.Document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return archive.Record{}, archive.ErrNotFound
		}
		return archive.Record{}, err
	}
	rec.SavedAt = saved.UTC()
	return rec, nil
}
