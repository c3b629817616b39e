package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/skillscan/pkg/keywords"
)

// ExtractionRepository хранит историю извлечений ключевых слов.
type ExtractionRepository struct {
	pool *pgxpool.Pool
}

func NewExtractionRepository(ctx context.Context, pool *pgxpool.Pool) (*ExtractionRepository, error) {
	r := &ExtractionRepository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure extractions schema: %w", err)
	}
	return r, nil
}

func (r *ExtractionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS extractions (
	id UUID PRIMARY KEY,
	source TEXT NOT NULL,
	filename TEXT NOT NULL DEFAULT '',
	text_length INTEGER NOT NULL,
	keywords TEXT[] NOT NULL,
	matched TEXT[] NOT NULL,
	entities TEXT[] NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS extractions_created_at_idx ON extractions (created_at DESC);
`)
	return err
}

func (r *ExtractionRepository) Create(ctx context.Context, e keywords.Extraction) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO extractions (id, source, filename, text_length, keywords, matched, entities, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, e.ID, e.Source, e.Filename, e.TextLength, nonNil(e.Keywords), nonNil(e.Matched), nonNil(e.Entities), e.CreatedAt)
	return err
}

func (r *ExtractionRepository) GetByID(ctx context.Context, id uuid.UUID) (keywords.Extraction, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, source, filename, text_length, keywords, matched, entities, created_at
FROM extractions WHERE id = $1
`, id)
	e, err := scanExtraction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return keywords.Extraction{}, keywords.ErrNotFound
		}
		return keywords.Extraction{}, err
	}
	return e, nil
}

func (r *ExtractionRepository) List(ctx context.Context, limit, offset int) ([]keywords.Extraction, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, source, filename, text_length, keywords, matched, entities, created_at
FROM extractions
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []keywords.Extraction{}
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanExtraction(row pgx.Row) (keywords.Extraction, error) {
	var e keywords.Extraction
	var created time.Time
	if err := row.Scan(&e.ID, &e.Source, &e.Filename, &e.TextLength, &e.Keywords, &e.Matched, &e.Entities, &created); err != nil {
		return keywords.Extraction{}, err
	}
	e.CreatedAt = created.UTC()
	return e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ keywords.Repository = (*ExtractionRepository)(nil)
