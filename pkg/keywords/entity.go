package keywords

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Source of the extracted text.
const (
	SourceText = "text"
	SourceFile = "file"
)

// Request is one extraction input.
type Request struct {
	Text     string
	Source   string
	Filename string
}

// Result is the outcome of one extraction.
// Keywords is the union of Matched and Entities, sorted and deduplicated.
type Result struct {
	ID       uuid.UUID `json:"id"`
	Keywords []string  `json:"keywords"`
	Matched  []string  `json:"matched"`
	Entities []string  `json:"entities"`
	Cached   bool      `json:"-"`
}

// Extraction is a persisted Result.
type Extraction struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Filename   string    `json:"filename,omitempty"`
	TextLength int       `json:"textLength"`
	Keywords   []string  `json:"keywords"`
	Matched    []string  `json:"matched"`
	Entities   []string  `json:"entities"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Repository persists extraction history.
type Repository interface {
	Create(ctx context.Context, e Extraction) error
	GetByID(ctx context.Context, id uuid.UUID) (Extraction, error)
	List(ctx context.Context, limit, offset int) ([]Extraction, error)
}

// Cache stores results keyed by a digest of the exact input text.
// Implementations log their own failures; a miss is reported as ok=false.
type Cache interface {
	Get(ctx context.Context, key string) (Result, bool)
	Set(ctx context.Context, key string, r Result)
}
