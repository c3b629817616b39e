package keywords

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/artem13815/skillscan/pkg/nlp"
)

// wsTokenizer splits on whitespace and peels trailing sentence punctuation
// into its own token.
type wsTokenizer struct{}

func (wsTokenizer) Tokenize(text string) ([]string, error) {
	var out []string
	for _, f := range strings.Fields(text) {
		word := strings.TrimRight(f, ".,;:!?")
		if word != "" {
			out = append(out, word)
		}
		if len(word) < len(f) {
			out = append(out, f[len(word):])
		}
	}
	return out, nil
}

type fakePipeline struct {
	wsTokenizer
	entities []nlp.Entity
	err      error
	panicMsg string
	calls    atomic.Int32
}

func (p *fakePipeline) Annotate(text string) (nlp.Document, error) {
	p.calls.Add(1)
	if p.panicMsg != "" {
		panic(p.panicMsg)
	}
	if p.err != nil {
		return nlp.Document{}, p.err
	}
	toks, _ := p.Tokenize(text)
	return nlp.Document{Tokens: toks, Entities: p.entities}, nil
}

type failingTokenizer struct{}

func (failingTokenizer) Tokenize(string) ([]string, error) {
	return nil, errors.New("tokenizer exploded")
}

type memCache struct {
	mu    sync.Mutex
	items map[string]Result
}

func newMemCache() *memCache { return &memCache{items: map[string]Result{}} }

func (c *memCache) Get(_ context.Context, key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.items[key]
	return r, ok
}

func (c *memCache) Set(_ context.Context, key string, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = r
}

type memRepo struct {
	mu      sync.Mutex
	items   []Extraction
	failErr error
}

func (r *memRepo) Create(_ context.Context, e Extraction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.items = append(r.items, e)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (Extraction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.ID == id {
			return e, nil
		}
	}
	return Extraction{}, ErrNotFound
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]Extraction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.items) {
		end = len(r.items)
	}
	return append([]Extraction{}, r.items[offset:end]...), nil
}
