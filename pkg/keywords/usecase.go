package keywords

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/artem13815/skillscan/pkg/metrics"
	"github.com/artem13815/skillscan/pkg/nlp"
)

// UseCase extracts skill keywords from free text and serves extraction history.
type UseCase interface {
	Extract(ctx context.Context, req Request) (Result, error)
	Ready() error
	Get(ctx context.Context, id uuid.UUID) (Extraction, error)
	List(ctx context.Context, limit, offset int) ([]Extraction, error)
}

// Option configures optional collaborators of the service.
type Option func(*service)

// WithCache enables the result cache.
func WithCache(c Cache) Option { return func(s *service) { s.cache = c } }

// WithRepository enables extraction history.
func WithRepository(r Repository) Option { return func(s *service) { s.repo = r } }

// WithMetrics enables extraction metrics.
func WithMetrics(m *metrics.Metrics) Option { return func(s *service) { s.metrics = m } }

// WithLogger overrides the component logger.
func WithLogger(l *slog.Logger) Option { return func(s *service) { s.log = l } }

type service struct {
	pipeline nlp.Pipeline
	matcher  *Matcher
	cache    Cache
	repo     Repository
	metrics  *metrics.Metrics
	log      *slog.Logger
	group    singleflight.Group
}

// NewService wires the extraction use case. pipeline and matcher may be nil
// when they failed to load; the service then answers every extraction with ErrNotReady.
func NewService(pipeline nlp.Pipeline, matcher *Matcher, opts ...Option) UseCase {
	s := &service{
		pipeline: pipeline,
		matcher:  matcher,
		log:      slog.Default().With("component", "keywords"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) Ready() error {
	if s.pipeline == nil {
		return fmt.Errorf("%w: language pipeline is not loaded", ErrNotReady)
	}
	if s.matcher == nil {
		return fmt.Errorf("%w: phrase matcher is not initialized", ErrNotReady)
	}
	return nil
}

func (s *service) Extract(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	if err := s.Ready(); err != nil {
		s.log.Error("nlp pipeline or matcher not loaded, cannot process request")
		s.metrics.ObserveExtraction(metrics.OutcomeNotReady, 0, 0)
		return Result{}, err
	}
	if strings.TrimSpace(req.Text) == "" {
		s.metrics.ObserveExtraction(metrics.OutcomeBadRequest, 0, 0)
		return Result{}, ErrEmptyText
	}
	if req.Source == "" {
		req.Source = SourceText
	}
	s.log.Info("extracting keywords", "source", req.Source, "length", len(req.Text))

	key := CacheKey(req.Text)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.metrics.ObserveCache(true)
			cached.Cached = true
			cached.ID = s.record(ctx, req, cached)
			s.metrics.ObserveExtraction(metrics.OutcomeOK, time.Since(start), len(cached.Keywords))
			return cached, nil
		}
		s.metrics.ObserveCache(false)
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.process(req.Text)
	})
	if err != nil {
		s.metrics.ObserveExtraction(metrics.OutcomeError, time.Since(start), 0)
		return Result{}, err
	}
	res := clone(v.(Result))
	if s.cache != nil {
		s.cache.Set(ctx, key, res)
	}
	res.ID = s.record(ctx, req, res)
	s.metrics.ObserveExtraction(metrics.OutcomeOK, time.Since(start), len(res.Keywords))
	return res, nil
}

// process runs the pipeline once: annotate, match, filter entities, merge.
// A panic inside the NLP library is converted to ErrProcessing.
func (s *service) process(text string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("nlp pipeline panicked", "panic", r)
			res, err = Result{}, fmt.Errorf("%w: panic: %v", ErrProcessing, r)
		}
	}()

	doc, err := s.pipeline.Annotate(text)
	if err != nil {
		s.log.Error("error during nlp processing", "error", err)
		return Result{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	matched, err := s.matcher.Match(doc.Tokens)
	if err != nil {
		s.log.Error("error during phrase matching", "error", err)
		return Result{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	s.log.Info("matcher found", "keywords", matched)

	entities := FilterEntities(doc.Entities, matched)
	s.log.Info("ner found (after filter)", "entities", entities)

	all := Merge(matched, entities)
	s.log.Info("combined and final keywords", "keywords", all)
	return Result{Keywords: all, Matched: matched, Entities: entities}, nil
}

// record writes the result to history and returns its id, or uuid.Nil when
// history is disabled or the write failed. Failures never fail the extraction.
func (s *service) record(ctx context.Context, req Request, res Result) uuid.UUID {
	if s.repo == nil {
		return uuid.Nil
	}
	e := Extraction{
		ID:         uuid.New(),
		Source:     req.Source,
		Filename:   req.Filename,
		TextLength: len(req.Text),
		Keywords:   res.Keywords,
		Matched:    res.Matched,
		Entities:   res.Entities,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.log.Warn("failed to store extraction", "error", err)
		s.metrics.HistoryWriteFailed()
		return uuid.Nil
	}
	return e.ID
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Extraction, error) {
	if s.repo == nil {
		return Extraction{}, ErrHistoryDisabled
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Extraction{}, ErrNotFound
		}
		return Extraction{}, fmt.Errorf("get extraction %s: %w", id, err)
	}
	return e, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Extraction, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	if items == nil {
		items = []Extraction{}
	}
	return items, nil
}

// CacheKey is the digest of the exact input text. Case is kept because
// entity recognition is case sensitive.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:16])
}

func clone(r Result) Result {
	return Result{
		Keywords: append([]string{}, r.Keywords...),
		Matched:  append([]string{}, r.Matched...),
		Entities: append([]string{}, r.Entities...),
	}
}
