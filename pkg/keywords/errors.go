package keywords

import "errors"

// Errors returned by the extraction use case. Handlers map them to HTTP statuses.
var (
	ErrNotReady        = errors.New("nlp service not ready")
	ErrEmptyText       = errors.New("text is empty")
	ErrProcessing      = errors.New("keyword extraction failed")
	ErrEmptyVocabulary = errors.New("vocabulary has no usable entries")
	ErrNotFound        = errors.New("extraction not found")
	ErrHistoryDisabled = errors.New("extraction history is disabled")
)
