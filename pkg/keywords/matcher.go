package keywords

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/artem13815/skillscan/pkg/nlp"
)

// boundary separates tokens in the encoded strings fed to the automaton,
// so a pattern can only match whole token sequences.
const boundary = "\x00"

// Matcher finds vocabulary phrases in tokenized text.
// Matching is exact on lowercased token sequences; overlapping phrases
// ("spring" and "spring boot") are all reported.
type Matcher struct {
	ac      *ahocorasick.Matcher
	phrases []string
}

// NewMatcher tokenizes every vocabulary entry with tok and builds the automaton.
func NewMatcher(tok nlp.Tokenizer, vocabulary []string) (*Matcher, error) {
	if tok == nil {
		return nil, fmt.Errorf("%w: tokenizer is not loaded", ErrNotReady)
	}
	var patterns, phrases []string
	seen := make(map[string]struct{}, len(vocabulary))
	for _, entry := range vocabulary {
		phrase := nlp.NormalizePhrase(entry)
		if phrase == "" {
			continue
		}
		toks, err := tok.Tokenize(phrase)
		if err != nil {
			return nil, fmt.Errorf("tokenize vocabulary entry %q: %w", entry, err)
		}
		lowered := nlp.LowerTokens(toks)
		if len(lowered) == 0 {
			continue
		}
		pattern := encodeTokens(lowered)
		if _, ok := seen[pattern]; ok {
			continue
		}
		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
		phrases = append(phrases, phrase)
	}
	if len(patterns) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return &Matcher{
		ac:      ahocorasick.NewStringMatcher(patterns),
		phrases: phrases,
	}, nil
}

// Size reports the number of distinct phrases the matcher knows.
func (m *Matcher) Size() int {
	if m == nil {
		return 0
	}
	return len(m.phrases)
}

// Phrases returns the normalised vocabulary in build order.
func (m *Matcher) Phrases() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.phrases))
	copy(out, m.phrases)
	return out
}

// Match returns the vocabulary phrases present in tokens, in vocabulary order.
// Safe for concurrent use.
func (m *Matcher) Match(tokens []string) ([]string, error) {
	if m == nil || m.ac == nil {
		return nil, ErrNotReady
	}
	lowered := nlp.LowerTokens(tokens)
	if len(lowered) == 0 {
		return []string{}, nil
	}
	hits := m.ac.MatchThreadSafe([]byte(encodeTokens(lowered)))
	found := make([]bool, len(m.phrases))
	for _, idx := range hits {
		if idx >= 0 && idx < len(found) {
			found[idx] = true
		}
	}
	out := make([]string, 0, len(hits))
	for i, ok := range found {
		if ok {
			out = append(out, m.phrases[i])
		}
	}
	return out, nil
}

func encodeTokens(tokens []string) string {
	var b strings.Builder
	b.WriteString(boundary)
	for _, t := range tokens {
		b.WriteString(strings.ReplaceAll(t, boundary, ""))
		b.WriteString(boundary)
	}
	return b.String()
}
