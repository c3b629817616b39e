package prose

import (
	"sync"
	"testing"

	"github.com/jdkato/prose/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillscan/pkg/nlp"
)

func TestTokenizeKeepsWords(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	toks, err := p.Tokenize("Looking for a Python developer with AWS and React experience.")
	require.NoError(t, err)
	assert.Contains(t, toks, "Python")
	assert.Contains(t, toks, "AWS")
	assert.Contains(t, toks, "React")
	assert.Contains(t, toks, "developer")
}

func TestAnnotateReturnsTokens(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	doc, err := p.Annotate("We need a Java engineer.")
	require.NoError(t, err)
	assert.Contains(t, doc.Tokens, "Java")
	assert.Contains(t, doc.Tokens, "engineer")
	for _, e := range doc.Entities {
		assert.NotEmpty(t, e.Label)
	}
}

func TestAnnotateReusesLoadedModel(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	require.NotNil(t, p.model)
	loaded := p.model

	const text = "Looking for a Python developer with AWS and React experience."
	doc, err := p.Annotate(text)
	require.NoError(t, err)
	assert.Same(t, loaded, p.model)

	fresh, err := prose.NewDocument(text, prose.WithSegmentation(false))
	require.NoError(t, err)
	want := make([]nlp.Entity, 0, len(fresh.Entities()))
	for _, e := range fresh.Entities() {
		want = append(want, nlp.Entity{Text: e.Text, Label: e.Label})
	}
	assert.Equal(t, want, doc.Entities)
}

func TestAnnotateConcurrent(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	const text = "We need a Java engineer at Acme Solutions Inc."
	want, err := p.Annotate(text)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Annotate(text)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
