// Package prose adapts github.com/jdkato/prose/v2 to the nlp.Pipeline port.
package prose

import (
	"errors"
	"fmt"

	"github.com/jdkato/prose/v2"

	"github.com/artem13815/skillscan/pkg/nlp"
)

// Pipeline runs prose's tokenizer and entity extractor.
// The tagger and entity model are decoded once in New and only read afterwards,
// so one Pipeline is shared by all requests.
type Pipeline struct {
	model *prose.Model
}

// New decodes the embedded model once from a seed document.
func New() (*Pipeline, error) {
	seed, err := prose.NewDocument("Probe sentence for Acme in London.", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose model load: %w", err)
	}
	if seed.Model == nil {
		return nil, errors.New("prose model load: no model")
	}
	return &Pipeline{model: seed.Model}, nil
}

// Tokenize returns token texts without tagging or entity extraction.
func (p *Pipeline) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(p.model),
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	return tokenTexts(doc), nil
}

// Annotate tokenizes text and runs named-entity extraction in one pass.
func (p *Pipeline) Annotate(text string) (nlp.Document, error) {
	doc, err := prose.NewDocument(text, prose.UsingModel(p.model), prose.WithSegmentation(false))
	if err != nil {
		return nlp.Document{}, err
	}
	ents := doc.Entities()
	out := nlp.Document{
		Tokens:   tokenTexts(doc),
		Entities: make([]nlp.Entity, 0, len(ents)),
	}
	for _, e := range ents {
		out.Entities = append(out.Entities, nlp.Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}

func tokenTexts(doc *prose.Document) []string {
	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Text)
	}
	return out
}

var _ nlp.Pipeline = (*Pipeline)(nil)
