package nlp

// Entity is a labelled span produced by a named-entity recognizer.
type Entity struct {
	Text  string
	Label string // ORG, GPE, PRODUCT, ...
}

// Document is the read-only result of running text through a Pipeline.
// Its lifetime is a single extraction.
type Document struct {
	Tokens   []string
	Entities []Entity
}

// Tokenizer splits text into token texts.
// Vocabulary phrases and documents must go through the same Tokenizer
// so that phrase spans line up.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Pipeline is a pretrained language pipeline: tokenizer plus entity recognizer.
// Implementations must be safe for concurrent read-only use.
type Pipeline interface {
	Tokenizer
	Annotate(text string) (Document, error)
}
