package keywords

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artem13815/skillscan/pkg/nlp"
)

// DefaultVocabulary is the curated list of skill and technology phrases.
var DefaultVocabulary = []string{
	// languages
	"python", "java", "javascript", "typescript", "sql", "html", "css", "c#", "c++", "php", "ruby", "go", "swift", "kotlin", "scala",
	// frontend
	"react", "react.js", "angular", "vue", "vue.js", "redux", "jquery", "bootstrap", "tailwind", "svelte",
	// backend
	"node.js", "express", "express.js", "spring", "spring boot", "django", "flask", "fastapi", ".net", "ruby on rails", "laravel",
	// databases
	"mongodb", "postgresql", "mysql", "nosql", "redis", "oracle", "sqlite", "cassandra",
	// cloud and devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "git", "jenkins", "ci/cd", "terraform", "ansible", "heroku", "linux", "windows",
	// architecture and process
	"rest", "restful", "api", "apis", "graphql", "microservices", "agile", "scrum", "oop", "mvc", "serverless", " TDD", "bdd",
	// data and ml
	"machine learning", "deep learning", "data analysis", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "nlp", "natural language processing",
	// tools
	"jira", "selenium", "power bi", "tableau",
	// roles
	"full stack", "frontend", "backend", "devops", "data analyst", "data scientist", "data engineer", "qa", "testing", "software engineer", "developer",
}

// AllowedEntityLabels are the NER categories treated as keyword candidates.
var AllowedEntityLabels = map[string]struct{}{
	"ORG":         {},
	"PRODUCT":     {},
	"GPE":         {},
	"LOC":         {},
	"WORK_OF_ART": {},
	"LANGUAGE":    {},
}

// EntityStopwords are generic corporate suffixes dropped when an entity equals one exactly.
var EntityStopwords = map[string]struct{}{
	"inc":          {},
	"llc":          {},
	"ltd":          {},
	"gmbh":         {},
	"corp":         {},
	"solutions":    {},
	"systems":      {},
	"group":        {},
	"technologies": {},
}

// Vocabulary returns DefaultVocabulary followed by extra, normalised and
// deduplicated with the first occurrence winning.
func Vocabulary(extra ...string) []string {
	out := make([]string, 0, len(DefaultVocabulary)+len(extra))
	seen := make(map[string]struct{}, cap(out))
	for _, list := range [][]string{DefaultVocabulary, extra} {
		for _, v := range list {
			v = nlp.NormalizePhrase(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

type vocabularyFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadVocabularyFile reads extra vocabulary entries from a YAML file of the form
//
//	keywords:
//	  - rust
//	  - elixir
func LoadVocabularyFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary file %s: %w", path, err)
	}
	return f.Keywords, nil
}
