package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/skillscan/pkg/nlp"
)

func TestFilterEntitiesAllowList(t *testing.T) {
	ents := []nlp.Entity{
		{Text: "Google", Label: "ORG"},
		{Text: "Berlin", Label: "GPE"},
		{Text: "John Smith", Label: "PERSON"},
		{Text: "Monday", Label: "DATE"},
		{Text: "Photoshop", Label: "PRODUCT"},
	}
	got := FilterEntities(ents, nil)
	assert.Equal(t, []string{"google", "berlin", "photoshop"}, got)
}

func TestFilterEntitiesStopwordsAreExact(t *testing.T) {
	ents := []nlp.Entity{
		{Text: "Inc", Label: "ORG"},
		{Text: "Solutions", Label: "ORG"},
		{Text: "Acme Solutions Inc", Label: "ORG"},
	}
	got := FilterEntities(ents, nil)
	assert.Equal(t, []string{"acme solutions inc"}, got)
}

func TestFilterEntitiesDropsSingleCharacters(t *testing.T) {
	ents := []nlp.Entity{
		{Text: "R", Label: "LANGUAGE"},
		{Text: "Go", Label: "LANGUAGE"},
	}
	assert.Equal(t, []string{"go"}, FilterEntities(ents, nil))
}

func TestFilterEntitiesSubstringExclusion(t *testing.T) {
	matched := []string{"spring boot", "python"}
	ents := []nlp.Entity{
		{Text: "Spring", Label: "ORG"},
		{Text: "Python", Label: "LANGUAGE"},
		{Text: "Spring Boot", Label: "PRODUCT"},
		{Text: "Oracle", Label: "ORG"},
	}
	got := FilterEntities(ents, matched)
	assert.Equal(t, []string{"python", "spring boot", "oracle"}, got)
}

func TestFilterEntitiesDeduplicates(t *testing.T) {
	ents := []nlp.Entity{
		{Text: "London", Label: "GPE"},
		{Text: "LONDON", Label: "LOC"},
	}
	assert.Equal(t, []string{"london"}, FilterEntities(ents, nil))
}

func TestMergeSortsAndDeduplicates(t *testing.T) {
	got := Merge([]string{"react", "aws", "python"}, []string{"python", "acme", ""})
	assert.Equal(t, []string{"acme", "aws", "python", "react"}, got)
	assert.Empty(t, Merge())
}
