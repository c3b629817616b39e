package nlp

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizePhrase приводит фразу словаря к каноническому виду:
// нижний регистр, схлопнутые пробелы, без пробелов по краям.
// Пунктуация сохраняется, чтобы "c#", "node.js" и "ci/cd" остались различимыми.
func NormalizePhrase(s string) string {
	s = strings.ToLower(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// LowerTokens возвращает копию токенов в нижнем регистре, пропуская пустые.
func LowerTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
