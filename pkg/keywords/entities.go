package keywords

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/artem13815/skillscan/pkg/nlp"
)

// FilterEntities turns recognised entities into keyword candidates.
// Each candidate must have an allowed label, must not equal a stopword,
// must be longer than one character, and must not be a proper substring
// of a phrase already in matched. Output keeps first-seen order, deduplicated.
func FilterEntities(entities []nlp.Entity, matched []string) []string {
	out := make([]string, 0, len(entities))
	seen := make(map[string]struct{}, len(entities))
	for _, ent := range entities {
		if _, ok := AllowedEntityLabels[ent.Label]; !ok {
			continue
		}
		text := strings.ToLower(ent.Text)
		if _, stop := EntityStopwords[text]; stop {
			continue
		}
		if utf8.RuneCountInString(text) <= 1 {
			continue
		}
		if containedIn(text, matched) {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}
	return out
}

// containedIn reports whether s is a substring of some different string in set.
func containedIn(s string, set []string) bool {
	for _, k := range set {
		if k != s && strings.Contains(k, s) {
			return true
		}
	}
	return false
}

// Merge unions the lists and returns them sorted ascending without duplicates.
func Merge(lists ...[]string) []string {
	set := make(map[string]struct{})
	for _, l := range lists {
		for _, s := range l {
			if s == "" {
				continue
			}
			set[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
