package capability

import (
	"sort"
	"strings"
)

// matchLimit caps the number of tags returned for a single match.
const matchLimit = 10

// Matcher scores free text against a capability catalog. It holds no state
// beyond the catalog and is safe to reuse.
type Matcher struct {
	catalog Catalog
}

// NewMatcher returns a matcher over the given catalog.
func NewMatcher(catalog Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match ranks catalog tags against a feature description and its requirement
// sentences. Scoring counts how many of an entry's keywords occur as
// substrings of the combined lowercased text; entries scoring zero are
// dropped, the rest are ordered by descending score with ties keeping
// catalog order. Core tags are appended when absent, then the list is
// truncated to the first ten tags. Identical inputs always produce the
// identical ordered list.
func (m *Matcher) Match(feature string, requirements []string) []string {
	text := strings.ToLower(feature + " " + strings.Join(requirements, " "))

	type scoredTag struct {
		name  string
		score int
	}

	var matched []scoredTag
	for _, entry := range m.catalog.Entries {
		score := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > 0 {
			matched = append(matched, scoredTag{name: entry.Name, score: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	result := make([]string, 0, len(matched)+len(m.catalog.Core))
	seen := make(map[string]bool)
	for _, tag := range matched {
		if !seen[tag.name] {
			seen[tag.name] = true
			result = append(result, tag.name)
		}
	}
	for _, core := range m.catalog.Core {
		if !seen[core] {
			seen[core] = true
			result = append(result, core)
		}
	}

	if len(result) > matchLimit {
		result = result[:matchLimit]
	}
	return result
}
