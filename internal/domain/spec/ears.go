package spec

import (
	"fmt"
	"strings"
)

// Keyword markers for EARS categorization, checked in this order. A sentence
// matching none of them is Ubiquitous.
var (
	eventMarkers    = []string{"when", "on click", "on tap", "trigger", "event"}
	stateMarkers    = []string{"while", "during", "in state"}
	unwantedMarkers = []string{"shall not", "must not", "cannot", "should not"}
	optionalMarkers = []string{"optional", "if enabled", "where available"}
)

// Categorize classifies a raw requirement sentence into an EARS kind and
// rewrites it into the canonical phrasing for that kind. Sentences already
// carrying the canonical prefix are kept as written.
func Categorize(requirement string) (Kind, string) {
	lower := strings.ToLower(requirement)

	switch {
	case containsAny(lower, eventMarkers):
		if !strings.HasPrefix(requirement, "WHEN") {
			return KindEvent, fmt.Sprintf("WHEN [trigger event], the system shall %s", requirement)
		}
		return KindEvent, requirement

	case containsAny(lower, stateMarkers):
		if !strings.HasPrefix(requirement, "WHILE") {
			return KindState, fmt.Sprintf("WHILE [in specific state], the system shall %s", requirement)
		}
		return KindState, requirement

	case containsAny(lower, unwantedMarkers):
		if !strings.HasPrefix(requirement, "IF") {
			return KindUnwanted, fmt.Sprintf("IF [condition], THEN the system shall NOT %s", requirement)
		}
		return KindUnwanted, requirement

	case containsAny(lower, optionalMarkers):
		if !strings.HasPrefix(requirement, "WHERE") {
			return KindOptional, fmt.Sprintf("WHERE [feature is enabled], the system shall %s", requirement)
		}
		return KindOptional, requirement

	default:
		if !strings.HasPrefix(requirement, "The system shall") {
			return KindUbiquitous, fmt.Sprintf("The system shall %s", requirement)
		}
		return KindUbiquitous, requirement
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// RequirementID builds an ID such as REQ-001-U-01 from the bare spec number,
// the kind letter, and a per-kind sequence number.
func RequirementID(specNumber string, kind Kind, seq int) string {
	return fmt.Sprintf("REQ-%s-%s-%02d", specNumber, kind, seq)
}

// BuildRequirements categorizes raw requirement sentences, groups them by
// kind in EARS order, and assigns sequential IDs starting at 01 within each
// kind.
func BuildRequirements(specNumber string, raw []string) []Requirement {
	grouped := make(map[Kind][]string)
	for _, sentence := range raw {
		kind, formatted := Categorize(sentence)
		grouped[kind] = append(grouped[kind], formatted)
	}

	var reqs []Requirement
	for _, kind := range KindOrder() {
		for i, desc := range grouped[kind] {
			reqs = append(reqs, Requirement{
				ID:          RequirementID(specNumber, kind, i+1),
				Kind:        kind,
				Description: desc,
			})
		}
	}
	return reqs
}
