package spec

import (
	"regexp"
	"strings"
)

// Documents open with a frontmatter block between two --- lines holding
// colon-separated key:value pairs. Requirements appear anywhere in the body
// as "- **REQ-001-U-01**: description" bullets. Extraction is line-oriented
// on purpose: header values are free text and need not be valid YAML.
var (
	frontmatterPattern = regexp.MustCompile(`(?s)---\n(.*?)\n---`)
	skillsPattern      = regexp.MustCompile(`related_skills:\n((?:  - .*\n)*)`)
	purposePattern     = regexp.MustCompile(`\*\*Purpose\*\*: (.+)`)
	requirementPattern = regexp.MustCompile(`-\s+\*\*([A-Z0-9-]+)\*\*:\s+(.+)`)
	kindTokenPattern   = regexp.MustCompile(`-([USEON])-`)
)

var frontmatterFieldPatterns = map[string]*regexp.Regexp{
	"spec_id": regexp.MustCompile(`spec_id:\s*(.+)`),
	"feature": regexp.MustCompile(`feature:\s*(.+)`),
	"status":  regexp.MustCompile(`status:\s*(.+)`),
	"version": regexp.MustCompile(`version:\s*(.+)`),
	"author":  regexp.MustCompile(`author:\s*(.+)`),
	"date":    regexp.MustCompile(`date:\s*(.+)`),
}

// ParseDocument parses SPEC.md text into a SpecDocument.
//
// The frontmatter block and its spec_id and feature fields are mandatory;
// their absence is the only fatal condition. Every other field degrades to
// a default, and absent collections parse to empty.
func ParseDocument(content string) (*SpecDocument, error) {
	block := frontmatterPattern.FindStringSubmatch(content)
	if block == nil {
		return nil, &MalformedHeaderError{}
	}
	frontmatter := block[1]

	id := extractField(frontmatter, "spec_id", "")
	feature := extractField(frontmatter, "feature", "")

	var missing []string
	if id == "" {
		missing = append(missing, "spec_id")
	}
	if feature == "" {
		missing = append(missing, "feature")
	}
	if len(missing) > 0 {
		return nil, &MalformedHeaderError{Missing: missing}
	}

	return &SpecDocument{
		ID:           id,
		Feature:      feature,
		Status:       Status(extractField(frontmatter, "status", string(StatusDraft))),
		Version:      extractField(frontmatter, "version", "1.0.0"),
		Author:       extractField(frontmatter, "author", "Unknown"),
		Date:         extractField(frontmatter, "date", ""),
		Capabilities: extractCapabilities(frontmatter),
		Requirements: ExtractRequirements(content),
		Purpose:      extractPurpose(content),
	}, nil
}

func extractField(frontmatter, field, fallback string) string {
	re, ok := frontmatterFieldPatterns[field]
	if !ok {
		return fallback
	}
	if m := re.FindStringSubmatch(frontmatter); m != nil {
		return strings.TrimSpace(m[1])
	}
	return fallback
}

func extractCapabilities(frontmatter string) []string {
	m := skillsPattern.FindStringSubmatch(frontmatter)
	if m == nil {
		return nil
	}
	var tags []string
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		tags = append(tags, strings.TrimSpace(strings.TrimPrefix(line, "-")))
	}
	return tags
}

// ExtractRequirements scans text for bolded-ID requirement bullets and infers
// each requirement's kind from the first -[USEON]- token in its ID. An ID
// without a recognizable token defaults to Ubiquitous.
func ExtractRequirements(content string) []Requirement {
	var reqs []Requirement
	for _, m := range requirementPattern.FindAllStringSubmatch(content, -1) {
		id := m[1]
		kind := KindUbiquitous
		if km := kindTokenPattern.FindStringSubmatch(id); km != nil {
			kind = Kind(km[1])
		}
		reqs = append(reqs, Requirement{
			ID:          id,
			Kind:        kind,
			Description: strings.TrimSpace(m[2]),
		})
	}
	return reqs
}

func extractPurpose(content string) string {
	if m := purposePattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}
