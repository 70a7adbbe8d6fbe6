package spec

import (
	"fmt"
	"strings"
)

// Kind classifies a requirement according to the EARS taxonomy.
type Kind string

const (
	KindUbiquitous Kind = "U"
	KindState      Kind = "S"
	KindEvent      Kind = "E"
	KindOptional   Kind = "O"
	KindUnwanted   Kind = "N"
)

// KindOrder returns the kinds in the order requirement sections appear
// in a rendered document.
func KindOrder() []Kind {
	return []Kind{KindUbiquitous, KindState, KindEvent, KindOptional, KindUnwanted}
}

// IsValid returns true if the kind is one of the five EARS categories.
func (k Kind) IsValid() bool {
	switch k {
	case KindUbiquitous, KindState, KindEvent, KindOptional, KindUnwanted:
		return true
	default:
		return false
	}
}

// SectionTitle returns the heading used for this kind's requirement group.
func (k Kind) SectionTitle() string {
	switch k {
	case KindUbiquitous:
		return "Ubiquitous Requirements (Core Functionality)"
	case KindState:
		return "State-Driven Requirements"
	case KindEvent:
		return "Event-Driven Requirements"
	case KindOptional:
		return "Optional Requirements"
	case KindUnwanted:
		return "Unwanted Behaviors"
	default:
		return string(k)
	}
}

// FormatNote returns the phrasing reminder printed under this kind's heading.
func (k Kind) FormatNote() string {
	switch k {
	case KindUbiquitous:
		return `*Format: "The system shall [requirement]"*`
	case KindState:
		return `*Format: "WHILE [state], the system shall [requirement]"*`
	case KindEvent:
		return `*Format: "WHEN [trigger event], the system shall [requirement]"*`
	case KindOptional:
		return `*Format: "WHERE [feature is enabled], the system shall [requirement]"*`
	case KindUnwanted:
		return `*Format: "IF [condition], THEN the system shall NOT [unwanted behavior]"*`
	default:
		return ""
	}
}

// Requirement is a single EARS requirement carried by a document.
type Requirement struct {
	ID          string `json:"id" yaml:"id"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Description string `json:"description" yaml:"description"`
}

// SpecDocument is the typed form of a SPEC.md file.
type SpecDocument struct {
	ID           string        `json:"spec_id" yaml:"spec_id"`
	Feature      string        `json:"feature" yaml:"feature"`
	Status       Status        `json:"status" yaml:"status"`
	Version      string        `json:"version" yaml:"version"`
	Author       string        `json:"author" yaml:"author"`
	Date         string        `json:"date" yaml:"date"`
	Capabilities []string      `json:"related_skills" yaml:"related_skills"`
	Requirements []Requirement `json:"requirements" yaml:"requirements"`
	Purpose      string        `json:"purpose" yaml:"purpose"`
}

// RequirementIDs returns the requirement IDs in document order.
func (d *SpecDocument) RequirementIDs() []string {
	ids := make([]string, 0, len(d.Requirements))
	for _, r := range d.Requirements {
		ids = append(ids, r.ID)
	}
	return ids
}

// Slug returns the directory name for this document's feature.
func (d *SpecDocument) Slug() string {
	return strings.ReplaceAll(strings.ToLower(d.Feature), " ", "-")
}

// Validate checks the document for structural integrity.
func (d *SpecDocument) Validate() []error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, fmt.Errorf("spec ID is required"))
	}
	if d.Feature == "" {
		errs = append(errs, fmt.Errorf("feature name is required"))
	}

	seenIDs := make(map[string]bool)
	for i, r := range d.Requirements {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("requirement at index %d missing ID", i))
			continue
		}
		if seenIDs[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate requirement ID: %s", r.ID))
		}
		seenIDs[r.ID] = true
		if !r.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("requirement '%s' has invalid kind: %s", r.ID, r.Kind))
		}
	}

	seenTags := make(map[string]bool)
	for _, tag := range d.Capabilities {
		if seenTags[tag] {
			errs = append(errs, fmt.Errorf("duplicate capability tag: %s", tag))
		}
		seenTags[tag] = true
	}
	return errs
}
