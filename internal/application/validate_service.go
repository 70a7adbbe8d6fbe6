package application

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/specsmith/specsync/internal/domain"
)

// requiredSections must all be present in a well-formed document.
var requiredSections = []string{
	"## 1. Overview",
	"## 2. Requirements (EARS Format)",
	"## 3. User Stories",
	"## 4. Architecture (Clean Architecture)",
	"## 5. Related Skills",
	"## 6. Implementation Checklist",
	"## 7. Traceability Matrix",
}

var requiredFrontmatterFields = []string{"spec_id", "feature", "status", "version", "related_skills"}

var (
	validateFrontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)
	validateRequirementPattern = regexp.MustCompile(`-\s+\*\*([A-Z0-9-]+)\*\*:\s+(.+)`)
	standardRequirementID      = regexp.MustCompile(`REQ-\d+-[USEON]-\d+`)
	validateSpecIDPattern      = regexp.MustCompile(`spec_id:\s*SPEC-\d+`)
)

// frontmatterSchemaJSON checks field presence and types after the
// frontmatter has been converted from YAML to JSON.
const frontmatterSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["spec_id", "feature", "status", "version", "related_skills"],
  "properties": {
    "spec_id": {"type": "string"},
    "feature": {"type": "string"},
    "status": {"type": "string"},
    "version": {"type": "string"},
    "author": {"type": "string"},
    "related_skills": {"type": "array", "items": {"type": "string"}}
  }
}`

var frontmatterSchemaLoader = gojsonschema.NewStringLoader(frontmatterSchemaJSON)

// ValidationResult collects the findings for one document. Errors fail
// validation; warnings alone do not.
type ValidationResult struct {
	Path     string   `json:"path"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Valid reports whether the document passed (warnings allowed).
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateService checks spec documents for structural correctness.
type ValidateService struct {
	repo domain.WorkspaceRepository
}

func NewValidateService(repo domain.WorkspaceRepository) *ValidateService {
	return &ValidateService{repo: repo}
}

// ValidateFile validates the document at the given workspace-relative path.
func (s *ValidateService) ValidateFile(relPath string) (*ValidationResult, error) {
	content, err := s.repo.ReadDocument(relPath)
	if err != nil {
		return nil, err
	}
	return s.validateContent(relPath, content), nil
}

// ValidateAll validates every spec document in the workspace.
func (s *ValidateService) ValidateAll() ([]*ValidationResult, error) {
	paths, err := s.repo.ListSpecFiles()
	if err != nil {
		return nil, err
	}

	results := make([]*ValidationResult, 0, len(paths))
	for _, p := range paths {
		result, err := s.ValidateFile(p)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ValidateService) validateContent(relPath, content string) *ValidationResult {
	result := &ValidationResult{Path: relPath}

	s.validateFrontmatter(content, result)
	s.validateSections(content, result)
	s.validateRequirements(content, result)

	if !validateSpecIDPattern.MatchString(content) {
		result.Errors = append(result.Errors, "invalid or missing spec_id (expected SPEC-<number>)")
	}

	return result
}

func (s *ValidateService) validateFrontmatter(content string, result *ValidationResult) {
	m := validateFrontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		result.Errors = append(result.Errors, "missing frontmatter block")
		return
	}
	frontmatter := m[1]

	for _, field := range requiredFrontmatterFields {
		if !strings.Contains(frontmatter, field+":") {
			result.Errors = append(result.Errors, fmt.Sprintf("missing required frontmatter field: %s", field))
		}
	}

	// Schema validation needs the frontmatter as JSON. YAML that does not
	// unmarshal cleanly is reported once, not per field.
	var parsed map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatter), &parsed); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("frontmatter is not valid YAML, schema check skipped: %v", err))
		return
	}

	data, err := json.Marshal(parsed)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("frontmatter not convertible to JSON, schema check skipped: %v", err))
		return
	}

	schemaResult, err := gojsonschema.Validate(frontmatterSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema validation failed to run: %v", err))
		return
	}
	for _, issue := range schemaResult.Errors() {
		result.Errors = append(result.Errors, fmt.Sprintf("frontmatter schema: %s", issue.String()))
	}
}

func (s *ValidateService) validateSections(content string, result *ValidationResult) {
	for _, section := range requiredSections {
		if !strings.Contains(content, section) {
			result.Errors = append(result.Errors, fmt.Sprintf("missing required section: %s", section))
		}
	}
}

func (s *ValidateService) validateRequirements(content string, result *ValidationResult) {
	matches := validateRequirementPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		result.Warnings = append(result.Warnings, "no requirements found")
		return
	}

	for _, m := range matches {
		id := m[1]
		if !strings.HasPrefix(id, "REQ-") {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid requirement ID format: %s", id))
			continue
		}
		if !standardRequirementID.MatchString(id) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("non-standard requirement ID format: %s", id))
		}
	}
}
