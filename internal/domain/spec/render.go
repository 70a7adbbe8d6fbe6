package spec

import (
	"fmt"
	"strings"
)

const overviewTemplate = `
**Scope**:
- In Scope: [To be defined]
- Out of Scope: [To be defined]

**Dependencies**:
- External: [To be defined]
- Internal: [To be defined]

---

## 2. Requirements (EARS Format)

`

const storiesAndArchitectureTemplate = `---

## 3. User Stories

### Story 1: [User Story Title]
**As a** [user type]
**I want** [goal/desire]
**So that** [benefit/value]

**Acceptance Criteria**:
- [ ] Given [precondition], when [action], then [expected result]

**Related Requirements**: [REQ IDs]

---

## 4. Architecture (Clean Architecture)

### 4.1 Domain Layer

**Models**:
` + "```kotlin" + `
data class [ModelName](
    val id: String,
    // Add properties based on requirements
)
` + "```" + `

**Use Cases**:
- ` + "`Get[Entity]UseCase`" + `: [Description]
- ` + "`Create[Entity]UseCase`" + `: [Description]

**Repository Interfaces**:
` + "```kotlin" + `
interface [Entity]Repository {
    suspend fun get[Entity](id: String): Result<[Entity]>
}
` + "```" + `

### 4.2 Data Layer

**API Endpoints**:
- ` + "`GET /api/[endpoint]`" + `: [Description]
- ` + "`POST /api/[endpoint]`" + `: [Description]

**Database Schema**:
` + "```kotlin" + `
@Entity(tableName = "[table_name]")
data class [Entity]Entity(
    @PrimaryKey val id: String,
    // Fields
)
` + "```" + `

### 4.3 Presentation Layer

**Screens**:
- ` + "`[Feature]Screen.kt`" + `: [Description]

**ViewModels**:
` + "```kotlin" + `
@HiltViewModel
class [Feature]ViewModel @Inject constructor() : ViewModel() {
    // Implementation
}
` + "```" + `

---

## 5. Related Skills

This feature uses the following Android skills:

`

const checklistTemplate = `
---

## 6. Implementation Checklist

### Domain Layer
- [ ] Define domain models
- [ ] Create use cases
- [ ] Define repository interfaces

### Data Layer
- [ ] Implement API service
- [ ] Create database entities
- [ ] Implement repository

### Presentation Layer
- [ ] Create ViewModel
- [ ] Define State, Actions, Events
- [ ] Implement UI screens

### Testing
- [ ] Write unit tests (85%+ coverage)
- [ ] Write UI tests
- [ ] Write integration tests

### Documentation
- [ ] Update README
- [ ] Add code comments with SPEC IDs
- [ ] Generate documentation

---

## 7. Traceability Matrix

| Requirement | Code File | Test File | Status |
|-------------|-----------|-----------|--------|
`

const notesTemplate = `
**Legend**: ⏳ Pending | 🟢 Implemented | ✅ Tested | ❌ Failed

---

## 8. Notes & Considerations

### Next Steps
1. Review and refine requirements
2. Define detailed user stories
3. Design data models
4. Begin implementation

### Questions to Resolve
- [Question 1]
- [Question 2]

---

`

// RenderDocument produces the full SPEC.md text for a document. The
// descriptions map supplies the human description for each capability tag
// in the Related Skills section; unknown tags render with an empty
// description. Parsing the rendered text restores the document's ID,
// feature, and requirement list.
func RenderDocument(doc *SpecDocument, descriptions map[string]string) string {
	var b strings.Builder

	// Frontmatter
	b.WriteString("---\n")
	fmt.Fprintf(&b, "spec_id: %s\n", doc.ID)
	fmt.Fprintf(&b, "feature: %s\n", doc.Feature)
	fmt.Fprintf(&b, "status: %s\n", doc.Status)
	fmt.Fprintf(&b, "version: %s\n", doc.Version)
	fmt.Fprintf(&b, "author: %s\n", doc.Author)
	fmt.Fprintf(&b, "date: %s\n", doc.Date)
	b.WriteString("related_skills:\n")
	for _, tag := range doc.Capabilities {
		fmt.Fprintf(&b, "  - %s\n", tag)
	}
	b.WriteString("traceability:\n  requirements: []\n  code_files: []\n  test_files: []\n---\n\n")

	// Title and overview
	fmt.Fprintf(&b, "# %s Specification\n\n## 1. Overview\n\n**Purpose**: %s\n", doc.Feature, doc.Purpose)
	b.WriteString(overviewTemplate)

	// Requirements grouped by kind. Section numbers are fixed per kind
	// (2.1 Ubiquitous .. 2.5 Unwanted) even when earlier kinds are absent.
	for i, kind := range KindOrder() {
		var group []Requirement
		for _, r := range doc.Requirements {
			if r.Kind == kind {
				group = append(group, r)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### 2.%d %s\n", i+1, kind.SectionTitle())
		b.WriteString(kind.FormatNote() + "\n\n")
		for _, r := range group {
			fmt.Fprintf(&b, "- **%s**: %s\n", r.ID, r.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString(storiesAndArchitectureTemplate)

	for _, tag := range doc.Capabilities {
		fmt.Fprintf(&b, "- `%s`: %s\n", tag, descriptions[tag])
	}

	b.WriteString(checklistTemplate)

	for _, r := range doc.Requirements {
		fmt.Fprintf(&b, "| %s | [TBD] | [TBD] | ⏳ Pending |\n", r.ID)
	}

	b.WriteString(notesTemplate)

	fmt.Fprintf(&b, "**Document Version**: %s\n**Last Updated**: %s\n**Status**: Draft - Ready for review\n", doc.Version, doc.Date)

	return b.String()
}
