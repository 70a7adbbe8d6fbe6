package trace

import (
	"fmt"
	"sort"
	"strings"
)

const architectureDiagram = "```" + `
┌──────────────────────────────────────────────────────┐
│                  Presentation Layer                  │
│  ┌──────────────┐   ┌────────────────────────────┐   │
│  │    Screen    │   │         ViewModel          │   │
│  │   (Compose)  │←→│     (State Management)     │   │
│  └──────────────┘   └────────────────────────────┘   │
└──────────────────────────┬───────────────────────────┘
                           │
                           ↓
┌──────────────────────────────────────────────────────┐
│                     Domain Layer                     │
│  ┌──────────────┐   ┌────────────────────────────┐   │
│  │    Models    │   │         Use Cases          │   │
│  │  (Business)  │   │      (Business Logic)      │   │
│  └──────────────┘   └────────────────────────────┘   │
│  ┌────────────────────────────────────────────────┐  │
│  │             Repository Interfaces              │  │
│  │            (Data Access Contracts)             │  │
│  └────────────────────────────────────────────────┘  │
└──────────────────────────┬───────────────────────────┘
                           │
                           ↓
┌──────────────────────────────────────────────────────┐
│                      Data Layer                      │
│  ┌──────────────┐   ┌────────────────────────────┐   │
│  │    API/DAO   │   │ Repository Implementation  │   │
│  │ (Data Source)│   │    (Data Access Logic)     │   │
│  └──────────────┘   └────────────────────────────┘   │
│  ┌────────────────────────────────────────────────┐  │
│  │                 DTOs / Entities                │  │
│  │            (Data Transfer Objects)             │  │
│  └────────────────────────────────────────────────┘  │
└──────────────────────────────────────────────────────┘
` + "```"

const dependencyFlow = "```" + `
Presentation → Domain → Data
     ↓           ↓        ↓
 ViewModel → UseCase → Repository
` + "```"

// RenderReadme produces the status README for a report. The document is a
// total function of the report: unchanged inputs render byte-identical
// output, and callers overwrite any prior version in full.
func RenderReadme(report *SyncReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n## Overview\n\nSPEC ID: %s\n\n", report.Feature, report.SpecID)

	b.WriteString("## Implementation Status\n\n")
	fmt.Fprintf(&b, "- **Requirements**: %d/%d implemented (%.1f%%)\n", len(report.Implemented), report.Total, report.Percent())
	fmt.Fprintf(&b, "- **Source Files**: %d\n", len(report.CodeFiles))
	fmt.Fprintf(&b, "- **Test Files**: %d\n", len(report.TestFiles))

	b.WriteString("\n## Requirements\n\n### Implemented\n\n")
	for _, id := range report.Implemented {
		fmt.Fprintf(&b, "- ✅ %s\n", id)
	}

	if len(report.Missing) > 0 {
		b.WriteString("\n### Pending\n\n")
		for _, id := range report.Missing {
			fmt.Fprintf(&b, "- ⏳ %s\n", id)
		}
	}

	b.WriteString(`
## Architecture

This feature follows Clean Architecture with three layers:

### Domain Layer
- Models: Pure business objects
- Use Cases: Business logic
- Repository Interfaces: Data access contracts

### Data Layer
- API: Network data source
- DTOs: Data transfer objects
- Repository Implementation: Data access logic

### Presentation Layer
- ViewModel: State management
- State: UI state definitions
- Screen: Compose UI

## Files

### Source Files

`)

	for _, path := range sortedCopy(report.CodeFiles) {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}

	b.WriteString("\n### Test Files\n\n")
	for _, path := range sortedCopy(report.TestFiles) {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}

	b.WriteString(`
## References

- [SPEC Document](./SPEC.md)
- [Architecture Diagram](./architecture.md)

---

*Generated by specsync*
`)

	return b.String()
}

// RenderArchitecture produces the architecture document: a fixed-topology
// diagram plus the report's code files partitioned by layer path convention.
// Like the README it is a total function of the report.
func RenderArchitecture(report *SyncReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Architecture\n\n## Clean Architecture Layers\n\n", report.Feature)
	b.WriteString(architectureDiagram)
	b.WriteString("\n\n## Component Breakdown\n\n### Presentation Layer\n\n")

	for _, path := range filterLayer(report.CodeFiles, "/presentation/") {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}

	b.WriteString("\n### Domain Layer\n\n")
	for _, path := range filterLayer(report.CodeFiles, "/domain/") {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}

	b.WriteString("\n### Data Layer\n\n")
	for _, path := range filterLayer(report.CodeFiles, "/data/") {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}

	b.WriteString("\n## Dependency Flow\n\n")
	b.WriteString(dependencyFlow)
	b.WriteString(`

**Key Principle**: Dependencies point inward. Outer layers depend on inner layers, never the reverse.

---

*Generated by specsync*
`)

	return b.String()
}

// filterLayer keeps the files whose path contains the layer segment,
// preserving report order.
func filterLayer(files []string, segment string) []string {
	var matched []string
	for _, f := range files {
		if strings.Contains(f, segment) {
			matched = append(matched, f)
		}
	}
	return matched
}

func sortedCopy(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)
	return out
}
