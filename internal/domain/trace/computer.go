package trace

import (
	"sort"
	"strings"

	"github.com/specsmith/specsync/internal/domain/spec"
)

// Computer derives traceability state from a parsed document and the
// annotation references scanned out of a source tree. It is pure: no I/O,
// no state beyond its inputs.
type Computer struct{}

// NewComputer returns a traceability computer.
func NewComputer() *Computer {
	return &Computer{}
}

// Compute partitions the document's REQ-prefixed requirement IDs into
// implemented (present in the index) and missing (absent) sets. Total counts
// every REQ-prefixed requirement, so a requirement with zero annotations
// still counts toward total. Non-REQ IDs in the index, such as bare SPEC
// markers, never reach the report.
func (c *Computer) Compute(doc *spec.SpecDocument, idx ReferenceIndex, codeFiles, testFiles []string) *SyncReport {
	var implemented, missing []string
	seen := make(map[string]bool)
	total := 0

	for _, id := range doc.RequirementIDs() {
		if !strings.HasPrefix(id, "REQ-") {
			continue
		}
		total++
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := idx[id]; ok {
			implemented = append(implemented, id)
		} else {
			missing = append(missing, id)
		}
	}

	sort.Strings(implemented)
	sort.Strings(missing)

	return &SyncReport{
		SpecID:      doc.ID,
		Feature:     doc.Feature,
		Total:       total,
		Implemented: implemented,
		Missing:     missing,
		CodeFiles:   codeFiles,
		TestFiles:   testFiles,
	}
}
