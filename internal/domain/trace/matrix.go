package trace

import (
	"errors"
	"fmt"
	"strings"
)

// Markers anchoring the traceability matrix inside a spec document. The
// heading and table header must match exactly; rows follow the separator
// line until the first line that is not a table row.
const (
	matrixHeading   = "## 7. Traceability Matrix"
	matrixHeader    = "| Requirement | Code File | Test File | Status |"
	matrixSeparator = "|-------------|-----------|-----------|--------|"
)

// Status markers and the placeholder used for unknown file cells.
const (
	statusImplemented = "🟢 Implemented"
	statusPending     = "⏳ Pending"
	cellPlaceholder   = "—"
)

// ErrMatrixAnchor is returned when a document has no traceability matrix
// section. Callers treat it as a warning and skip the patch step.
var ErrMatrixAnchor = errors.New("traceability matrix section not found")

// PatchMatrix replaces the matrix rows in docText with one row per
// requirement ID in the report, sorted lexicographically. The replacement is
// a full substitution of the row set, never a merge: manual edits to old
// rows are discarded. The rest of the document is returned byte-for-byte
// untouched, so patching twice with the same report and index is idempotent.
func PatchMatrix(docText string, report *SyncReport, idx ReferenceIndex) (string, error) {
	lines := strings.Split(docText, "\n")

	rowStart := -1
	for i := 0; i+3 < len(lines); i++ {
		if lines[i] == matrixHeading && lines[i+1] == "" && lines[i+2] == matrixHeader && lines[i+3] == matrixSeparator {
			rowStart = i + 4
			break
		}
	}
	if rowStart == -1 {
		return "", ErrMatrixAnchor
	}

	rowEnd := rowStart
	for rowEnd < len(lines) && strings.HasPrefix(lines[rowEnd], "|") {
		rowEnd++
	}

	rows := buildMatrixRows(report, idx)

	patched := make([]string, 0, len(lines)-(rowEnd-rowStart)+len(rows))
	patched = append(patched, lines[:rowStart]...)
	patched = append(patched, rows...)
	patched = append(patched, lines[rowEnd:]...)
	return strings.Join(patched, "\n"), nil
}

func buildMatrixRows(report *SyncReport, idx ReferenceIndex) []string {
	ids := report.AllIDs()
	rows := make([]string, 0, len(ids))
	for _, id := range ids {
		codeFile := cellPlaceholder
		testFile := cellPlaceholder
		status := statusPending

		if report.IsImplemented(id) {
			if refs := idx[id]; len(refs) > 0 {
				codeFile = refs[0].FilePath
				status = statusImplemented
			}
		}

		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s |", id, codeFile, testFile, status))
	}
	return rows
}
