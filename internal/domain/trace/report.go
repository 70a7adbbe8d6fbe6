package trace

// CodeReference locates one annotation marker in the source tree.
type CodeReference struct {
	FilePath      string `json:"file_path" yaml:"file_path"`
	LineNumber    int    `json:"line_number" yaml:"line_number"`
	RequirementID string `json:"requirement_id" yaml:"requirement_id"`
}

// ReferenceIndex maps a requirement ID to every code location annotated
// with it. IDs map to at least one reference; an unreferenced ID is simply
// absent.
type ReferenceIndex map[string][]CodeReference

// SyncReport is the computed traceability state of one document against one
// source tree. Implemented and Missing partition the document's REQ-prefixed
// requirement IDs and are kept sorted. The report is recomputed on every run
// and never persisted; only its renderings are written to disk.
type SyncReport struct {
	SpecID      string   `json:"spec_id" yaml:"spec_id"`
	Feature     string   `json:"feature" yaml:"feature"`
	Total       int      `json:"total_requirements" yaml:"total_requirements"`
	Implemented []string `json:"implemented" yaml:"implemented"`
	Missing     []string `json:"missing" yaml:"missing"`
	CodeFiles   []string `json:"code_files" yaml:"code_files"`
	TestFiles   []string `json:"test_files" yaml:"test_files"`
}

// Percent returns the implemented share of all requirements, in percent.
// A report with no requirements is 0, not a division by zero.
func (r *SyncReport) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(len(r.Implemented)) / float64(r.Total) * 100
}

// IsImplemented reports whether the given requirement ID is in the
// implemented set.
func (r *SyncReport) IsImplemented(id string) bool {
	for _, impl := range r.Implemented {
		if impl == id {
			return true
		}
	}
	return false
}

// AllIDs returns the union of implemented and missing IDs, sorted
// lexicographically. Both inputs are already sorted, so a merge suffices.
func (r *SyncReport) AllIDs() []string {
	ids := make([]string, 0, len(r.Implemented)+len(r.Missing))
	i, j := 0, 0
	for i < len(r.Implemented) && j < len(r.Missing) {
		if r.Implemented[i] < r.Missing[j] {
			ids = append(ids, r.Implemented[i])
			i++
		} else {
			ids = append(ids, r.Missing[j])
			j++
		}
	}
	ids = append(ids, r.Implemented[i:]...)
	ids = append(ids, r.Missing[j:]...)
	return ids
}
