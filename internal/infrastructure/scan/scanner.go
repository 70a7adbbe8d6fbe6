package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/specsmith/specsync/internal/domain/trace"
)

// annotationPattern matches a line-comment marker followed by a SPEC or REQ
// identifier, e.g. "// REQ-001-U-01". A line may carry several markers.
var annotationPattern = regexp.MustCompile(`//\s*((?:SPEC|REQ)-[A-Z0-9-]+)`)

// testMethodToken is the structural proxy counted as one test method.
const testMethodToken = "@Test"

// Scanner extracts requirement annotations from a source tree. Files are
// selected by extension; paths matching an exclude glob contribute nothing.
type Scanner struct {
	ext      string
	excludes []string
}

// NewScanner returns a scanner for files with the given extension (".kt"
// when empty). Exclude patterns use doublestar syntax and are matched
// against slash-separated paths relative to the scan root.
func NewScanner(ext string, excludes []string) *Scanner {
	if ext == "" {
		ext = ".kt"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Scanner{ext: ext, excludes: excludes}
}

// Result holds everything a single walk discovers.
type Result struct {
	// References maps requirement IDs to annotated code locations, in walk
	// order (lexical by path, then by line).
	References trace.ReferenceIndex
	// CodeFiles lists production source files: every matching file whose
	// path has no test directory segment.
	CodeFiles []string
	// TestFiles lists files under src/test named *Test<ext>.
	TestFiles []string
	// TestMethods counts test-annotation tokens across all test files.
	TestMethods int
}

// Scan walks root and collects annotations, the production/test file
// partition, and the test-method count. A missing root is fatal; a tree
// with no matches is normal data and yields an empty result.
func (s *Scanner) Scan(root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("code directory not found: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	result := &Result{References: make(trace.ReferenceIndex)}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), s.ext) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if s.excluded(rel) {
			return nil
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the walk itself
		if err != nil {
			return err
		}
		content := string(data)

		for lineNum, line := range strings.Split(content, "\n") {
			for _, m := range annotationPattern.FindAllStringSubmatch(line, -1) {
				id := m[1]
				result.References[id] = append(result.References[id], trace.CodeReference{
					FilePath:      rel,
					LineNumber:    lineNum + 1,
					RequirementID: id,
				})
			}
		}

		if isTestFile(rel, s.ext) {
			result.TestFiles = append(result.TestFiles, rel)
			result.TestMethods += strings.Count(content, testMethodToken)
		}
		if !hasTestSegment(rel) {
			result.CodeFiles = append(result.CodeFiles, rel)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, walkErr)
	}
	return result, nil
}

func (s *Scanner) excluded(rel string) bool {
	for _, pattern := range s.excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// isTestFile applies the test convention: under src/test and named
// *Test<ext>.
func isTestFile(rel, ext string) bool {
	return strings.HasPrefix(rel, "src/test/") && strings.HasSuffix(rel, "Test"+ext)
}

// hasTestSegment reports whether any directory segment of the path is
// exactly "test". Such files never count as production source.
func hasTestSegment(rel string) bool {
	return strings.Contains("/"+rel, "/test/")
}
