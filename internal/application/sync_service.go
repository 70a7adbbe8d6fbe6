package application

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/specsmith/specsync/internal/domain"
	"github.com/specsmith/specsync/internal/domain/spec"
	"github.com/specsmith/specsync/internal/domain/trace"
	"github.com/specsmith/specsync/internal/infrastructure/scan"
)

// Derived artifact names, written next to the spec document.
const (
	ReadmeFileName       = "README.md"
	ArchitectureFileName = "architecture.md"
)

// SyncService runs the traceability pipeline: parse the document, scan the
// source tree, compute the report, and regenerate the derived artifacts.
type SyncService struct {
	repo  domain.WorkspaceRepository
	audit *AuditService
}

func NewSyncService(repo domain.WorkspaceRepository, audit *AuditService) *SyncService {
	return &SyncService{repo: repo, audit: audit}
}

// Result is the outcome of one verify or sync run.
type Result struct {
	Doc         *spec.SpecDocument
	Report      *trace.SyncReport
	Index       trace.ReferenceIndex
	TestMethods int
	// Warnings collects non-fatal conditions, such as a document without
	// a traceability matrix section.
	Warnings []string
}

// Verify computes the traceability state of the document at specPath
// against the source tree at codeDir without writing anything. specPath is
// workspace relative; codeDir may be absolute or workspace relative.
func (s *SyncService) Verify(specPath, codeDir string) (*Result, error) {
	content, err := s.repo.ReadDocument(specPath)
	if err != nil {
		return nil, err
	}

	doc, err := spec.ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", specPath, err)
	}

	cfg, err := s.repo.LoadConfig()
	if err != nil {
		return nil, err
	}

	scanner := scan.NewScanner(cfg.SourceExt, cfg.Exclude)
	scanned, err := scanner.Scan(s.resolveCodeDir(codeDir, cfg))
	if err != nil {
		return nil, err
	}

	report := trace.NewComputer().Compute(doc, scanned.References, scanned.CodeFiles, scanned.TestFiles)

	return &Result{
		Doc:         doc,
		Report:      report,
		Index:       scanned.References,
		TestMethods: scanned.TestMethods,
	}, nil
}

// Sync verifies and then regenerates the derived artifacts: the matrix
// block inside the document, the status README, and the architecture
// diagram. A document without a matrix section skips the patch with a
// warning. Unchanged artifacts are not rewritten, so running Sync twice on
// unchanged inputs leaves every file byte-identical.
func (s *SyncService) Sync(specPath, codeDir string) (*Result, error) {
	result, err := s.Verify(specPath, codeDir)
	if err != nil {
		return nil, err
	}

	content, err := s.repo.ReadDocument(specPath)
	if err != nil {
		return nil, err
	}

	patched, err := trace.PatchMatrix(content, result.Report, result.Index)
	switch {
	case errors.Is(err, trace.ErrMatrixAnchor):
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v, matrix not updated", specPath, err))
	case err != nil:
		return nil, err
	default:
		if err := s.writeIfChanged(specPath, patched); err != nil {
			return nil, err
		}
	}

	specDir := path.Dir(specPath)
	if err := s.writeIfChanged(path.Join(specDir, ReadmeFileName), trace.RenderReadme(result.Report)); err != nil {
		return nil, err
	}
	if err := s.writeIfChanged(path.Join(specDir, ArchitectureFileName), trace.RenderArchitecture(result.Report)); err != nil {
		return nil, err
	}

	if s.audit != nil {
		_ = s.audit.Record("docs.sync", result.Report.SpecID, map[string]string{
			"implemented": fmt.Sprintf("%d", len(result.Report.Implemented)),
			"missing":     fmt.Sprintf("%d", len(result.Report.Missing)),
		})
	}

	return result, nil
}

// writeIfChanged skips the write when the file already holds the content.
// This keeps repeated runs byte-identical and stops watch mode from
// reacting to its own output.
func (s *SyncService) writeIfChanged(relPath, content string) error {
	if existing, err := s.repo.ReadDocument(relPath); err == nil && existing == content {
		return nil
	}
	return s.repo.WriteDocument(relPath, content)
}

func (s *SyncService) resolveCodeDir(codeDir string, cfg *domain.Config) string {
	if codeDir == "" {
		codeDir = cfg.SourceDir
	}
	if filepath.IsAbs(codeDir) {
		return codeDir
	}
	return filepath.Join(s.repo.Root(), codeDir)
}
