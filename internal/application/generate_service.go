package application

import (
	"fmt"
	"path"

	"github.com/specsmith/specsync/internal/domain"
	"github.com/specsmith/specsync/internal/domain/spec"
	"github.com/specsmith/specsync/internal/infrastructure/codegen"
)

// GenerateService turns a parsed spec document into Kotlin scaffolding
// under the scanner's file conventions, so the generated tree is
// immediately traceable.
type GenerateService struct {
	repo  domain.WorkspaceRepository
	audit *AuditService
}

func NewGenerateService(repo domain.WorkspaceRepository, audit *AuditService) *GenerateService {
	return &GenerateService{repo: repo, audit: audit}
}

// Generate parses the document at specPath and writes the scaffolding files
// under outputDir (workspace relative). Empty outputDir and pkg fall back
// to the configured source directory and package name. It returns the
// written workspace-relative paths.
func (s *GenerateService) Generate(specPath, outputDir, pkg string) ([]string, error) {
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
	if outputDir == "" {
		outputDir = cfg.SourceDir
	}
	if pkg == "" {
		pkg = cfg.Package
	}

	gen, err := codegen.NewGenerator(doc, pkg)
	if err != nil {
		return nil, err
	}

	files, err := gen.Files()
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		rel := path.Join(outputDir, f.Path)
		if err := s.repo.WriteDocument(rel, f.Content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", rel, err)
		}
		written = append(written, rel)
	}

	if s.audit != nil {
		_ = s.audit.Record("code.generate", doc.ID, map[string]string{
			"files":   fmt.Sprintf("%d", len(written)),
			"package": pkg,
		})
	}

	return written, nil
}
