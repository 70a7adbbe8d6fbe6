package application

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/specsmith/specsync/internal/domain"
	"github.com/specsmith/specsync/internal/domain/capability"
	"github.com/specsmith/specsync/internal/domain/spec"
)

// SpecFileName is the conventional name of a spec document inside its
// feature directory.
const SpecFileName = "SPEC.md"

var statusLinePattern = regexp.MustCompile(`(?m)^status:\s*.*$`)

// SpecService creates spec documents and drives their review lifecycle.
type SpecService struct {
	repo  domain.WorkspaceRepository
	audit *AuditService
}

func NewSpecService(repo domain.WorkspaceRepository, audit *AuditService) *SpecService {
	return &SpecService{repo: repo, audit: audit}
}

// CreateInput carries the user-supplied material for a new document.
// Feature is mandatory; everything else degrades to a default.
type CreateInput struct {
	Feature      string
	Purpose      string
	Requirements []string
	Author       string
}

// Create builds a new spec document: it assigns the next free spec number,
// categorizes the raw requirement sentences into EARS kinds, matches
// capability tags against the combined text, renders the full document, and
// writes it to <specs>/<slug>/SPEC.md. The returned path is workspace
// relative.
func (s *SpecService) Create(in CreateInput) (*spec.SpecDocument, string, error) {
	feature := strings.TrimSpace(in.Feature)
	if feature == "" {
		return nil, "", fmt.Errorf("feature name is required")
	}

	cfg, err := s.repo.LoadConfig()
	if err != nil {
		return nil, "", err
	}

	number, err := s.repo.NextSpecNumber()
	if err != nil {
		return nil, "", fmt.Errorf("failed to determine next spec number: %w", err)
	}

	catalog, err := s.repo.LoadCatalog()
	if err != nil {
		return nil, "", err
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = cfg.Author
	}

	doc := &spec.SpecDocument{
		ID:           "SPEC-" + number,
		Feature:      feature,
		Status:       spec.StatusDraft,
		Version:      "1.0.0",
		Author:       author,
		Date:         time.Now().Format("2006-01-02"),
		Capabilities: capability.NewMatcher(catalog).Match(feature, in.Requirements),
		Requirements: spec.BuildRequirements(number, in.Requirements),
		Purpose:      in.Purpose,
	}

	relPath := path.Join(cfg.SpecsDir, doc.Slug(), SpecFileName)
	content := spec.RenderDocument(doc, catalog.Descriptions())
	if err := s.repo.WriteDocument(relPath, content); err != nil {
		return nil, "", fmt.Errorf("failed to write spec document: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.Record("spec.create", doc.ID, map[string]string{"feature": feature})
	}

	return doc, relPath, nil
}

// Load reads and parses the document at the given workspace-relative path.
func (s *SpecService) Load(relPath string) (*spec.SpecDocument, error) {
	content, err := s.repo.ReadDocument(relPath)
	if err != nil {
		return nil, err
	}
	return spec.ParseDocument(content)
}

// ListPaths returns the workspace-relative path of every spec document.
func (s *SpecService) ListPaths() ([]string, error) {
	return s.repo.ListSpecFiles()
}

// Transition applies a lifecycle event ("review" or "approve") to the
// document at relPath, rewrites its status header line, and records the
// change. An event the current status does not allow is rejected without
// touching the file.
func (s *SpecService) Transition(relPath, event string) (spec.Status, error) {
	content, err := s.repo.ReadDocument(relPath)
	if err != nil {
		return "", err
	}

	doc, err := spec.ParseDocument(content)
	if err != nil {
		return "", err
	}

	next, err := spec.TransitionStatus(doc.Status, event, len(doc.Requirements))
	if err != nil {
		return doc.Status, err
	}

	updated := statusLinePattern.ReplaceAllString(content, "status: "+next.String())
	if err := s.repo.WriteDocument(relPath, updated); err != nil {
		return doc.Status, fmt.Errorf("failed to update document status: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.Record("spec."+event, doc.ID, map[string]string{
			"from": doc.Status.String(),
			"to":   next.String(),
		})
	}

	return next, nil
}
