package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsync/internal/domain"
)

// AuditService records state-changing operations in the workspace event log.
type AuditService struct {
	repo domain.WorkspaceRepository
}

func NewAuditService(repo domain.WorkspaceRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record appends one event to the audit log. Failures to record are
// returned but callers treat them as non-fatal: an unlogged action has
// still happened.
func (s *AuditService) Record(action, specID string, metadata map[string]string) error {
	return s.repo.RecordEvent(domain.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		SpecID:    specID,
		Metadata:  metadata,
	})
}

// Timeline returns every recorded event in append order.
func (s *AuditService) Timeline() ([]domain.Event, error) {
	return s.repo.LoadEvents()
}
