package application_test

import (
	"strings"
	"testing"

	"github.com/specsmith/specsync/internal/application"
	"github.com/specsmith/specsync/internal/domain/spec"
	"github.com/specsmith/specsync/internal/infrastructure/storage"
)

func newWorkspace(t *testing.T) *storage.FilesystemRepository {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}
	return repo
}

func loginInput() application.CreateInput {
	return application.CreateInput{
		Feature: "User Login",
		Purpose: "Authenticate users against the backend.",
		Requirements: []string{
			"The system shall validate credentials",
			"When login fails, the system shall show an error",
		},
	}
}

func TestSpecServiceCreateRoundTrip(t *testing.T) {
	repo := newWorkspace(t)
	svc := application.NewSpecService(repo, application.NewAuditService(repo))

	doc, relPath, err := svc.Create(loginInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if doc.ID != "SPEC-001" {
		t.Errorf("ID = %q, want SPEC-001", doc.ID)
	}
	if relPath != "specs/user-login/SPEC.md" {
		t.Errorf("path = %q", relPath)
	}
	if doc.Status != spec.StatusDraft {
		t.Errorf("status = %q, want draft", doc.Status)
	}

	// Parsing the written file restores the document.
	parsed, err := svc.Load(relPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if parsed.ID != doc.ID || parsed.Feature != doc.Feature {
		t.Errorf("round trip lost identity: %+v", parsed)
	}

	wantIDs := []string{"REQ-001-U-01", "REQ-001-E-01"}
	gotIDs := parsed.RequirementIDs()
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("got %d requirements, want %d", len(gotIDs), len(wantIDs))
	}
	for i, id := range wantIDs {
		if gotIDs[i] != id {
			t.Errorf("requirement %d = %q, want %q", i, gotIDs[i], id)
		}
	}
}

func TestSpecServiceCreateAssignsSequentialNumbers(t *testing.T) {
	repo := newWorkspace(t)
	svc := application.NewSpecService(repo, nil)

	first, _, err := svc.Create(loginInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := loginInput()
	in.Feature = "User Profile"
	second, _, err := svc.Create(in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first.ID != "SPEC-001" || second.ID != "SPEC-002" {
		t.Errorf("sequential IDs = %q, %q", first.ID, second.ID)
	}
}

func TestSpecServiceCreateRequiresFeature(t *testing.T) {
	repo := newWorkspace(t)
	svc := application.NewSpecService(repo, nil)

	if _, _, err := svc.Create(application.CreateInput{Feature: "  "}); err == nil {
		t.Fatal("expected error for blank feature name")
	}
}

func TestSpecServiceCreateRecordsAuditEvent(t *testing.T) {
	repo := newWorkspace(t)
	audit := application.NewAuditService(repo)
	svc := application.NewSpecService(repo, audit)

	if _, _, err := svc.Create(loginInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	events, err := audit.Timeline()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Action != "spec.create" {
		t.Errorf("audit events = %+v", events)
	}
}

func TestSpecServiceTransitionLifecycle(t *testing.T) {
	repo := newWorkspace(t)
	svc := application.NewSpecService(repo, nil)

	_, relPath, err := svc.Create(loginInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Approving a draft is rejected without touching the file.
	if _, err := svc.Transition(relPath, spec.EventApprove); err == nil {
		t.Fatal("approve from draft must be rejected")
	}
	content, _ := repo.ReadDocument(relPath)
	if !strings.Contains(content, "status: draft") {
		t.Error("rejected transition modified the document")
	}

	next, err := svc.Transition(relPath, spec.EventReview)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if next != spec.StatusReviewed {
		t.Errorf("status after review = %q", next)
	}

	next, err = svc.Transition(relPath, spec.EventApprove)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if next != spec.StatusApproved {
		t.Errorf("status after approve = %q", next)
	}

	content, _ = repo.ReadDocument(relPath)
	if !strings.Contains(content, "status: approved") {
		t.Error("status line not rewritten")
	}

	// The rewritten document still parses.
	doc, err := svc.Load(relPath)
	if err != nil {
		t.Fatalf("Load after transitions: %v", err)
	}
	if doc.Status != spec.StatusApproved {
		t.Errorf("parsed status = %q", doc.Status)
	}
}
