package spec_test

import (
	"testing"

	"github.com/specsmith/specsync/internal/domain/spec"
)

func TestStatusMachine_Lifecycle(t *testing.T) {
	machine, err := spec.NewStatusMachine(spec.StatusDraft, 3)
	if err != nil {
		t.Fatalf("NewStatusMachine() returned error: %v", err)
	}

	if machine.Current() != spec.StatusDraft {
		t.Errorf("expected draft, got %s", machine.Current())
	}

	if err := machine.Transition(spec.EventReview); err != nil {
		t.Fatalf("review transition failed: %v", err)
	}
	if machine.Current() != spec.StatusReviewed {
		t.Errorf("expected reviewed, got %s", machine.Current())
	}

	if err := machine.Transition(spec.EventApprove); err != nil {
		t.Fatalf("approve transition failed: %v", err)
	}
	if machine.Current() != spec.StatusApproved {
		t.Errorf("expected approved, got %s", machine.Current())
	}

	if err := machine.Transition(spec.EventReopen); err != nil {
		t.Fatalf("reopen transition failed: %v", err)
	}
	if machine.Current() != spec.StatusDraft {
		t.Errorf("expected draft after reopen, got %s", machine.Current())
	}
}

func TestStatusMachine_RejectsApproveFromDraft(t *testing.T) {
	machine, err := spec.NewStatusMachine(spec.StatusDraft, 3)
	if err != nil {
		t.Fatalf("NewStatusMachine() returned error: %v", err)
	}

	if err := machine.Transition(spec.EventApprove); err == nil {
		t.Error("expected approve from draft to be rejected")
	}
	if machine.Current() != spec.StatusDraft {
		t.Errorf("state must be unchanged after a rejected event, got %s", machine.Current())
	}
}

func TestStatusMachine_ApproveRequiresRequirements(t *testing.T) {
	machine, err := spec.NewStatusMachine(spec.StatusReviewed, 0)
	if err != nil {
		t.Fatalf("NewStatusMachine() returned error: %v", err)
	}

	if err := machine.Transition(spec.EventApprove); err == nil {
		t.Error("expected approve without requirements to be rejected")
	}
	if machine.Current() != spec.StatusReviewed {
		t.Errorf("expected reviewed, got %s", machine.Current())
	}
}

func TestStatusMachine_InvalidInitialStatus(t *testing.T) {
	if _, err := spec.NewStatusMachine(spec.Status("archived"), 1); err == nil {
		t.Error("expected error for an unknown status")
	}
}

func TestTransitionStatus(t *testing.T) {
	next, err := spec.TransitionStatus(spec.StatusDraft, spec.EventReview, 2)
	if err != nil {
		t.Fatalf("TransitionStatus() returned error: %v", err)
	}
	if next != spec.StatusReviewed {
		t.Errorf("expected reviewed, got %s", next)
	}

	if _, err := spec.TransitionStatus(spec.StatusApproved, spec.EventApprove, 2); err == nil {
		t.Error("expected approve from approved to be rejected")
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []spec.Status{spec.StatusDraft, spec.StatusReviewed, spec.StatusApproved} {
		if !s.IsValid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if spec.Status("unknown").IsValid() {
		t.Error("expected unknown to be invalid")
	}
}
