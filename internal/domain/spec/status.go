package spec

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Status is the review lifecycle position of a document.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusReviewed Status = "reviewed"
	StatusApproved Status = "approved"
)

// Lifecycle events accepted by the status machine. Kept untyped for
// statekit.EventType compatibility.
const (
	EventReview  = "review"
	EventApprove = "approve"
	EventReopen  = "reopen"
)

// IsValid returns true if the status is a recognized lifecycle position.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusReviewed, StatusApproved:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

type statusContext struct {
	RequirementCount int
}

// StatusMachine enforces the draft -> reviewed -> approved lifecycle.
type StatusMachine struct {
	interpreter *statekit.Interpreter[statusContext]
}

// NewStatusMachine builds a lifecycle machine positioned at the document's
// current status. Approval is guarded: a document without requirements
// cannot be approved.
func NewStatusMachine(initial Status, requirementCount int) (*StatusMachine, error) {
	if !initial.IsValid() {
		return nil, fmt.Errorf("invalid document status: %s", initial)
	}

	builder := statekit.NewMachine[statusContext]("spec-status").
		WithInitial(statekit.StateID(initial)).
		WithContext(statusContext{RequirementCount: requirementCount}).
		WithGuard("hasRequirements", func(ctx statusContext, e statekit.Event) bool {
			return ctx.RequirementCount > 0
		})

	builder.State(statekit.StateID(StatusDraft)).
		On(EventReview).Target(statekit.StateID(StatusReviewed)).
		Done()

	builder.State(statekit.StateID(StatusReviewed)).
		On(EventApprove).Target(statekit.StateID(StatusApproved)).Guard("hasRequirements").
		On(EventReopen).Target(statekit.StateID(StatusDraft)).
		Done()

	builder.State(statekit.StateID(StatusApproved)).
		On(EventReopen).Target(statekit.StateID(StatusDraft)).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build status machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &StatusMachine{interpreter: interpreter}, nil
}

// Transition applies a lifecycle event. In statekit a send that matches no
// transition (or fails its guard) leaves the state unchanged, so an
// unchanged state after the send means the event was not allowed.
func (m *StatusMachine) Transition(event string) error {
	before := m.Current()
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := m.Current()

	if before == after {
		return fmt.Errorf("the action '%s' is not allowed while the document is in the '%s' state", event, before)
	}
	return nil
}

// Current returns the state the machine is in.
func (m *StatusMachine) Current() Status {
	return Status(m.interpreter.State().Value)
}

// TransitionStatus computes the status reached by applying event to a
// document in the given status. It is a convenience wrapper for callers
// that do not hold a machine.
func TransitionStatus(current Status, event string, requirementCount int) (Status, error) {
	machine, err := NewStatusMachine(current, requirementCount)
	if err != nil {
		return current, err
	}
	if err := machine.Transition(event); err != nil {
		return current, err
	}
	return machine.Current(), nil
}
