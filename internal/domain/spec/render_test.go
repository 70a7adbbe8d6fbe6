package spec_test

import (
	"strings"
	"testing"

	"github.com/specsmith/specsync/internal/domain/spec"
)

func sampleRenderDoc() *spec.SpecDocument {
	return &spec.SpecDocument{
		ID:      "SPEC-001",
		Feature: "User Login",
		Status:  spec.StatusDraft,
		Version: "1.0.0",
		Author:  "Platform Team",
		Date:    "2025-03-10",
		Purpose: "Allow users to authenticate with email and password",
		Capabilities: []string{
			"android-compose-ui",
			"android-retrofit-networking",
		},
		Requirements: []spec.Requirement{
			{ID: "REQ-001-U-01", Kind: spec.KindUbiquitous, Description: "The system shall display a login form"},
			{ID: "REQ-001-E-01", Kind: spec.KindEvent, Description: "WHEN the user taps login, the system shall validate credentials"},
			{ID: "REQ-001-N-01", Kind: spec.KindUnwanted, Description: "IF credentials are invalid, THEN the system shall NOT reveal which field failed"},
		},
	}
}

func TestRenderDocumentLayout(t *testing.T) {
	descriptions := map[string]string{
		"android-compose-ui":          "Declarative UI with Jetpack Compose",
		"android-retrofit-networking": "REST API calls with Retrofit",
	}
	text := spec.RenderDocument(sampleRenderDoc(), descriptions)

	for _, want := range []string{
		"spec_id: SPEC-001\n",
		"feature: User Login\n",
		"status: draft\n",
		"# User Login Specification",
		"**Purpose**: Allow users to authenticate with email and password",
		"### 2.1 Ubiquitous Requirements (Core Functionality)",
		"### 2.3 Event-Driven Requirements",
		"### 2.5 Unwanted Behaviors",
		"- **REQ-001-U-01**: The system shall display a login form",
		"## 5. Related Skills",
		"- `android-compose-ui`: Declarative UI with Jetpack Compose",
		"## 7. Traceability Matrix",
		"| Requirement | Code File | Test File | Status |",
		"| REQ-001-E-01 | [TBD] | [TBD] | ⏳ Pending |",
		"**Legend**: ⏳ Pending | 🟢 Implemented | ✅ Tested | ❌ Failed",
		"**Document Version**: 1.0.0",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}

	// Kinds with no requirements get no section.
	for _, absent := range []string{
		"### 2.2 State-Driven Requirements",
		"### 2.4 Optional Requirements",
	} {
		if strings.Contains(text, absent) {
			t.Errorf("rendered document should not contain %q", absent)
		}
	}
}

func TestRenderDocumentSectionNumbersAreFixed(t *testing.T) {
	doc := sampleRenderDoc()
	doc.Requirements = []spec.Requirement{
		{ID: "REQ-001-N-01", Kind: spec.KindUnwanted, Description: "IF offline, THEN the system shall NOT discard drafts"},
	}

	text := spec.RenderDocument(doc, nil)
	if !strings.Contains(text, "### 2.5 Unwanted Behaviors") {
		t.Error("unwanted section must keep its 2.5 number even when earlier kinds are absent")
	}
	if strings.Contains(text, "### 2.1") {
		t.Error("absent kinds must not be numbered")
	}
}

func TestRenderDocumentRoundTrip(t *testing.T) {
	original := sampleRenderDoc()
	text := spec.RenderDocument(original, map[string]string{})

	parsed, err := spec.ParseDocument(text)
	if err != nil {
		t.Fatalf("ParseDocument() returned error: %v", err)
	}

	if parsed.ID != original.ID || parsed.Feature != original.Feature {
		t.Errorf("identity fields changed: %s / %s", parsed.ID, parsed.Feature)
	}
	if parsed.Status != original.Status || parsed.Version != original.Version {
		t.Errorf("lifecycle fields changed: %s / %s", parsed.Status, parsed.Version)
	}
	if parsed.Author != original.Author || parsed.Date != original.Date {
		t.Errorf("authorship fields changed: %s / %s", parsed.Author, parsed.Date)
	}
	if parsed.Purpose != original.Purpose {
		t.Errorf("purpose changed: %q", parsed.Purpose)
	}

	if len(parsed.Capabilities) != len(original.Capabilities) {
		t.Fatalf("expected %d capabilities, got %d", len(original.Capabilities), len(parsed.Capabilities))
	}
	for i := range original.Capabilities {
		if parsed.Capabilities[i] != original.Capabilities[i] {
			t.Errorf("capability %d changed: %s", i, parsed.Capabilities[i])
		}
	}

	if len(parsed.Requirements) != len(original.Requirements) {
		t.Fatalf("expected %d requirements, got %d", len(original.Requirements), len(parsed.Requirements))
	}
	for i := range original.Requirements {
		if parsed.Requirements[i] != original.Requirements[i] {
			t.Errorf("requirement %d changed: %+v", i, parsed.Requirements[i])
		}
	}
}

func TestRenderDocumentIsDeterministic(t *testing.T) {
	doc := sampleRenderDoc()
	first := spec.RenderDocument(doc, nil)
	second := spec.RenderDocument(doc, nil)
	if first != second {
		t.Error("rendering the same document twice must produce identical text")
	}
}
