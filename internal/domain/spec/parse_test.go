package spec_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/specsmith/specsync/internal/domain/spec"
)

const sampleDocument = `---
spec_id: SPEC-001
feature: User Login
status: reviewed
version: 1.2.0
author: Platform Team
date: 2025-03-10
related_skills:
  - android-compose-ui
  - android-retrofit-networking
traceability:
  requirements: []
  code_files: []
  test_files: []
---

# User Login Specification

## 1. Overview

**Purpose**: Allow users to authenticate with email and password

## 2. Requirements (EARS Format)

### 2.1 Ubiquitous Requirements (Core Functionality)

- **REQ-001-U-01**: The system shall display a login form
- **REQ-001-U-02**: The system shall mask the password input

### 2.3 Event-Driven Requirements

- **REQ-001-E-01**: WHEN the user taps login, the system shall validate credentials

### 2.5 Unwanted Behaviors

- **REQ-001-N-01**: IF credentials are invalid, THEN the system shall NOT reveal which field failed
`

func TestParseDocument(t *testing.T) {
	doc, err := spec.ParseDocument(sampleDocument)
	if err != nil {
		t.Fatalf("ParseDocument() returned error: %v", err)
	}

	if doc.ID != "SPEC-001" {
		t.Errorf("expected SPEC-001, got %s", doc.ID)
	}
	if doc.Feature != "User Login" {
		t.Errorf("expected User Login, got %s", doc.Feature)
	}
	if doc.Status != spec.StatusReviewed {
		t.Errorf("expected reviewed, got %s", doc.Status)
	}
	if doc.Version != "1.2.0" {
		t.Errorf("expected 1.2.0, got %s", doc.Version)
	}
	if doc.Author != "Platform Team" {
		t.Errorf("expected Platform Team, got %s", doc.Author)
	}
	if doc.Date != "2025-03-10" {
		t.Errorf("expected 2025-03-10, got %s", doc.Date)
	}
	if doc.Purpose != "Allow users to authenticate with email and password" {
		t.Errorf("unexpected purpose: %q", doc.Purpose)
	}

	if len(doc.Capabilities) != 2 || doc.Capabilities[0] != "android-compose-ui" || doc.Capabilities[1] != "android-retrofit-networking" {
		t.Errorf("unexpected capabilities: %v", doc.Capabilities)
	}

	if len(doc.Requirements) != 4 {
		t.Fatalf("expected 4 requirements, got %d", len(doc.Requirements))
	}
	first := doc.Requirements[0]
	if first.ID != "REQ-001-U-01" || first.Kind != spec.KindUbiquitous {
		t.Errorf("unexpected first requirement: %+v", first)
	}
	if first.Description != "The system shall display a login form" {
		t.Errorf("unexpected description: %q", first.Description)
	}
	if doc.Requirements[2].Kind != spec.KindEvent {
		t.Errorf("expected E kind, got %s", doc.Requirements[2].Kind)
	}
	if doc.Requirements[3].Kind != spec.KindUnwanted {
		t.Errorf("expected N kind, got %s", doc.Requirements[3].Kind)
	}
}

func TestParseDocumentDefaults(t *testing.T) {
	content := "---\nspec_id: SPEC-002\nfeature: Search\n---\n\nBody without structured sections.\n"
	doc, err := spec.ParseDocument(content)
	if err != nil {
		t.Fatalf("ParseDocument() returned error: %v", err)
	}

	if doc.Status != spec.StatusDraft {
		t.Errorf("expected draft default, got %s", doc.Status)
	}
	if doc.Version != "1.0.0" {
		t.Errorf("expected 1.0.0 default, got %s", doc.Version)
	}
	if doc.Author != "Unknown" {
		t.Errorf("expected Unknown default, got %s", doc.Author)
	}
	if doc.Date != "" {
		t.Errorf("expected empty date, got %q", doc.Date)
	}
	if len(doc.Capabilities) != 0 {
		t.Errorf("expected no capabilities, got %v", doc.Capabilities)
	}
	if len(doc.Requirements) != 0 {
		t.Errorf("expected no requirements, got %v", doc.Requirements)
	}
	if doc.Purpose != "" {
		t.Errorf("expected empty purpose, got %q", doc.Purpose)
	}
}

func TestParseDocumentNoFrontmatter(t *testing.T) {
	_, err := spec.ParseDocument("# Just a heading\n\nNo header block here.\n")
	if err == nil {
		t.Fatal("expected an error for a document without frontmatter")
	}
	var headerErr *spec.MalformedHeaderError
	if !errors.As(err, &headerErr) {
		t.Fatalf("expected MalformedHeaderError, got %T", err)
	}
	if len(headerErr.Missing) != 0 {
		t.Errorf("expected no missing-field list, got %v", headerErr.Missing)
	}
	if !strings.Contains(err.Error(), "no frontmatter block") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestParseDocumentMissingRequiredFields(t *testing.T) {
	_, err := spec.ParseDocument("---\nstatus: draft\n---\n")
	var headerErr *spec.MalformedHeaderError
	if !errors.As(err, &headerErr) {
		t.Fatalf("expected MalformedHeaderError, got %v", err)
	}
	if len(headerErr.Missing) != 2 || headerErr.Missing[0] != "spec_id" || headerErr.Missing[1] != "feature" {
		t.Errorf("unexpected missing fields: %v", headerErr.Missing)
	}

	_, err = spec.ParseDocument("---\nspec_id: SPEC-003\n---\n")
	if !errors.As(err, &headerErr) {
		t.Fatalf("expected MalformedHeaderError, got %v", err)
	}
	if len(headerErr.Missing) != 1 || headerErr.Missing[0] != "feature" {
		t.Errorf("unexpected missing fields: %v", headerErr.Missing)
	}
	if !strings.Contains(err.Error(), "feature") {
		t.Errorf("message should name the missing field: %s", err.Error())
	}
}

func TestParseDocumentFieldValuesAreTrimmed(t *testing.T) {
	content := "---\nspec_id:   SPEC-004   \nfeature: Profile \n---\n"
	doc, err := spec.ParseDocument(content)
	if err != nil {
		t.Fatalf("ParseDocument() returned error: %v", err)
	}
	if doc.ID != "SPEC-004" {
		t.Errorf("expected trimmed ID, got %q", doc.ID)
	}
	if doc.Feature != "Profile" {
		t.Errorf("expected trimmed feature, got %q", doc.Feature)
	}
}

func TestExtractRequirementsKindFallback(t *testing.T) {
	reqs := spec.ExtractRequirements("- **REQ-005-X-01**: no recognizable kind token\n")
	if len(reqs) != 1 {
		t.Fatalf("expected 1 requirement, got %d", len(reqs))
	}
	if reqs[0].Kind != spec.KindUbiquitous {
		t.Errorf("expected fallback to U, got %s", reqs[0].Kind)
	}
}

func TestExtractRequirementsKeepsDuplicates(t *testing.T) {
	content := "- **REQ-006-U-01**: first mention\n- **REQ-006-U-01**: second mention\n"
	reqs := spec.ExtractRequirements(content)
	if len(reqs) != 2 {
		t.Errorf("expected duplicate IDs to be kept, got %d requirements", len(reqs))
	}
}

func TestExtractRequirementsTrimsDescription(t *testing.T) {
	reqs := spec.ExtractRequirements("- **REQ-007-U-01**:   padded description   \n")
	if len(reqs) != 1 {
		t.Fatalf("expected 1 requirement, got %d", len(reqs))
	}
	if reqs[0].Description != "padded description" {
		t.Errorf("expected trimmed description, got %q", reqs[0].Description)
	}
}
