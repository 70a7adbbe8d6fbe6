package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specsmith/specsync/internal/domain"
)

func TestFilesystemRepository_Workspace(t *testing.T) {
	tempDir := t.TempDir()
	repo := NewFilesystemRepository(tempDir)

	// 1. Init
	if repo.IsInitialized() {
		t.Error("expected uninitialized workspace")
	}
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}
	if !repo.IsInitialized() {
		t.Error("expected initialized workspace")
	}

	// 2. Config defaults when file missing
	cfg, err := repo.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SpecsDir != "specs" || cfg.SourceExt != ".kt" {
		t.Errorf("unexpected default config: %+v", cfg)
	}

	// 3. Config roundtrip
	cfg.SourceDir = "app/src"
	cfg.Author = "Platform Team"
	if err := repo.SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := repo.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.SourceDir != "app/src" || loaded.Author != "Platform Team" {
		t.Errorf("unexpected loaded config: %+v", loaded)
	}

	// 3.1 Partial config keeps defaults for absent keys
	partial := []byte("specs_dir: docs/specs\n")
	if err := os.WriteFile(filepath.Join(tempDir, SpecsyncDir, ConfigFile), partial, 0600); err != nil {
		t.Fatal(err)
	}
	loaded, err = repo.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.SpecsDir != "docs/specs" {
		t.Errorf("expected overridden specs_dir, got %q", loaded.SpecsDir)
	}
	if loaded.SourceExt != ".kt" || loaded.Package != "com.example.app" {
		t.Errorf("expected defaults for absent keys, got %+v", loaded)
	}
	if err := repo.SaveConfig(domain.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	// 4. Catalog defaults when file missing
	catalog, err := repo.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Entries) == 0 || len(catalog.Core) == 0 {
		t.Error("expected built-in catalog")
	}

	// 4.1 Catalog file replaces the built-in wholesale
	override := []byte("entries:\n  - name: web-routing\n    category: Web\n    keywords: [route]\n    description: Routing\ncore: [web-routing]\n")
	if err := os.WriteFile(filepath.Join(tempDir, SpecsyncDir, CatalogFile), override, 0600); err != nil {
		t.Fatal(err)
	}
	catalog, err = repo.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Entries) != 1 || catalog.Entries[0].Name != "web-routing" {
		t.Errorf("unexpected catalog override: %+v", catalog)
	}

	// 5. Document roundtrip
	if err := repo.WriteDocument("specs/SPEC-001-login/SPEC.md", "content"); err != nil {
		t.Fatal(err)
	}
	text, err := repo.ReadDocument("specs/SPEC-001-login/SPEC.md")
	if err != nil {
		t.Fatal(err)
	}
	if text != "content" {
		t.Errorf("expected document roundtrip, got %q", text)
	}

	// 5.1 Missing document is an error
	if _, err := repo.ReadDocument("specs/missing/SPEC.md"); err == nil {
		t.Error("expected error for missing document")
	}

	// 5.2 Traversal is rejected
	if _, err := repo.ReadDocument("../outside.md"); err == nil {
		t.Error("expected error for document traversal")
	}
	if err := repo.WriteDocument("../outside.md", "x"); err == nil {
		t.Error("expected error for document write traversal")
	}

	// 6. Events Record/Load
	if err := repo.RecordEvent(domain.Event{ID: "e1", Action: "spec.created", SpecID: "SPEC-001"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.RecordEvent(domain.Event{ID: "e2", Action: "spec.synced"}); err != nil {
		t.Fatal(err)
	}
	events, err := repo.LoadEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].ID != "e1" || events[1].Action != "spec.synced" {
		t.Errorf("unexpected events: %+v", events)
	}

	// 6.1 Malformed lines are skipped
	eventsPath := filepath.Join(tempDir, SpecsyncDir, EventsFile)
	f, err := os.OpenFile(eventsPath, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()
	events, err = repo.LoadEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Errorf("expected malformed line to be skipped, got %d events", len(events))
	}

	// 7. ResolvePath traversal
	if _, err := repo.ResolvePath("../../etc/passwd"); err == nil {
		t.Error("expected error for traversal")
	}
	if _, err := repo.ResolvePath("sub/file.yaml"); err == nil {
		t.Error("expected error for nested path")
	}
	validPath, _ := repo.ResolvePath(ConfigFile)
	if !strings.Contains(validPath, ".specsync/config.yaml") {
		t.Errorf("unexpected path: %s", validPath)
	}
}

func TestFilesystemRepository_SpecNumbering(t *testing.T) {
	tempDir := t.TempDir()
	repo := NewFilesystemRepository(tempDir)
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}

	// Empty workspace starts at 001.
	num, err := repo.NextSpecNumber()
	if err != nil {
		t.Fatal(err)
	}
	if num != "001" {
		t.Errorf("expected 001, got %s", num)
	}

	if err := repo.WriteDocument("specs/SPEC-007-login/SPEC.md", "---\nspec_id: SPEC-007\nfeature: Login\n---\n"); err != nil {
		t.Fatal(err)
	}
	if err := repo.WriteDocument("specs/notes/SPEC.md", "no identifier here"); err != nil {
		t.Fatal(err)
	}

	num, err = repo.NextSpecNumber()
	if err != nil {
		t.Fatal(err)
	}
	if num != "008" {
		t.Errorf("expected 008, got %s", num)
	}

	files, err := repo.ListSpecFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 spec files, got %d", len(files))
	}
	if files[0] != "specs/SPEC-007-login/SPEC.md" {
		t.Errorf("expected lexical order, got %v", files)
	}
}

func TestFilesystemRepository_ListSpecFilesMissingDir(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}

	files, err := repo.ListSpecFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no spec files, got %v", files)
	}
}

func TestFilesystemRepository_ResolvePath_Edge(t *testing.T) {
	repo := NewFilesystemRepository("/tmp")

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Empty", "", true},
		{"Dot", ".", true},
		{"Parent", "..", true},
		{"Subdir", "sub/file", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.ResolvePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFilesystemRepository_InitError(t *testing.T) {
	tempFile, err := os.CreateTemp("", "specsync-init-fail-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tempFile.Name())

	repo := NewFilesystemRepository(tempFile.Name())
	if err := repo.Initialize(); err == nil {
		t.Error("expected init error when root is a file")
	}
}
