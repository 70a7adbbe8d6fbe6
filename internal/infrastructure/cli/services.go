package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specsmith/specsync/internal/application"
	"github.com/specsmith/specsync/internal/infrastructure/storage"
)

// services bundles the application services every command wires the same way.
type services struct {
	Repo     *storage.FilesystemRepository
	Audit    *application.AuditService
	Spec     *application.SpecService
	Sync     *application.SyncService
	Validate *application.ValidateService
	Generate *application.GenerateService
}

func loadServices() (*services, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	repo := storage.NewFilesystemRepository(root)
	audit := application.NewAuditService(repo)
	return &services{
		Repo:     repo,
		Audit:    audit,
		Spec:     application.NewSpecService(repo, audit),
		Sync:     application.NewSyncService(repo, audit),
		Validate: application.NewValidateService(repo),
		Generate: application.NewGenerateService(repo, audit),
	}, nil
}

// workspaceRelative turns a user-supplied path into a path relative to the
// workspace root, which is what the repository works with.
func workspaceRelative(root, userPath string) (string, error) {
	abs, err := filepath.Abs(userPath)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", userPath, err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("path %q is outside the workspace: %w", userPath, err)
	}
	return filepath.ToSlash(rel), nil
}
