package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"

	"github.com/specsmith/specsync/internal/domain"
	"github.com/specsmith/specsync/internal/domain/capability"
)

const SpecsyncDir = ".specsync"
const ConfigFile = "config.yaml"
const CatalogFile = "catalog.yaml"
const EventsFile = "events.jsonl"

// SpecFileName is the conventional name of a spec document inside its
// feature directory.
const SpecFileName = "SPEC.md"

var specIDPattern = regexp.MustCompile(`spec_id:\s*SPEC-(\d+)`)

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

var _ domain.WorkspaceRepository = (*FilesystemRepository)(nil)

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .specsync directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, SpecsyncDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Must stay a direct child of .specsync
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

// resolveWorkspacePath joins a workspace-relative document path to the root
// and rejects anything that escapes it.
func (r *FilesystemRepository) resolveWorkspacePath(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("document path cannot be empty")
	}

	rootClean := filepath.Clean(r.root)
	cleanPath := filepath.Clean(filepath.Join(rootClean, filepath.FromSlash(rel)))
	if cleanPath != rootClean && !strings.HasPrefix(cleanPath, rootClean+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid document path: %s", rel)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, SpecsyncDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .specsync directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, SpecsyncDir))
	return err == nil
}

// LoadConfig reads .specsync/config.yaml. A missing file yields the default
// configuration; keys absent from the file keep their default values.
func (r *FilesystemRepository) LoadConfig() (*domain.Config, error) {
	path, err := r.ResolvePath(ConfigFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func (r *FilesystemRepository) SaveConfig(cfg *domain.Config) error {
	path, err := r.ResolvePath(ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

// LoadCatalog reads .specsync/catalog.yaml. A missing file yields the
// built-in capability catalog; a present file replaces it wholesale.
func (r *FilesystemRepository) LoadCatalog() (capability.Catalog, error) {
	path, err := r.ResolvePath(CatalogFile)
	if err != nil {
		return capability.Catalog{}, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return capability.DefaultCatalog(), nil
		}
		return capability.Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog capability.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return capability.Catalog{}, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	return catalog, nil
}

// ReadDocument returns the raw text of a workspace document.
func (r *FilesystemRepository) ReadDocument(path string) (string, error) {
	retryer := retry.New[string](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (string, error) {
		fullPath, err := r.resolveWorkspacePath(path)
		if err != nil {
			return "", err
		}

		// #nosec G304 -- Path is resolved and validated via resolveWorkspacePath
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return "", fmt.Errorf("failed to read document %s: %w", path, err)
		}

		return string(data), nil
	})
}

// WriteDocument writes a workspace document, creating parent directories as
// needed.
func (r *FilesystemRepository) WriteDocument(path string, content string) error {
	fullPath, err := r.resolveWorkspacePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0700); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	return os.WriteFile(fullPath, []byte(content), 0600)
}

// ListSpecFiles returns the workspace-relative paths of every SPEC.md under
// the configured specs directory, in lexical order. A missing specs
// directory yields an empty list.
func (r *FilesystemRepository) ListSpecFiles() ([]string, error) {
	cfg, err := r.LoadConfig()
	if err != nil {
		return nil, err
	}

	specsRoot := filepath.Join(r.root, cfg.SpecsDir)
	if _, err := os.Stat(specsRoot); err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to stat specs directory: %w", err)
	}

	var files []string
	walkErr := filepath.WalkDir(specsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != SpecFileName {
			return nil
		}
		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to list spec files: %w", walkErr)
	}

	return files, nil
}

// NextSpecNumber returns the zero-padded number following the highest
// spec_id found in the workspace, or "001" when none exist.
func (r *FilesystemRepository) NextSpecNumber() (string, error) {
	files, err := r.ListSpecFiles()
	if err != nil {
		return "", err
	}

	highest := 0
	for _, f := range files {
		content, err := r.ReadDocument(f)
		if err != nil {
			return "", err
		}
		m := specIDPattern.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%03d", highest+1), nil
}
