package domain

import (
	"github.com/specsmith/specsync/internal/domain/capability"
)

// WorkspaceRepository handles the persistence of specsync artifacts: the
// .specsync/ workspace directory, spec documents, and the audit log.
// Documents travel as raw text; parsing stays in the domain layer.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	Root() string
	LoadConfig() (*Config, error)
	SaveConfig(cfg *Config) error
	LoadCatalog() (capability.Catalog, error)
	ReadDocument(path string) (string, error)
	WriteDocument(path string, content string) error
	ListSpecFiles() ([]string, error)
	NextSpecNumber() (string, error)
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
}

// Config is the serialized representation of .specsync/config.yaml.
type Config struct {
	SpecsDir  string   `yaml:"specs_dir"`
	SourceDir string   `yaml:"source_dir"`
	SourceExt string   `yaml:"source_ext"`
	Package   string   `yaml:"package"`
	Author    string   `yaml:"author"`
	Exclude   []string `yaml:"exclude,omitempty"`
}

// DefaultConfig returns the configuration assumed when no config file
// exists. Loading an absent config is never an error.
func DefaultConfig() *Config {
	return &Config{
		SpecsDir:  "specs",
		SourceDir: "src",
		SourceExt: ".kt",
		Package:   "com.example.app",
		Author:    "specsync",
	}
}
