package maptype

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/juusaw/maptype/tsresolve"
)

// Config bounds and shapes a traversal run. It is read-only for the
// duration of the run.
type Config struct {
	// FollowImports visits declarations from every file the program loaded,
	// not just the recognized set. Off by default, which keeps the traversal
	// closed over FileNames even when the entry source imports real
	// dependency files.
	FollowImports bool `json:"followImports"`

	// IncludeHeader asks output emitters to prepend their import header.
	// The core engine ignores it; the CLI and the iots emitter honor it.
	IncludeHeader bool `json:"includeHeader"`

	// FileNames is the recognized file set consulted when FollowImports is
	// false. Defaults to the session entry identifier.
	FileNames []string `json:"fileNames"`

	// RootDir anchors relative file resolution; defaults to the working
	// directory.
	RootDir string `json:"rootDir,omitempty"`
}

// DefaultConfig returns the defaults of the entry contract: a closed
// traversal over the in-memory entry source, with the output header enabled.
func DefaultConfig() Config {
	return Config{
		FollowImports: false,
		IncludeHeader: true,
		FileNames:     []string{tsresolve.EntryFileName},
	}
}

// LoadConfig reads a JSON config file, applying defaults for absent fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if len(c.FileNames) == 0 {
		return fmt.Errorf("fileNames must name at least one file")
	}
	return nil
}
