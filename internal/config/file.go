package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfigName is the optional per-project config file looked up in the
// root directory.
const FileConfigName = ".dir-digest.yml"

// FileConfig holds settings read from the project config file. Flags take
// precedence over any value set here.
type FileConfig struct {
	Extensions []string `yaml:"extensions"`
	Ignore     []string `yaml:"ignore"`
	Output     string   `yaml:"output"`
}

// LoadFile reads <rootDir>/.dir-digest.yml. Absence is not an error and
// yields nil.
func LoadFile(rootDir string) (*FileConfig, error) {
	path := filepath.Join(rootDir, FileConfigName)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: failed to read '%s': %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("config: failed to parse '%s': %w", path, err)
	}
	return &fc, nil
}
