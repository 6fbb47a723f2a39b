package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codesweep/codesweep/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".codesweep.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .codesweep.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .codesweep.yaml from the target directory, falling back to the
// parent directory when target is a file. A missing file is not an error:
// the zero config is returned. Rule and language names are checked by the
// session, which owns the rule registry.
func (l *YAMLLoader) Load(target string) (domain.ProjectConfig, error) {
	dir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		dir = filepath.Dir(target)
	}

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultProjectConfig(), nil
		}
		return domain.ProjectConfig{}, &domain.FileAccessError{Path: filepath.Join(dir, fileName), Op: "read", Err: err}
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, &domain.ConfigurationError{
			Reason: fmt.Sprintf("parsing %s: %v", fileName, err),
		}
	}
	return cfg, nil
}
