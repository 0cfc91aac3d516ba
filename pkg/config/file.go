package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional per-project configuration read from
// .pipegen.yaml at the project root. Flags always win over file values; file
// values win over built-in defaults. Values pass through the same Resolve
// validation as flag input.
type FileConfig struct {
	CloudProvider  string   `yaml:"cloud_provider"`
	DeploymentType string   `yaml:"deployment_type"`
	Platforms      []string `yaml:"platforms"`
	Output         string   `yaml:"output"`
}

// LoadFile reads the project config file if present. A missing file is not
// an error and yields nil.
func LoadFile(projectPath string) (*FileConfig, error) {
	path := filepath.Join(projectPath, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &cfg, nil
}
