package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedSource reads catalog rows from a YAML file. Used for local
// development and for deployments that run without a database.
type SeedSource struct {
	path string
}

// NewSeedSource creates a seed source for the given file path.
func NewSeedSource(path string) *SeedSource {
	return &SeedSource{path: path}
}

type seedFile struct {
	Tasks []Row `yaml:"tasks"`
}

// FetchRows parses the seed file. The file is re-read on every call so a
// reload picks up edits without a restart.
func (s *SeedSource) FetchRows(_ context.Context) ([]Row, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog seed %s: %w", s.path, err)
	}
	if len(file.Tasks) == 0 {
		return nil, fmt.Errorf("catalog seed %s contains no tasks", s.path)
	}
	return file.Tasks, nil
}
