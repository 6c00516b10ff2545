// Package hymnal loads the static hymn dataset.
package hymnal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eunyuson/graceroom/internal/domain/hymn"
)

// file is the on-disk YAML shape of the dataset.
type file struct {
	Hymns []hymn.Hymn `yaml:"hymns"`
}

// LoadFile reads the hymn dataset from a YAML file.
func LoadFile(path string) ([]hymn.Hymn, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read hymn dataset %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse hymn dataset %s: %w", path, err)
	}

	for i, h := range f.Hymns {
		if h.Number <= 0 {
			return nil, fmt.Errorf("hymn dataset %s: entry %d has no number", path, i)
		}
		if h.Title == "" {
			return nil, fmt.Errorf("hymn dataset %s: hymn %d has no title", path, h.Number)
		}
	}

	return f.Hymns, nil
}
