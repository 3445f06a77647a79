package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a catalog for an alternate fiscal year from a YAML file and
// validates it. The file must be complete; there is no merging with the
// built-in catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load returns the catalog at path, or the built-in current catalog when
// path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Current(), nil
	}
	return LoadFile(path)
}
