package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"workblox-site/pkg/models"
)

type catalogFile struct {
	Articles []models.Article `yaml:"articles"`
}

// LoadCatalog builds a catalog from a YAML file. Document order in the file
// becomes catalog order.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	catalog, err := NewCatalog(file.Articles)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}
