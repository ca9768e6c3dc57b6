package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Drivers []Driver `yaml:"drivers" json:"drivers"`
}

// LoadFS walks the provided filesystem and parses every YAML/JSON catalog
// file, concatenating drivers in walk order. Files with other extensions are
// skipped. Duplicate or empty driver names are errors.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return New(nil), nil
	}

	var drivers []Driver
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for _, driver := range doc.Drivers {
			name := strings.TrimSpace(driver.Name)
			if name == "" {
				return fmt.Errorf("catalog: file %s declares a driver with an empty name", path)
			}
			if origin, exists := seen[name]; exists {
				return fmt.Errorf("catalog: duplicate driver %q (files %s, %s)", name, origin, path)
			}
			seen[name] = path
			driver.Name = name
			drivers = append(drivers, driver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(drivers), nil
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
