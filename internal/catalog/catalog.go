// Package catalog reads and writes JSON car catalogs.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/automarket/internal/model"
)

// File is the on-disk catalog layout.
type File struct {
	Name string      `json:"name,omitempty"`
	Cars []model.Car `json:"cars"`
}

// ParseResult holds the outcome of reading one catalog file.
type ParseResult struct {
	Path    string
	Name    string
	Cars    []model.Car
	Skipped int // entries that failed validation
	Err     error
}

// ReadFile decodes a catalog. Cars that fail validation are skipped and counted
// rather than failing the whole file.
func ReadFile(path string) ParseResult {
	result := ParseResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("reading catalog: %w", err)
		return result
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		result.Err = fmt.Errorf("parsing catalog %s: %w", filepath.Base(path), err)
		return result
	}

	result.Name = f.Name
	for _, c := range f.Cars {
		if c.Validate() != nil {
			result.Skipped++
			continue
		}
		result.Cars = append(result.Cars, c)
	}
	return result
}

// WriteFile writes cars as an indented catalog. The file is replaced atomically.
func WriteFile(path, name string, cars []model.Car) error {
	if cars == nil {
		cars = []model.Car{}
	}
	data, err := json.MarshalIndent(File{Name: name, Cars: cars}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating catalog dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing catalog: %w", err)
	}
	return nil
}
