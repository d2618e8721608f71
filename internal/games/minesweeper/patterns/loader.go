package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading patterns from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pattern loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pattern files.
// Invalid files are skipped. Returns patterns sorted by ID.
// A missing root directory yields no patterns and no error.
func (l *Loader) LoadAll() ([]Pattern, error) {
	var patterns []Pattern

	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil
	}

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		p, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		patterns = append(patterns, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("patterns: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].ID < patterns[j].ID
	})
	return patterns, nil
}

// LoadByID loads a specific pattern by ID.
func (l *Loader) LoadByID(id string) (Pattern, error) {
	patterns, err := l.LoadAll()
	if err != nil {
		return Pattern{}, err
	}
	for _, p := range patterns {
		if p.ID == id {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("patterns: %q not found in %s", id, l.Root)
}

// LoadFile loads a single pattern file. The ID defaults to the file name
// without extension and the name defaults to the ID.
func LoadFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("patterns: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var p Pattern
	switch ext {
	case ".yaml", ".yml":
		p, err = ParseYAML(data)
	case ".txt":
		p, err = ParseText(data)
	default:
		return Pattern{}, fmt.Errorf("patterns: unsupported extension: %s", ext)
	}
	if err != nil {
		return Pattern{}, fmt.Errorf("patterns: parsing file %s: %w", path, err)
	}

	if p.ID == "" {
		p.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	p.FilePath = path
	return p, nil
}
