package world

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/encounters/internal/game/encounter"
)

// locationFile is the top-level structure of a mapping-shaped location file.
type locationFile struct {
	Location locationRecord `yaml:"location" json:"location"`
}

type locationRecord struct {
	ID          string                 `yaml:"id" json:"id"`
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description" json:"description"`
	Events      []encounter.Definition `yaml:"events" json:"events"`
}

// LoadBlueprintFromFile reads and validates a single location file.
//
// Postcondition: Returns a validated Blueprint or a non-nil error.
func LoadBlueprintFromFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading location file %s: %w", path, err)
	}
	return LoadBlueprintFromBytes(path, data)
}

// LoadBlueprintFromBytes parses a location. Two shapes are accepted: a
// `location:` mapping with id, name, description, and events, or a bare
// sequence of encounter records, in which case the location is named after
// the base name of source. Sources ending in .json are decoded as JSON.
//
// Postcondition: Returns a validated Blueprint or a non-nil error; malformed
// records yield a *encounter.ConfigurationError.
func LoadBlueprintFromBytes(source string, data []byte) (*Blueprint, error) {
	flat, err := isFlatSequence(source, data)
	if err != nil {
		return nil, err
	}

	var rec locationRecord
	if flat {
		defs, err := encounter.LoadDefinitionsFromBytes(source, data)
		if err != nil {
			return nil, err
		}
		rec = locationRecord{ID: idFromSource(source), Events: defs}
	} else {
		var file locationFile
		if err := encounter.Unmarshal(source, data, &file); err != nil {
			return nil, fmt.Errorf("parsing location %s: %w", source, err)
		}
		rec = file.Location
		if rec.ID == "" {
			return nil, fmt.Errorf("location in %s: id must not be empty", source)
		}
		if err := encounter.ValidateAll(source, rec.Events); err != nil {
			return nil, err
		}
	}

	name := rec.Name
	if name == "" {
		name = rec.ID
	}
	return &Blueprint{
		ID:          rec.ID,
		Name:        name,
		Description: strings.TrimSpace(rec.Description),
		Source:      source,
		Definitions: rec.Events,
	}, nil
}

// isFlatSequence reports whether data is a bare list of encounter records
// rather than a `location:` mapping.
func isFlatSequence(source string, data []byte) (bool, error) {
	if encounter.IsJSON(source) {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 {
			return false, fmt.Errorf("location file %s is empty", source)
		}
		return trimmed[0] == '[', nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("parsing location %s: %w", source, err)
	}
	if len(doc.Content) == 0 {
		return false, fmt.Errorf("location file %s is empty", source)
	}
	return doc.Content[0].Kind == yaml.SequenceNode, nil
}

// LoadBlueprintsFromDir loads every .yaml, .yml, and .json file in dir.
//
// Postcondition: Returns all validated blueprints in file-name order, or the
// first error. Duplicate ids and an empty directory are errors.
func LoadBlueprintsFromDir(dir string) ([]*Blueprint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading location directory %s: %w", dir, err)
	}

	var out []*Blueprint
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !isLocationFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		b, err := LoadBlueprintFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading location from %s: %w", entry.Name(), err)
		}
		if prev, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q in %s and %s", b.ID, prev, path)
		}
		seen[b.ID] = path
		out = append(out, b)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no location files found in %s", dir)
	}
	return out, nil
}

func isLocationFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func idFromSource(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
