package frozenlake

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var builtinMaps = map[string][]string{
	"4x4": {
		"SFFF",
		"FHFH",
		"FFFH",
		"HFFG",
	},
	"8x8": {
		"SFFFFFFF",
		"FFFFFFFF",
		"FFFHFFFF",
		"FFFFFHFF",
		"FFFHFFFF",
		"FHHFFFHF",
		"FHFFHFHF",
		"FFFHFFFG",
	},
}

// Builtins lists the built-in map names.
func Builtins() []string {
	names := make([]string, 0, len(builtinMaps))
	for name := range builtinMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinDesc returns the descriptor of a built-in map.
func BuiltinDesc(name string) ([]string, bool) {
	desc, ok := builtinMaps[name]
	return desc, ok
}

type mapFile struct {
	Name string   `yaml:"name"`
	Desc []string `yaml:"desc"`
}

// LoadMapFile reads a custom map from a YAML file of the form
//
//	name: ponds
//	desc:
//	  - SFFH
//	  - FHFF
//	  - FFFG
//
// and returns its name and descriptor after validation.
func LoadMapFile(path string) (string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read map file: %w", err)
	}
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("parse map file %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(path, ".yaml")
	}
	if err := validateDesc(f.Desc); err != nil {
		return "", nil, fmt.Errorf("map file %s: %w", path, err)
	}
	return f.Name, f.Desc, nil
}

func validateDesc(desc []string) error {
	if len(desc) == 0 {
		return fmt.Errorf("empty map descriptor")
	}
	cols := len(desc[0])
	if cols == 0 {
		return fmt.Errorf("empty map row")
	}
	starts, goals := 0, 0
	for r, row := range desc {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d tiles, want %d", r, len(row), cols)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case tileStart:
				starts++
			case tileGoal:
				goals++
			case tileFrozen, tileHole:
			default:
				return fmt.Errorf("row %d: bad tile %q", r, row[c])
			}
		}
	}
	if starts != 1 {
		return fmt.Errorf("want exactly one S tile, have %d", starts)
	}
	if goals == 0 {
		return fmt.Errorf("want at least one G tile")
	}
	return nil
}
