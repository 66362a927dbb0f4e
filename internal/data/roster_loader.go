package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFile is the YAML layout of a custom roster:
//
//	archetypes:
//	  - key: pikachu
//	    display: Pikachu
//	    type: electric
//	    base_hp: 100
//	    moves:
//	      - {name: Thunderbolt, power: 22}
//	    ultimate: {name: Volt Tackle, power: 65}
//	    ability: static
type rosterFile struct {
	Archetypes []rosterEntry `yaml:"archetypes"`
}

type rosterEntry struct {
	Key      string       `yaml:"key"`
	Display  string       `yaml:"display"`
	Type     string       `yaml:"type"`
	BaseHP   int          `yaml:"base_hp"`
	Moves    []rosterMove `yaml:"moves"`
	Ultimate rosterMove   `yaml:"ultimate"`
	Ability  string       `yaml:"ability"`
}

type rosterMove struct {
	Name  string `yaml:"name"`
	Power int    `yaml:"power"`
}

// ParseCatalog builds a catalog from YAML roster bytes.
// Moves are a YAML sequence so that display order survives decoding.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}

	archetypes := make([]*Archetype, 0, len(file.Archetypes))
	for i, e := range file.Archetypes {
		typ, err := ParseType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s): %v", ErrInvalidArchetype, i, e.Key, err)
		}
		ability, err := ParseAbilityTag(e.Ability)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s): %v", ErrInvalidArchetype, i, e.Key, err)
		}
		moves := make([]Move, 0, len(e.Moves))
		for _, m := range e.Moves {
			moves = append(moves, Move{Name: m.Name, Power: m.Power})
		}
		display := e.Display
		if display == "" {
			display = e.Key
		}
		a, err := NewArchetype(e.Key, display, typ, e.BaseHP, moves, Move{Name: e.Ultimate.Name, Power: e.Ultimate.Power}, ability)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		archetypes = append(archetypes, a)
	}

	return NewCatalog(archetypes...)
}

// LoadCatalog loads a roster from a YAML file.
// An empty path selects the built-in roster.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}

	c, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("loading roster %s: %w", path, err)
	}

	slog.Info("loaded roster", "path", path, "count", c.Len())
	return c, nil
}
