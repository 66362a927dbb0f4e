package data

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrInvalidArchetype = errors.New("invalid archetype")
	ErrEmptyCatalog     = errors.New("catalog has no archetypes")
)

// Catalog is the read-only roster of archetypes, loaded once at startup.
// Keys() preserves load order, which is also the roster display order.
type Catalog struct {
	byKey map[string]*Archetype
	keys  []string
}

// NewCatalog builds a catalog from archetypes. Keys must be unique.
func NewCatalog(archetypes ...*Archetype) (*Catalog, error) {
	if len(archetypes) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		byKey: make(map[string]*Archetype, len(archetypes)),
		keys:  make([]string, 0, len(archetypes)),
	}
	for _, a := range archetypes {
		if _, dup := c.byKey[a.key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidArchetype, a.key)
		}
		c.byKey[a.key] = a
		c.keys = append(c.keys, a.key)
	}
	return c, nil
}

// DefaultCatalog returns the built-in roster.
func DefaultCatalog() *Catalog {
	archetypes := make([]*Archetype, 0, len(archetypeDefs))
	for i := range archetypeDefs {
		def := archetypeDefs[i]
		a, err := NewArchetype(def.key, def.display, def.typ, def.baseHP, def.moves, def.ultimate, def.ability)
		if err != nil {
			// built-in data is covered by tests
			panic(fmt.Sprintf("built-in archetype %q: %v", def.key, err))
		}
		archetypes = append(archetypes, a)
	}
	c, err := NewCatalog(archetypes...)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	slog.Debug("loaded built-in archetypes", "count", c.Len())
	return c
}

// Get returns the archetype for key (case-insensitive).
func (c *Catalog) Get(key string) (*Archetype, error) {
	a, ok := c.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, key)
	}
	return a, nil
}

// Keys returns archetype keys in roster order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// All returns archetypes in roster order.
func (c *Catalog) All() []*Archetype {
	out := make([]*Archetype, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.byKey[k])
	}
	return out
}

// Len returns the number of archetypes.
func (c *Catalog) Len() int { return len(c.keys) }

func (a *Archetype) validate() error {
	if a.key == "" || a.key != strings.ToLower(a.key) {
		return fmt.Errorf("%w: key %q must be non-empty lower case", ErrInvalidArchetype, a.key)
	}
	if a.display == "" {
		return fmt.Errorf("%w: %s: empty display name", ErrInvalidArchetype, a.key)
	}
	if _, ok := typeNames[a.typ]; !ok {
		return fmt.Errorf("%w: %s: unknown type %d", ErrInvalidArchetype, a.key, a.typ)
	}
	if a.baseHP <= 0 {
		return fmt.Errorf("%w: %s: base HP must be positive", ErrInvalidArchetype, a.key)
	}
	if len(a.moves) == 0 {
		return fmt.Errorf("%w: %s: no moves", ErrInvalidArchetype, a.key)
	}
	seen := make(map[string]struct{}, len(a.moves))
	for _, m := range a.moves {
		if m.Name == "" || m.Power <= 0 {
			return fmt.Errorf("%w: %s: move %q needs a name and positive power", ErrInvalidArchetype, a.key, m.Name)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("%w: %s: duplicate move %q", ErrInvalidArchetype, a.key, m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	if a.ultimate.Name == "" || a.ultimate.Power <= 0 {
		return fmt.Errorf("%w: %s: ultimate needs a name and positive power", ErrInvalidArchetype, a.key)
	}
	if _, ok := abilityNames[a.ability]; !ok {
		return fmt.Errorf("%w: %s: unknown ability %d", ErrInvalidArchetype, a.key, a.ability)
	}
	return nil
}
