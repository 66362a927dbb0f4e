package data

import (
	"fmt"
	"strings"
)

// Type is the elemental type of an archetype.
type Type uint8

const (
	TypeFire Type = iota + 1
	TypeWater
	TypeElectric
	TypeGrass
	TypeGhost
	TypeFighting
	TypePsychic
)

var typeNames = map[Type]string{
	TypeFire:     "fire",
	TypeWater:    "water",
	TypeElectric: "electric",
	TypeGrass:    "grass",
	TypeGhost:    "ghost",
	TypeFighting: "fighting",
	TypePsychic:  "psychic",
}

// String returns the lower-case type name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType converts a type name (case-insensitive) to Type.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown type %q", s)
}

// AbilityTag identifies the passive ability variant of an archetype.
// AbilityNone is the zero value.
type AbilityTag uint8

const (
	AbilityNone AbilityTag = iota
	AbilityStatic
	AbilityBlaze
	AbilityOvergrow
	AbilityShellArmor
	AbilityCurse
	AbilitySteadfast
)

var abilityNames = map[AbilityTag]string{
	AbilityNone:       "none",
	AbilityStatic:     "static",
	AbilityBlaze:      "blaze",
	AbilityOvergrow:   "overgrow",
	AbilityShellArmor: "shell_armor",
	AbilityCurse:      "curse",
	AbilitySteadfast:  "steadfast",
}

// String returns the snake_case ability name.
func (a AbilityTag) String() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAbilityTag converts an ability name to AbilityTag.
// Empty string and "none" map to AbilityNone; "shellArmor" is accepted as an alias.
func ParseAbilityTag(s string) (AbilityTag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "null", "~":
		return AbilityNone, nil
	case "shellarmor":
		return AbilityShellArmor, nil
	}
	for a, name := range abilityNames {
		if name == s {
			return a, nil
		}
	}
	return AbilityNone, fmt.Errorf("unknown ability %q", s)
}
