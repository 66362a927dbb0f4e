package data

import "slices"

// Move is a named attack with a base power.
type Move struct {
	Name  string
	Power int
}

// Archetype — immutable template of a creature species.
// Shared by reference between combatants; accessors never expose internal slices.
type Archetype struct {
	key      string
	display  string
	typ      Type
	baseHP   int
	moves    []Move
	ultimate Move
	ability  AbilityTag
}

func (a *Archetype) Key() string         { return a.key }
func (a *Archetype) Display() string     { return a.display }
func (a *Archetype) Type() Type          { return a.typ }
func (a *Archetype) BaseHP() int         { return a.baseHP }
func (a *Archetype) Ultimate() Move      { return a.ultimate }
func (a *Archetype) Ability() AbilityTag { return a.ability }

// Moves returns a copy of the move list in display order.
func (a *Archetype) Moves() []Move {
	return slices.Clone(a.moves)
}

// MovePower returns the base power of the named move.
func (a *Archetype) MovePower(name string) (int, bool) {
	for _, m := range a.moves {
		if m.Name == name {
			return m.Power, true
		}
	}
	return 0, false
}

// NewArchetype validates its arguments and builds an Archetype.
func NewArchetype(key, display string, typ Type, baseHP int, moves []Move, ultimate Move, ability AbilityTag) (*Archetype, error) {
	a := &Archetype{
		key:      key,
		display:  display,
		typ:      typ,
		baseHP:   baseHP,
		moves:    slices.Clone(moves),
		ultimate: ultimate,
		ability:  ability,
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}
