// Package ability implements the passive abilities of archetypes.
// Each variant embeds Base and overrides only the hooks it uses.
package ability

import (
	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/model"
)

// Base is the no-op implementation of every hook.
type Base struct{}

func (Base) Tag() data.AbilityTag { return data.AbilityNone }

func (Base) PreAttack(_ model.HookContext, _, _ *model.Combatant, power int) int { return power }

func (Base) OnReceive(_ model.HookContext, _ *model.Combatant, damage int) int { return damage }

func (Base) PostTurn(model.HookContext, *model.Combatant, *model.Combatant) {}

func (Base) OnFirstHit(model.HookContext, *model.Combatant) {}

// registry maps ability tag → factory.
var registry = map[data.AbilityTag]func() model.Ability{
	data.AbilityNone:       func() model.Ability { return Base{} },
	data.AbilityStatic:     func() model.Ability { return Static{} },
	data.AbilityBlaze:      func() model.Ability { return NewBlaze() },
	data.AbilityOvergrow:   func() model.Ability { return NewOvergrow() },
	data.AbilityShellArmor: func() model.Ability { return ShellArmor{} },
	data.AbilityCurse:      func() model.Ability { return Curse{} },
	data.AbilitySteadfast:  func() model.Ability { return Steadfast{} },
}

// For returns the implementation for tag. Unknown tags get the no-op Base.
func For(tag data.AbilityTag) model.Ability {
	factory, ok := registry[tag]
	if !ok {
		return Base{}
	}
	return factory()
}

// NewCombatant builds a combatant with the ability of its archetype.
func NewCombatant(archetype *data.Archetype, owner string) *model.Combatant {
	return model.NewCombatant(archetype, owner, For(archetype.Ability()))
}
