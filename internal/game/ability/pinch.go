package ability

import (
	"fmt"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/model"
)

// Pinch adds flat power while the attacker is at or below PinchThreshold of max HP.
// Blaze and Overgrow are Pinch with different bonuses.
type Pinch struct {
	Base
	tag   data.AbilityTag
	label string
	bonus int
}

// NewBlaze returns the fire-type pinch ability.
func NewBlaze() Pinch {
	return Pinch{tag: data.AbilityBlaze, label: "Blaze", bonus: BlazeBonus}
}

// NewOvergrow returns the grass-type pinch ability.
func NewOvergrow() Pinch {
	return Pinch{tag: data.AbilityOvergrow, label: "Overgrow", bonus: OvergrowBonus}
}

func (p Pinch) Tag() data.AbilityTag { return p.tag }

// Bonus returns the flat power bonus.
func (p Pinch) Bonus() int { return p.bonus }

func (p Pinch) PreAttack(h model.HookContext, attacker, _ *model.Combatant, power int) int {
	if !attacker.HPAtMost(PinchThreshold) {
		return power
	}
	h.Emit(attacker.Label(), fmt.Sprintf("%s's %s! +%d damage.", attacker.Name(), p.label, p.bonus))
	return power + p.bonus
}
