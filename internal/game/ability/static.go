package ability

import (
	"fmt"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/model"
)

// Static — small independent chance to add flat power to any attack.
type Static struct{ Base }

func (Static) Tag() data.AbilityTag { return data.AbilityStatic }

func (Static) PreAttack(h model.HookContext, attacker, _ *model.Combatant, power int) int {
	if !dice.Chance(h.Roller, StaticChance) {
		return power
	}
	h.Emit(attacker.Label(), fmt.Sprintf("%s's Static activated! +%d damage.", attacker.Name(), StaticBonus))
	return power + StaticBonus
}
