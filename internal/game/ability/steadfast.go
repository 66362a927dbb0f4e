package ability

import (
	"fmt"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/model"
)

// Steadfast: after taking its first hit of the match, the holder adds a
// permanent bonus to every later attack.
type Steadfast struct{ Base }

func (Steadfast) Tag() data.AbilityTag { return data.AbilitySteadfast }

func (Steadfast) PreAttack(_ model.HookContext, attacker, _ *model.Combatant, power int) int {
	st := attacker.AbilityState().Steadfast
	if !st.Activated {
		return power
	}
	return power + st.Bonus
}

func (Steadfast) OnFirstHit(h model.HookContext, defender *model.Combatant) {
	st := &defender.AbilityState().Steadfast
	if st.Activated {
		return
	}
	st.Activated = true
	st.Bonus = SteadfastBonus
	h.Emit(defender.Label(), fmt.Sprintf("%s's Steadfast activated! +%d damage on attacks from now on.", defender.Name(), SteadfastBonus))
}
