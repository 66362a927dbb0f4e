package ability

import (
	"fmt"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/model"
)

// Curse drains the opponent after every round while the curse is active.
// Nothing in the ability itself sets the flag: see Activate.
type Curse struct{ Base }

func (Curse) Tag() data.AbilityTag { return data.AbilityCurse }

func (Curse) PostTurn(h model.HookContext, actor, opponent *model.Combatant) {
	if !actor.AbilityState().Curse.Active {
		return
	}
	opponent.TakeDamage(CurseTick)
	h.Emit(actor.Label(), fmt.Sprintf("%s's Curse deals %d damage to %s!", actor.Name(), CurseTick, opponent.Name()))
}

// Activate turns the curse on for c. No-op unless c holds the Curse ability.
// Returns true if the curse became active.
func Activate(c *model.Combatant) bool {
	if c.Ability().Tag() != data.AbilityCurse {
		return false
	}
	st := &c.AbilityState().Curse
	if st.Active {
		return false
	}
	st.Active = true
	return true
}
