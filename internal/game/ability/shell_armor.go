package ability

import (
	"fmt"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/model"
)

// ShellArmor reduces every incoming hit by a flat amount, never below zero.
type ShellArmor struct{ Base }

func (ShellArmor) Tag() data.AbilityTag { return data.AbilityShellArmor }

func (ShellArmor) OnReceive(h model.HookContext, defender *model.Combatant, damage int) int {
	h.Emit(defender.Label(), fmt.Sprintf("%s's Shell Armor reduced damage by %d.", defender.Name(), ShellArmorReduction))
	return max(damage-ShellArmorReduction, 0)
}
