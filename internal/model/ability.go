package model

import (
	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/game/event"
)

// HookContext is passed to every ability hook.
type HookContext struct {
	Roller   dice.Roller
	Notifier event.Notifier
	Round    int
}

// Emit sends an ability narration event.
func (h HookContext) Emit(actor, text string) {
	if h.Notifier == nil {
		return
	}
	h.Notifier.Notify(event.Event{
		Kind:  event.KindAbility,
		Round: h.Round,
		Actor: actor,
		Text:  text,
	})
}

// Ability is a passive effect plugged into the four hook points of a match.
// Implementations live in package ability; the zero behavior of every hook is a no-op.
type Ability interface {
	Tag() data.AbilityTag

	// PreAttack adjusts the attacker's base power before the type multiplier.
	PreAttack(h HookContext, attacker, defender *Combatant, power int) int

	// OnReceive adjusts incoming damage after the critical roll. Result must be >= 0.
	OnReceive(h HookContext, defender *Combatant, damage int) int

	// PostTurn runs once per completed round for every combatant.
	PostTurn(h HookContext, actor, opponent *Combatant)

	// OnFirstHit runs once per match, the first time the combatant loses HP from full.
	OnFirstHit(h HookContext, defender *Combatant)
}

// AbilityState holds per-match ability flags. Only the struct of the
// combatant's own variant is ever touched; ResetForBattle zeroes everything.
type AbilityState struct {
	FirstHitFired bool
	Steadfast     SteadfastState
	Curse         CurseState
}

// SteadfastState — bonus power gained after the first hit taken.
type SteadfastState struct {
	Activated bool
	Bonus     int
}

// CurseState — recurring damage to the opponent while active.
type CurseState struct {
	Active bool
}

// noAbility is used when a combatant is built without an ability implementation.
type noAbility struct{}

func (noAbility) Tag() data.AbilityTag                                      { return data.AbilityNone }
func (noAbility) PreAttack(_ HookContext, _, _ *Combatant, power int) int   { return power }
func (noAbility) OnReceive(_ HookContext, _ *Combatant, damage int) int     { return damage }
func (noAbility) PostTurn(HookContext, *Combatant, *Combatant)              {}
func (noAbility) OnFirstHit(HookContext, *Combatant)                        {}
