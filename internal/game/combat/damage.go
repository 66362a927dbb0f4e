package combat

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/model"
)

// Outcome describes one resolved attack.
type Outcome struct {
	Action     model.Action
	Label      string  // move name, or "ULTIMATE <name>"
	Power      int     // base power after the attacker's pre-attack hook
	Multiplier float64 // type multiplier
	Critical   bool
	Damage     int // after the defender's on-receive hook, never negative
	Narration  string
}

// Resolver turns (attacker, defender, action) into damage.
// Holds no per-match state besides the round used to tag ability events.
type Resolver struct {
	rules    config.Rules
	roller   dice.Roller
	notifier event.Notifier
	round    int
}

// NewResolver creates a resolver. A nil notifier discards ability narration.
func NewResolver(rules config.Rules, roller dice.Roller, notifier event.Notifier) *Resolver {
	if notifier == nil {
		notifier = event.Discard
	}
	return &Resolver{
		rules:    rules,
		roller:   roller,
		notifier: notifier,
	}
}

// SetRound sets the round number attached to ability events.
func (r *Resolver) SetRound(round int) { r.round = round }

// Rules returns the combat constants in use.
func (r *Resolver) Rules() config.Rules { return r.rules }

// HookContext returns the context handed to ability hooks.
func (r *Resolver) HookContext() model.HookContext {
	return model.HookContext{Roller: r.roller, Notifier: r.notifier, Round: r.round}
}

// TypeMultiplier returns the advantage multiplier for an ordered pair,
// the disadvantage multiplier for the reverse of a listed pair, else 1.0.
func (r *Resolver) TypeMultiplier(attacker, defender data.Type) float64 {
	switch data.MatchupOf(attacker, defender) {
	case data.MatchupAdvantage:
		return r.rules.AdvantageMultiplier
	case data.MatchupDisadvantage:
		return r.rules.DisadvantageMultiplier
	default:
		return 1.0
	}
}

// CalcCrit rolls a critical hit with the configured chance.
func (r *Resolver) CalcCrit() bool {
	return dice.Chance(r.roller, r.rules.CritChance)
}

// CalcDamage = round(power × multiplier × crit).
// Halves round away from zero (math.Round).
func CalcDamage(power int, multiplier float64, crit bool, critMultiplier float64) int {
	dmg := float64(power) * multiplier
	if crit {
		dmg *= critMultiplier
	}
	return int(math.Round(dmg))
}

// ResolveAttack applies one attack to defender and returns its outcome.
//
// Order: base power → attacker pre-attack hook → type multiplier → critical
// roll → rounding → defender on-receive hook → HP → first-hit hook.
// An unknown move name resolves to power 0; nothing is rejected here.
func (r *Resolver) ResolveAttack(attacker, defender *model.Combatant, action model.Action) Outcome {
	h := r.HookContext()

	out := Outcome{Action: action}
	var power int
	if action.Kind == model.ActionUltimate {
		ult := attacker.Ultimate()
		power = ult.Power
		out.Label = "ULTIMATE " + ult.Name
	} else {
		power, _ = attacker.MovePower(action.Move)
		out.Label = action.Move
	}

	power = attacker.Ability().PreAttack(h, attacker, defender, power)
	out.Power = power

	out.Multiplier = r.TypeMultiplier(attacker.Type(), defender.Type())
	out.Critical = r.CalcCrit()

	damage := CalcDamage(power, out.Multiplier, out.Critical, r.rules.CritMultiplier)
	damage = max(defender.Ability().OnReceive(h, defender, damage), 0)
	out.Damage = damage

	before := defender.TakeDamage(damage)
	if before == defender.MaxHP() && damage > 0 && defender.MarkFirstHit() {
		defender.Ability().OnFirstHit(h, defender)
	}

	out.Narration = narrate(attacker, out)

	slog.Debug("attack resolved",
		"round", r.round,
		"attacker", attacker.Label(),
		"defender", defender.Label(),
		"action", out.Label,
		"power", out.Power,
		"multiplier", out.Multiplier,
		"critical", out.Critical,
		"damage", out.Damage,
		"defenderHP", defender.CurrentHP())

	return out
}

func narrate(attacker *model.Combatant, out Outcome) string {
	s := fmt.Sprintf("%s used %s and dealt %d dmg", attacker.Label(), out.Label, out.Damage)
	if out.Multiplier != 1.0 {
		s += fmt.Sprintf(" (type x%g)", out.Multiplier)
	}
	if out.Critical {
		s += " (CRITICAL!)"
	}
	return s
}
