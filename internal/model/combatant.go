package model

import (
	"fmt"
	"slices"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/game/event"
)

// Progress is the part of a combatant that survives between matches
// and across an archetype change.
type Progress struct {
	XP    int
	Level int
}

// Combatant — live battle participant built from an Archetype.
// Owned by exactly one match at a time; not safe for concurrent use.
type Combatant struct {
	archetype *data.Archetype
	owner     string

	// own copy, the archetype is shared
	moves []data.Move

	ability Ability
	state   AbilityState

	currentHP int
	maxHP     int

	ultimateCooldown int
	itemCharges      int

	xp    int
	level int
}

// NewCombatant creates a level 1 combatant at full HP.
// A nil ability behaves as AbilityNone.
func NewCombatant(archetype *data.Archetype, owner string, ability Ability) *Combatant {
	if ability == nil {
		ability = noAbility{}
	}
	return &Combatant{
		archetype: archetype,
		owner:     owner,
		moves:     archetype.Moves(),
		ability:   ability,
		currentHP: archetype.BaseHP(),
		maxHP:     archetype.BaseHP(),
		level:     1,
	}
}

// Carry applies progress from a previous combatant. Every level above 1
// adds hpPerLevel to max HP so level-up bonuses survive an archetype change.
func (c *Combatant) Carry(p Progress, hpPerLevel int) {
	if p.Level < 1 {
		p.Level = 1
	}
	c.xp = max(p.XP, 0)
	c.level = p.Level
	c.maxHP = c.archetype.BaseHP() + (p.Level-1)*hpPerLevel
	c.currentHP = c.maxHP
}

func (c *Combatant) Archetype() *data.Archetype { return c.archetype }
func (c *Combatant) Name() string               { return c.archetype.Display() }
func (c *Combatant) Owner() string              { return c.owner }
func (c *Combatant) Type() data.Type            { return c.archetype.Type() }
func (c *Combatant) Ultimate() data.Move        { return c.archetype.Ultimate() }
func (c *Combatant) Ability() Ability           { return c.ability }

// Label returns "<owner>'s <name>" for narration.
func (c *Combatant) Label() string {
	return fmt.Sprintf("%s's %s", c.owner, c.Name())
}

// Moves returns the move list in display order.
func (c *Combatant) Moves() []data.Move {
	return slices.Clone(c.moves)
}

// MovePower returns the power of the named move; unknown names report false.
func (c *Combatant) MovePower(name string) (int, bool) {
	for _, m := range c.moves {
		if m.Name == name {
			return m.Power, true
		}
	}
	return 0, false
}

// AbilityState returns the mutable per-match ability state.
func (c *Combatant) AbilityState() *AbilityState { return &c.state }

// CurrentHP returns current HP.
func (c *Combatant) CurrentHP() int { return c.currentHP }

// MaxHP returns max HP.
func (c *Combatant) MaxHP() int { return c.maxHP }

// SetCurrentHP sets current HP clamped to 0..maxHP.
func (c *Combatant) SetCurrentHP(hp int) {
	c.currentHP = min(max(hp, 0), c.maxHP)
}

// TakeDamage subtracts damage and returns HP before the hit.
func (c *Combatant) TakeDamage(damage int) (before int) {
	before = c.currentHP
	c.SetCurrentHP(c.currentHP - damage)
	return before
}

// Heal restores up to amount HP and returns how much was restored.
func (c *Combatant) Heal(amount int) int {
	before := c.currentHP
	c.SetCurrentHP(c.currentHP + amount)
	return c.currentHP - before
}

// Fainted reports whether HP reached zero.
func (c *Combatant) Fainted() bool { return c.currentHP <= 0 }

// HPAtMost reports whether current HP is at or below fraction of max HP.
func (c *Combatant) HPAtMost(fraction float64) bool {
	return float64(c.currentHP) <= fraction*float64(c.maxHP)
}

// UltimateCooldown returns rounds left until the ultimate is ready.
func (c *Combatant) UltimateCooldown() int { return c.ultimateCooldown }

// UltimateReady reports whether the ultimate can be used.
func (c *Combatant) UltimateReady() bool { return c.ultimateCooldown <= 0 }

// StartUltimateCooldown puts the ultimate on cooldown for rounds.
func (c *Combatant) StartUltimateCooldown(rounds int) {
	c.ultimateCooldown = max(rounds, 0)
}

// TickCooldown decrements the ultimate cooldown by one, floored at zero.
func (c *Combatant) TickCooldown() {
	if c.ultimateCooldown > 0 {
		c.ultimateCooldown--
	}
}

// ItemCharges returns remaining potions.
func (c *Combatant) ItemCharges() int { return c.itemCharges }

// UsePotion consumes one charge and heals. Returns false without any change
// when no charges remain.
func (c *Combatant) UsePotion(heal int) (healed int, ok bool) {
	if c.itemCharges <= 0 {
		return 0, false
	}
	c.itemCharges--
	return c.Heal(heal), true
}

// XP returns accumulated experience.
func (c *Combatant) XP() int { return c.xp }

// Level returns the current level.
func (c *Combatant) Level() int { return c.level }

// Progress returns xp and level for carrying over.
func (c *Combatant) Progress() Progress {
	return Progress{XP: c.xp, Level: c.level}
}

// AddXP adds experience. Negative amounts are ignored.
func (c *Combatant) AddXP(amount int) {
	if amount > 0 {
		c.xp += amount
	}
}

// GainLevel spends cost XP for one level: max HP grows by hpGain and the
// combatant is fully healed. Returns false if there is not enough XP.
func (c *Combatant) GainLevel(cost, hpGain int) bool {
	if cost <= 0 || c.xp < cost {
		return false
	}
	c.xp -= cost
	c.level++
	c.maxHP += hpGain
	c.currentHP = c.maxHP
	return true
}

// ResetForBattle clears per-match state. XP and level are untouched.
func (c *Combatant) ResetForBattle(itemCap int) {
	c.currentHP = c.maxHP
	c.ultimateCooldown = 0
	c.state = AbilityState{}
	c.itemCharges = max(itemCap, 0)
}

// MarkFirstHit records the first hit of the match.
// Returns true only on the first call after ResetForBattle.
func (c *Combatant) MarkFirstHit() bool {
	if c.state.FirstHitFired {
		return false
	}
	c.state.FirstHitFired = true
	return true
}

// LegalActions lists every action the combatant may take now:
// moves in display order, then the ultimate if ready, then an item if charges remain.
func (c *Combatant) LegalActions() []Action {
	actions := make([]Action, 0, len(c.moves)+2)
	for _, m := range c.moves {
		actions = append(actions, MoveAction(m.Name))
	}
	if c.UltimateReady() {
		actions = append(actions, UltimateAction())
	}
	if c.itemCharges > 0 {
		actions = append(actions, ItemAction())
	}
	return actions
}

// Status returns a snapshot for narration.
func (c *Combatant) Status() event.Status {
	return event.Status{
		Owner: c.owner,
		Name:  c.Name(),
		HP:    c.currentHP,
		MaxHP: c.maxHP,
		Level: c.level,
		XP:    c.xp,
	}
}
