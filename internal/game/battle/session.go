package battle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/game/ability"
	"github.com/udisondev/battlego/internal/game/combat"
	"github.com/udisondev/battlego/internal/model"
)

// GymTrainers are the names computer opponents are drawn from.
var GymTrainers = []string{"Brock", "Misty", "Lt. Surge", "Giovanni", "Lorelei"}

// Entrant is one seat of a session: a combatant and who controls it.
type Entrant struct {
	Combatant  *model.Combatant
	Controller Controller
}

// Record is one finished match of a session.
type Record struct {
	Winner      Side
	Rounds      int
	WinnerLabel string
	LoserLabel  string
}

// Session keeps two entrants across a series of matches. XP and level
// survive rematches and archetype changes.
type Session struct {
	settings

	catalog  *data.Catalog
	entrants [2]Entrant
	history  []Record
}

// NewSession creates a session over catalog. one acts first in every match.
func NewSession(catalog *data.Catalog, one, two Entrant, opts ...Option) *Session {
	return &Session{
		settings: newSettings(opts),
		catalog:  catalog,
		entrants: [2]Entrant{one, two},
	}
}

// Entrant returns the seat of side.
func (s *Session) Entrant(side Side) Entrant { return s.entrants[side-1] }

// History returns finished matches, oldest first.
func (s *Session) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// PlayMatch runs one match, then awards XP and levels both entrants up.
func (s *Session) PlayMatch(ctx context.Context) (Result, error) {
	one, two := s.entrants[0], s.entrants[1]

	m := newMatch(s.settings, one.Combatant, two.Combatant, one.Controller, two.Controller)
	res, err := m.Run(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("match %d: %w", len(s.history)+1, err)
	}

	combat.AwardXP(res.WinnerCombatant, res.LoserCombatant, s.rules, s.notifier)

	s.history = append(s.history, Record{
		Winner:      res.Winner,
		Rounds:      res.Rounds,
		WinnerLabel: res.WinnerCombatant.Label(),
		LoserLabel:  res.LoserCombatant.Label(),
	})
	return res, nil
}

// ChangeArchetype rebuilds side's combatant from the archetype key, keeping
// owner, XP and level. Pending XP is spent on level-ups right away.
func (s *Session) ChangeArchetype(side Side, key string) (*model.Combatant, error) {
	arch, err := s.catalog.Get(key)
	if err != nil {
		return nil, fmt.Errorf("changing archetype of side %s: %w", side, err)
	}

	old := s.entrants[side-1].Combatant
	c := ability.NewCombatant(arch, old.Owner())
	c.Carry(old.Progress(), s.rules.HPPerLevel)
	combat.LevelUp(c, s.rules, s.notifier)

	s.entrants[side-1].Combatant = c

	slog.Info("archetype changed",
		"side", side,
		"owner", c.Owner(),
		"from", old.Name(),
		"to", c.Name(),
		"level", c.Level())
	return c, nil
}

// ReplaceOpponent seats a fresh gym trainer on side, keeping its controller.
func (s *Session) ReplaceOpponent(side Side) *model.Combatant {
	c := NewGymTrainer(s.catalog, s.roller)
	s.entrants[side-1].Combatant = c

	slog.Info("opponent replaced",
		"side", side,
		"trainer", c.Owner(),
		"archetype", c.Name())
	return c
}

// NewGymTrainer builds a level 1 combatant owned by a random gym trainer,
// with a random archetype from catalog.
func NewGymTrainer(catalog *data.Catalog, roller dice.Roller) *model.Combatant {
	owner := "Gym Trainer " + dice.Pick(roller, GymTrainers)
	arch := dice.Pick(roller, catalog.All())
	return ability.NewCombatant(arch, owner)
}
