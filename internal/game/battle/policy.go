package battle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/model"
)

var errNoMoves = errors.New("combatant has no moves")

// AutoPolicy is the computer-controlled Controller.
//
// Decision order: potion when HP is at or below HealThreshold of max, charges
// remain and a HealChance roll succeeds; otherwise the ultimate when ready and
// an UltimateChance roll succeeds; otherwise a uniformly random move.
// Rolls are only made when the preceding conditions hold.
type AutoPolicy struct {
	policy config.Policy
	roller dice.Roller
}

// NewAutoPolicy creates a policy controller.
func NewAutoPolicy(policy config.Policy, roller dice.Roller) *AutoPolicy {
	if roller == nil {
		roller = dice.New(0)
	}
	return &AutoPolicy{policy: policy, roller: roller}
}

func (p *AutoPolicy) RequestAction(_ context.Context, self, _ *model.Combatant, _ []model.Action) (model.Action, error) {
	action, err := p.decide(self)
	if err != nil {
		return model.Action{}, err
	}
	slog.Debug("auto policy decided",
		"combatant", self.Label(),
		"hp", self.CurrentHP(),
		"action", action)
	return action, nil
}

func (p *AutoPolicy) decide(self *model.Combatant) (model.Action, error) {
	if self.HPAtMost(p.policy.HealThreshold) && self.ItemCharges() > 0 && dice.Chance(p.roller, p.policy.HealChance) {
		return model.ItemAction(), nil
	}

	if self.UltimateReady() && dice.Chance(p.roller, p.policy.UltimateChance) {
		return model.UltimateAction(), nil
	}

	moves := self.Moves()
	if len(moves) == 0 {
		if self.UltimateReady() {
			return model.UltimateAction(), nil
		}
		return model.Action{}, errNoMoves
	}
	return model.MoveAction(dice.Pick(p.roller, moves).Name), nil
}
