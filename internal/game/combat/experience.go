package combat

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/model"
)

// AwardXP gives the winner and loser their match experience, then levels
// both up. Returns levels gained by winner and loser.
func AwardXP(winner, loser *model.Combatant, rules config.Rules, notifier event.Notifier) (winnerLevels, loserLevels int) {
	if notifier == nil {
		notifier = event.Discard
	}

	winner.AddXP(rules.WinXP)
	loser.AddXP(rules.LossXP)

	notifier.Notify(event.Event{
		Kind:   event.KindXP,
		Actor:  winner.Label(),
		Text:   fmt.Sprintf("%s gained %d XP.", winner.Label(), rules.WinXP),
		Amount: rules.WinXP,
	})
	notifier.Notify(event.Event{
		Kind:   event.KindXP,
		Actor:  loser.Label(),
		Text:   fmt.Sprintf("%s gained %d XP.", loser.Label(), rules.LossXP),
		Amount: rules.LossXP,
	})

	return LevelUp(winner, rules, notifier), LevelUp(loser, rules, notifier)
}

// LevelUp spends XP in XPPerLevel chunks: each chunk raises the level by
// one, max HP by HPPerLevel and fully heals. XP carries over.
// Returns the number of levels gained.
func LevelUp(c *model.Combatant, rules config.Rules, notifier event.Notifier) int {
	if notifier == nil {
		notifier = event.Discard
	}

	oldLevel := c.Level()
	gained := 0
	for c.GainLevel(rules.XPPerLevel, rules.HPPerLevel) {
		gained++
		notifier.Notify(event.Event{
			Kind:   event.KindLevelUp,
			Actor:  c.Label(),
			Text:   fmt.Sprintf("%s leveled up! Now level %d. HP increased to %d.", c.Label(), c.Level(), c.MaxHP()),
			Amount: c.Level(),
		})
	}

	if gained > 0 {
		slog.Info("combatant leveled up",
			"combatant", c.Label(),
			"oldLevel", oldLevel,
			"newLevel", c.Level(),
			"maxHP", c.MaxHP(),
			"xp", c.XP())
	}
	return gained
}
