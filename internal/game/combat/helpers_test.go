package combat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/game/ability"
	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/model"
)

// newPlain builds a combatant without its ability, reset for battle.
func newPlain(t *testing.T, key, owner string) *model.Combatant {
	t.Helper()
	arch, err := data.DefaultCatalog().Get(key)
	require.NoError(t, err)
	c := model.NewCombatant(arch, owner, nil)
	c.ResetForBattle(config.DefaultRules().PotionsPerBattle)
	return c
}

// newWithAbility builds a combatant with its archetype ability, reset for battle.
func newWithAbility(t *testing.T, key, owner string) *model.Combatant {
	t.Helper()
	arch, err := data.DefaultCatalog().Get(key)
	require.NoError(t, err)
	c := ability.NewCombatant(arch, owner)
	c.ResetForBattle(config.DefaultRules().PotionsPerBattle)
	return c
}

// newTestResolver returns a resolver with default rules and a recording notifier.
func newTestResolver(r dice.Roller) (*Resolver, *event.Recorder) {
	rec := &event.Recorder{}
	return NewResolver(config.DefaultRules(), r, rec), rec
}
