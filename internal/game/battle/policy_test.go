package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/model"
	"github.com/udisondev/battlego/internal/testutil"
)

func TestAutoPolicy(t *testing.T) {
	tests := []struct {
		name       string
		hp         int
		charges    int
		cooldown   int
		floats     []float64
		ints       []int
		want       model.Action
		wantUnused int
	}{
		{
			name: "heals when low", hp: 30, charges: 3,
			floats: []float64{0.5},
			want:   model.ItemAction(),
		},
		{
			name: "failed heal roll falls through to ultimate", hp: 30, charges: 3,
			floats: []float64{0.7, 0.2},
			want:   model.UltimateAction(),
		},
		{
			name: "no heal roll above threshold", hp: 36, charges: 3,
			floats: []float64{0.1},
			want:   model.UltimateAction(),
		},
		{
			name: "no heal roll without charges", hp: 10, charges: 0,
			floats: []float64{0.1},
			want:   model.UltimateAction(),
		},
		{
			name: "random move", hp: 100, charges: 3,
			floats: []float64{0.3}, ints: []int{2},
			want: model.MoveAction("Iron Tail"),
		},
		{
			name: "no ultimate roll on cooldown", hp: 100, charges: 3, cooldown: 2,
			floats: []float64{0.0}, ints: []int{1},
			want:       model.MoveAction("Quick Attack"),
			wantUnused: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := testutil.Combatant(t, "pikachu", "Ash")
			self.ResetForBattle(tt.charges)
			self.SetCurrentHP(tt.hp)
			self.StartUltimateCooldown(tt.cooldown)
			opp := testutil.Combatant(t, "charizard", "Red")

			roller := dice.NewScript(tt.floats...).WithInts(tt.ints...)
			p := NewAutoPolicy(config.DefaultPolicy(), roller)

			got, err := p.RequestAction(context.Background(), self, opp, self.LegalActions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUnused, roller.Remaining())
		})
	}
}

func TestAutoPolicy_OnlyLegalActions(t *testing.T) {
	self := testutil.Combatant(t, "venusaur", "Erika")
	opp := testutil.Combatant(t, "charizard", "Red")
	p := NewAutoPolicy(config.DefaultPolicy(), dice.New(7))

	for i := range 500 {
		self.ResetForBattle(i % 2)
		self.SetCurrentHP(1 + i%self.MaxHP())
		self.StartUltimateCooldown(i % 4)

		legal := self.LegalActions()
		got, err := p.RequestAction(context.Background(), self, opp, legal)
		require.NoError(t, err)
		assert.Contains(t, legal, got)
	}
}
