package battle

import (
	"context"

	"github.com/udisondev/battlego/internal/model"
)

// Controller supplies decisions for one side of a match.
//
// legal lists the actions the engine will accept right now. A controller may
// still return something outside it: the engine rejects it with
// ErrUltimateOnCooldown or ErrNoItemCharges, emits a rejection event and asks again.
// Any error returned by RequestAction aborts the match.
type Controller interface {
	RequestAction(ctx context.Context, self, opponent *model.Combatant, legal []model.Action) (model.Action, error)
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(ctx context.Context, self, opponent *model.Combatant, legal []model.Action) (model.Action, error)

func (f ControllerFunc) RequestAction(ctx context.Context, self, opponent *model.Combatant, legal []model.Action) (model.Action, error) {
	return f(ctx, self, opponent, legal)
}
