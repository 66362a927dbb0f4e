package battle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/looplab/fsm"
)

// Turn states.
const (
	StateRoundStart   = "round_start"
	StateActor1Acting = "actor1_acting"
	StateActor2Acting = "actor2_acting"
	StatePostTurn     = "post_turn"
	StateCooldownTick = "cooldown_tick"
	StateMatchOver    = "match_over"
)

// Turn events.
const (
	evBeginRound     = "begin_round"
	evHalfTurnDone   = "half_turn_done"
	evRoundActed     = "round_acted"
	evEffectsApplied = "effects_applied"
	evNextRound      = "next_round"
	evFaint          = "faint"
)

// newTurnMachine builds the round cycle:
//
//	round_start → actor1_acting → actor2_acting → post_turn → cooldown_tick → round_start
//
// with match_over reachable from every state where HP can drop.
func newTurnMachine() *fsm.FSM {
	return fsm.NewFSM(
		StateRoundStart,
		fsm.Events{
			{Name: evBeginRound, Src: []string{StateRoundStart}, Dst: StateActor1Acting},
			{Name: evHalfTurnDone, Src: []string{StateActor1Acting}, Dst: StateActor2Acting},
			{Name: evRoundActed, Src: []string{StateActor2Acting}, Dst: StatePostTurn},
			{Name: evEffectsApplied, Src: []string{StatePostTurn}, Dst: StateCooldownTick},
			{Name: evNextRound, Src: []string{StateCooldownTick}, Dst: StateRoundStart},
			{Name: evFaint, Src: []string{StateActor1Acting, StateActor2Acting, StatePostTurn}, Dst: StateMatchOver},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				slog.Debug("turn state changed", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
}

// advance fires a turn event. Cancellation is checked by Run between
// half-turns, never inside a transition.
func (m *Match) advance(ctx context.Context, event string) error {
	if err := m.machine.Event(context.WithoutCancel(ctx), event); err != nil {
		return fmt.Errorf("turn machine %s from %s: %w", event, m.machine.Current(), err)
	}
	return nil
}
