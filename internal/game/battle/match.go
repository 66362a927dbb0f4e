package battle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/looplab/fsm"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/game/ability"
	"github.com/udisondev/battlego/internal/game/combat"
	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/model"
)

// Side identifies a participant slot. Side one always acts first.
type Side int

const (
	SideOne Side = iota + 1
	SideTwo
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideOne {
		return SideTwo
	}
	return SideOne
}

func (s Side) String() string {
	switch s {
	case SideOne:
		return "one"
	case SideTwo:
		return "two"
	default:
		return "none"
	}
}

// Result of a finished match.
type Result struct {
	Winner Side
	Loser  Side
	Rounds int

	WinnerCombatant *model.Combatant
	LoserCombatant  *model.Combatant
}

// settings shared by Match and Session.
type settings struct {
	rules    config.Rules
	roller   dice.Roller
	notifier event.Notifier
	pacing   time.Duration
}

func newSettings(opts []Option) settings {
	s := settings{
		rules:    config.DefaultRules(),
		notifier: event.Discard,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.roller == nil {
		s.roller = dice.New(0)
	}
	return s
}

// Option configures a Match or a Session.
type Option func(*settings)

// WithPacing sets a cosmetic delay between half-turns.
func WithPacing(d time.Duration) Option {
	return func(s *settings) { s.pacing = max(d, 0) }
}

// WithNotifier sets the narration sink.
func WithNotifier(n event.Notifier) Option {
	return func(s *settings) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithRules overrides the default combat constants.
func WithRules(r config.Rules) Option {
	return func(s *settings) { s.rules = r }
}

// WithRoller sets the random source used for critical hits, abilities and
// opponent selection.
func WithRoller(r dice.Roller) Option {
	return func(s *settings) {
		if r != nil {
			s.roller = r
		}
	}
}

// Match runs one battle between two combatants to completion.
// A Match is single-use and not safe for concurrent use.
type Match struct {
	settings

	fighters    [2]*model.Combatant
	controllers [2]Controller

	resolver *combat.Resolver
	machine  *fsm.FSM
	round    int
}

// NewMatch creates a match; one acts first every round.
func NewMatch(one, two *model.Combatant, c1, c2 Controller, opts ...Option) *Match {
	return newMatch(newSettings(opts), one, two, c1, c2)
}

func newMatch(s settings, one, two *model.Combatant, c1, c2 Controller) *Match {
	m := &Match{
		settings:    s,
		fighters:    [2]*model.Combatant{one, two},
		controllers: [2]Controller{c1, c2},
		machine:     newTurnMachine(),
	}
	m.resolver = combat.NewResolver(m.rules, m.roller, m.notifier)
	return m
}

// State returns the current turn state.
func (m *Match) State() string { return m.machine.Current() }

// Round returns the round in progress (1-based).
func (m *Match) Round() int { return m.round }

func (m *Match) fighter(s Side) *model.Combatant { return m.fighters[s-1] }

// Run plays rounds until a combatant faints. Controller errors and context
// cancellation abort the match and are returned wrapped.
func (m *Match) Run(ctx context.Context) (Result, error) {
	one, two := m.fighter(SideOne), m.fighter(SideTwo)
	one.ResetForBattle(m.rules.PotionsPerBattle)
	two.ResetForBattle(m.rules.PotionsPerBattle)
	m.round = 1

	slog.Info("match started",
		"one", one.Label(),
		"two", two.Label())

	for {
		m.resolver.SetRound(m.round)
		m.emit(event.Event{
			Kind:   event.KindRoundStart,
			Text:   fmt.Sprintf("--- TURN %d ---", m.round),
			Status: []event.Status{one.Status(), two.Status()},
		})

		if err := m.advance(ctx, evBeginRound); err != nil {
			return Result{}, err
		}
		if done, res, err := m.playHalf(ctx, SideOne); done || err != nil {
			return res, err
		}

		if err := m.pause(ctx); err != nil {
			return Result{}, err
		}
		if err := m.advance(ctx, evHalfTurnDone); err != nil {
			return Result{}, err
		}
		if done, res, err := m.playHalf(ctx, SideTwo); done || err != nil {
			return res, err
		}

		if err := m.advance(ctx, evRoundActed); err != nil {
			return Result{}, err
		}
		h := m.resolver.HookContext()
		one.Ability().PostTurn(h, one, two)
		two.Ability().PostTurn(h, two, one)
		if one.Fainted() || two.Fainted() {
			// side two checked first: if it is down, side one takes the match
			if two.Fainted() {
				return m.finish(ctx, SideOne)
			}
			return m.finish(ctx, SideTwo)
		}

		if err := m.advance(ctx, evEffectsApplied); err != nil {
			return Result{}, err
		}
		one.TickCooldown()
		two.TickCooldown()

		if err := m.advance(ctx, evNextRound); err != nil {
			return Result{}, err
		}
		m.round++

		if err := m.pause(ctx); err != nil {
			return Result{}, err
		}
	}
}

// playHalf runs one half-turn and reports whether the opponent fainted.
func (m *Match) playHalf(ctx context.Context, side Side) (bool, Result, error) {
	if err := ctx.Err(); err != nil {
		return false, Result{}, fmt.Errorf("match interrupted in round %d: %w", m.round, err)
	}
	if err := m.halfTurn(ctx, side); err != nil {
		return false, Result{}, err
	}
	if m.fighter(side.Opponent()).Fainted() {
		res, err := m.finish(ctx, side)
		return true, res, err
	}
	return false, Result{}, nil
}

// halfTurn asks the side's controller for an action until an acceptable
// one arrives, then applies it.
func (m *Match) halfTurn(ctx context.Context, side Side) error {
	self, opp := m.fighter(side), m.fighter(side.Opponent())
	ctrl := m.controllers[side-1]

	for {
		action, err := ctrl.RequestAction(ctx, self, opp, self.LegalActions())
		if err != nil {
			return fmt.Errorf("side %s controller: %w", side, err)
		}

		if err := m.apply(self, opp, action); err != nil {
			if errors.Is(err, ErrUltimateOnCooldown) || errors.Is(err, ErrNoItemCharges) {
				slog.Debug("action rejected",
					"round", m.round,
					"side", side,
					"action", action,
					"error", err)
				m.emit(event.Event{
					Kind:  event.KindRejected,
					Actor: self.Owner(),
					Text:  rejectionText(self, err),
				})
				continue
			}
			return fmt.Errorf("side %s: %w", side, err)
		}
		return nil
	}
}

// apply performs action. Rejected actions leave both combatants untouched.
func (m *Match) apply(self, opp *model.Combatant, action model.Action) error {
	switch action.Kind {
	case model.ActionItem:
		healed, ok := self.UsePotion(m.rules.PotionHeal)
		if !ok {
			return ErrNoItemCharges
		}
		m.emit(event.Event{
			Kind:   event.KindItem,
			Actor:  self.Owner(),
			Text:   fmt.Sprintf("%s used a Potion! +%d HP.", self.Owner(), healed),
			Amount: healed,
		})
		return nil

	case model.ActionUltimate:
		if !self.UltimateReady() {
			return fmt.Errorf("%w: %d rounds left", ErrUltimateOnCooldown, self.UltimateCooldown())
		}
		out := m.resolver.ResolveAttack(self, opp, action)
		self.StartUltimateCooldown(m.rules.UltimateCooldown)
		if m.rules.CurseOnUltimate && ability.Activate(self) {
			m.resolver.HookContext().Emit(self.Label(), fmt.Sprintf("%s's Curse is now active!", self.Name()))
		}
		m.emitAttack(self, out)
		return nil

	case model.ActionMove:
		m.emitAttack(self, m.resolver.ResolveAttack(self, opp, action))
		return nil

	default:
		return fmt.Errorf("unknown action kind %d", action.Kind)
	}
}

func (m *Match) emitAttack(attacker *model.Combatant, out combat.Outcome) {
	m.emit(event.Event{
		Kind:   event.KindAttack,
		Actor:  attacker.Label(),
		Text:   out.Narration,
		Amount: out.Damage,
	})
}

func rejectionText(c *model.Combatant, err error) string {
	if errors.Is(err, ErrNoItemCharges) {
		return "No potions left!"
	}
	return fmt.Sprintf("Ultimate is on cooldown (%d rounds left).", c.UltimateCooldown())
}

func (m *Match) finish(ctx context.Context, winner Side) (Result, error) {
	loser := winner.Opponent()
	w, l := m.fighter(winner), m.fighter(loser)

	if err := m.advance(ctx, evFaint); err != nil {
		return Result{}, err
	}

	m.emit(event.Event{
		Kind:  event.KindFaint,
		Actor: l.Label(),
		Text:  fmt.Sprintf("%s fainted!", l.Label()),
	})
	m.emit(event.Event{
		Kind:   event.KindMatchEnd,
		Actor:  w.Owner(),
		Text:   fmt.Sprintf("%s wins the match!", w.Owner()),
		Status: []event.Status{m.fighter(SideOne).Status(), m.fighter(SideTwo).Status()},
	})

	slog.Info("match finished",
		"winner", w.Label(),
		"loser", l.Label(),
		"rounds", m.round)

	return Result{
		Winner:          winner,
		Loser:           loser,
		Rounds:          m.round,
		WinnerCombatant: w,
		LoserCombatant:  l,
	}, nil
}

func (m *Match) emit(e event.Event) {
	if e.Round == 0 {
		e.Round = m.round
	}
	m.notifier.Notify(e)
}

// pause waits for the pacing delay or cancellation.
func (m *Match) pause(ctx context.Context) error {
	if m.pacing <= 0 {
		return nil
	}
	t := time.NewTimer(m.pacing)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("match interrupted in round %d: %w", m.round, ctx.Err())
	case <-t.C:
		return nil
	}
}
