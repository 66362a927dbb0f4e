package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/dice"
	"github.com/udisondev/battlego/internal/game/ability"
	"github.com/udisondev/battlego/internal/game/battle"
	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/model"
)

// Game is the interactive console front end: mode selection, roster
// picks and the rematch loop.
type Game struct {
	prompter *Prompter
	out      io.Writer
	renderer *Renderer
	notifier event.Notifier

	catalog *data.Catalog
	cfg     config.Battle
	roller  dice.Roller
}

// NewGame creates a console game. Events also go to extra when non-nil
// (spectator feed).
func NewGame(in io.Reader, out io.Writer, catalog *data.Catalog, cfg config.Battle, extra event.Notifier) *Game {
	r := NewRenderer(out)
	return &Game{
		prompter: NewPrompter(in, out),
		out:      out,
		renderer: r,
		notifier: event.Multi{r, extra},
		catalog:  catalog,
		cfg:      cfg,
		roller:   dice.New(cfg.Seed),
	}
}

// Renderer returns the narration renderer.
func (g *Game) Renderer() *Renderer { return g.renderer }

// Run plays until the user exits. Closed input ends the game without error.
func (g *Game) Run(ctx context.Context) error {
	fmt.Fprintln(g.out, "=== Welcome to Console Battle ===")

	err := g.run(ctx)
	if errors.Is(err, ErrNoInput) {
		fmt.Fprintln(g.out, "\nInput closed. Bye!")
		return nil
	}
	return err
}

func (g *Game) run(ctx context.Context) error {
	mode, err := g.chooseMode(ctx)
	if err != nil {
		return err
	}
	if mode == modePvP {
		return g.playPvP(ctx)
	}
	return g.playPvCPU(ctx)
}

type mode int

const (
	modePvP mode = iota + 1
	modePvCPU
)

func (g *Game) chooseMode(ctx context.Context) (mode, error) {
	for {
		s, err := g.prompter.Ask(ctx, "Choose mode: (1) PvP  (2) PvCPU  : ")
		if err != nil {
			return 0, err
		}
		switch s {
		case "1":
			return modePvP, nil
		case "2":
			return modePvCPU, nil
		}
		fmt.Fprintln(g.out, "Enter 1 or 2.")
	}
}

func (g *Game) chooseArchetype(ctx context.Context, player string) (*data.Archetype, error) {
	fmt.Fprintf(g.out, "\n%s, choose your fighter:\n", player)
	for _, line := range RosterLines(g.catalog) {
		fmt.Fprintln(g.out, line)
	}
	idx, err := g.prompter.Choose(ctx, "Enter number: ", g.catalog.Len())
	if err != nil {
		return nil, err
	}
	return g.catalog.All()[idx], nil
}

func (g *Game) newCombatant(ctx context.Context, player string) (*model.Combatant, error) {
	arch, err := g.chooseArchetype(ctx, player)
	if err != nil {
		return nil, err
	}
	return ability.NewCombatant(arch, player), nil
}

func (g *Game) sessionOptions() []battle.Option {
	return []battle.Option{
		battle.WithRules(g.cfg.Rules),
		battle.WithRoller(g.roller),
		battle.WithNotifier(g.notifier),
		battle.WithPacing(g.cfg.Pacing),
	}
}

func (g *Game) playPvP(ctx context.Context) error {
	names := [2]string{}
	var err error
	if names[0], err = g.prompter.AskDefault(ctx, "Enter Player 1 name: ", "Player1"); err != nil {
		return err
	}
	if names[1], err = g.prompter.AskDefault(ctx, "Enter Player 2 name: ", "Player2"); err != nil {
		return err
	}

	var entrants [2]battle.Entrant
	for i, name := range names {
		c, err := g.newCombatant(ctx, name)
		if err != nil {
			return err
		}
		entrants[i] = battle.Entrant{Combatant: c, Controller: NewHuman(g.prompter, g.out)}
	}

	s := battle.NewSession(g.catalog, entrants[0], entrants[1], g.sessionOptions()...)
	for {
		if _, err := s.PlayMatch(ctx); err != nil {
			return err
		}

		next, err := g.prompter.Ask(ctx, "\nNext? (1) Rematch (2) Change fighter (3) Exit : ")
		if err != nil {
			return err
		}
		switch next {
		case "1":
			continue
		case "2":
			for _, side := range []battle.Side{battle.SideOne, battle.SideTwo} {
				arch, err := g.chooseArchetype(ctx, names[side-1])
				if err != nil {
					return err
				}
				if _, err := s.ChangeArchetype(side, arch.Key()); err != nil {
					return err
				}
			}
			continue
		}
		fmt.Fprintln(g.out, "Thanks for playing!")
		return nil
	}
}

func (g *Game) playPvCPU(ctx context.Context) error {
	name, err := g.prompter.AskDefault(ctx, "Enter your name: ", "Player")
	if err != nil {
		return err
	}
	player, err := g.newCombatant(ctx, name)
	if err != nil {
		return err
	}

	trainer := battle.NewGymTrainer(g.catalog, g.roller)
	fmt.Fprintf(g.out, "\n%s chooses %s!\n", trainer.Owner(), trainer.Name())

	s := battle.NewSession(g.catalog,
		battle.Entrant{Combatant: player, Controller: NewHuman(g.prompter, g.out)},
		battle.Entrant{Combatant: trainer, Controller: battle.NewAutoPolicy(g.cfg.Policy, g.roller)},
		g.sessionOptions()...)

	for {
		if _, err := s.PlayMatch(ctx); err != nil {
			return err
		}

		next, err := g.prompter.Ask(ctx, "\nWhat next? (1) Rematch vs random Gym Trainer (2) Change fighter (3) Exit : ")
		if err != nil {
			return err
		}
		switch next {
		case "1":
			c := s.ReplaceOpponent(battle.SideTwo)
			fmt.Fprintf(g.out, "\n%s chooses %s!\n", c.Owner(), c.Name())
			continue
		case "2":
			arch, err := g.chooseArchetype(ctx, name)
			if err != nil {
				return err
			}
			if _, err := s.ChangeArchetype(battle.SideOne, arch.Key()); err != nil {
				return err
			}
			continue
		}
		slog.Debug("session finished", "matches", len(s.History()))
		fmt.Fprintln(g.out, "Thanks for playing!")
		return nil
	}
}
