package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/model"
)

// Human is a Controller backed by terminal input.
//
// Menu: "N. Move (P dmg)" for each move, "0. Ultimate (ULTIMATE P dmg)" while
// the ultimate is ready and "i. Use Item (Potion)". Malformed input is
// rejected here; "0" and "i" are always passed to the engine, which refuses
// them when the ultimate is recharging or no potions are left.
type Human struct {
	prompter *Prompter
	out      io.Writer
}

// NewHuman creates a human controller.
func NewHuman(p *Prompter, out io.Writer) *Human {
	return &Human{prompter: p, out: out}
}

func (h *Human) RequestAction(ctx context.Context, self, _ *model.Combatant, _ []model.Action) (model.Action, error) {
	fmt.Fprintf(h.out, "\n>> %s's turn ( %s )\n", self.Owner(), self.Name())

	moves := self.Moves()
	for {
		for i, m := range moves {
			fmt.Fprintf(h.out, "%d. %s (%d dmg)\n", i+1, m.Name, m.Power)
		}
		if self.UltimateReady() {
			ult := self.Ultimate()
			fmt.Fprintf(h.out, "0. %s (ULTIMATE %d dmg)\n", ult.Name, ult.Power)
		}
		fmt.Fprintln(h.out, "i. Use Item (Potion)")

		choice, err := h.prompter.Ask(ctx, fmt.Sprintf("%s choose move number (or i): ", self.Owner()))
		if err != nil {
			return model.Action{}, err
		}

		action, msg := parseChoice(strings.ToLower(choice), moves)
		if msg != "" {
			fmt.Fprintln(h.out, msg)
			continue
		}
		return action, nil
	}
}

// parseChoice maps menu input to an action, or returns the message shown
// before asking again.
func parseChoice(choice string, moves []data.Move) (model.Action, string) {
	switch choice {
	case "i":
		return model.ItemAction(), ""
	case "0":
		return model.UltimateAction(), ""
	}
	idx, err := strconv.Atoi(choice)
	if err != nil {
		return model.Action{}, "Invalid input."
	}
	if idx < 1 || idx > len(moves) {
		return model.Action{}, "Invalid move number."
	}
	return model.MoveAction(moves[idx-1].Name), ""
}
