package model

import "fmt"

// ActionKind — what a combatant does in its half-turn.
type ActionKind int

const (
	ActionMove ActionKind = iota + 1
	ActionUltimate
	ActionItem
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "MOVE"
	case ActionUltimate:
		return "ULTIMATE"
	case ActionItem:
		return "ITEM"
	default:
		return "UNKNOWN"
	}
}

// Action is one decision supplied by a controller.
// Move is set only for ActionMove.
type Action struct {
	Kind ActionKind
	Move string
}

// MoveAction returns an action using the named move.
func MoveAction(name string) Action { return Action{Kind: ActionMove, Move: name} }

// UltimateAction returns the ultimate marker.
func UltimateAction() Action { return Action{Kind: ActionUltimate} }

// ItemAction returns the item-use action (potion).
func ItemAction() Action { return Action{Kind: ActionItem} }

func (a Action) String() string {
	if a.Kind == ActionMove {
		return fmt.Sprintf("MOVE(%s)", a.Move)
	}
	return a.Kind.String()
}
