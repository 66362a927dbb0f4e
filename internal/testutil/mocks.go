package testutil

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/udisondev/battlego/internal/model"
)

// ErrSimulated is a sentinel error for testing error handling paths
var ErrSimulated = errors.New("simulated error for testing")

// ErrScriptExhausted возвращается ScriptedController, когда действия закончились.
var ErrScriptExhausted = errors.New("scripted controller: no actions left")

// ScriptedController — контроллер, возвращающий заранее заданные действия по порядку.
// Запоминает каждый запрос (legal набор) для проверок в тестах.
type ScriptedController struct {
	mu      sync.Mutex
	actions []model.Action
	calls   [][]model.Action
	repeat  *model.Action
}

// NewScriptedController создаёт контроллер с очередью действий.
func NewScriptedController(actions ...model.Action) *ScriptedController {
	return &ScriptedController{actions: actions}
}

// Repeat задаёт действие, возвращаемое после исчерпания очереди.
func (c *ScriptedController) Repeat(a model.Action) *ScriptedController {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repeat = &a
	return c
}

func (c *ScriptedController) RequestAction(ctx context.Context, _, _ *model.Combatant, legal []model.Action) (model.Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return model.Action{}, err
	}
	c.calls = append(c.calls, slices.Clone(legal))

	if len(c.actions) == 0 {
		if c.repeat != nil {
			return *c.repeat, nil
		}
		return model.Action{}, ErrScriptExhausted
	}
	a := c.actions[0]
	c.actions = c.actions[1:]
	return a, nil
}

// Calls возвращает количество запросов действия.
func (c *ScriptedController) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// LegalAt возвращает legal набор, переданный в i-м запросе.
func (c *ScriptedController) LegalAt(i int) []model.Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.calls) {
		panic(fmt.Sprintf("LegalAt(%d): only %d calls", i, len(c.calls)))
	}
	return slices.Clone(c.calls[i])
}

// FailingController всегда возвращает Err.
type FailingController struct {
	Err error
}

func (c FailingController) RequestAction(context.Context, *model.Combatant, *model.Combatant, []model.Action) (model.Action, error) {
	if c.Err == nil {
		return model.Action{}, ErrSimulated
	}
	return model.Action{}, c.Err
}
