package testutil

import (
	"testing"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/game/ability"
	"github.com/udisondev/battlego/internal/model"
)

// Fixtures содержит общие тестовые данные.
var Fixtures = struct {
	// Владельцы по умолчанию
	OwnerOne string
	OwnerTwo string

	// Ключи архетипов встроенного ростера
	Electric string
	Fire     string
	Water    string
	Grass    string
	Ghost    string
	Fighting string
	Boss     string
}{
	OwnerOne: "Ash",
	OwnerTwo: "Gary",

	Electric: "pikachu",
	Fire:     "charizard",
	Water:    "blastoise",
	Grass:    "venusaur",
	Ghost:    "gengar",
	Fighting: "lucario",
	Boss:     "mewtwo",
}

// Archetype возвращает архетип встроенного каталога по ключу.
func Archetype(t testing.TB, key string) *data.Archetype {
	t.Helper()

	arch, err := data.DefaultCatalog().Get(key)
	if err != nil {
		t.Fatalf("archetype %q: %v", key, err)
	}
	return arch
}

// Combatant создаёт бойца со способностью архетипа, готового к бою.
func Combatant(t testing.TB, key, owner string) *model.Combatant {
	t.Helper()

	c := ability.NewCombatant(Archetype(t, key), owner)
	c.ResetForBattle(config.DefaultRules().PotionsPerBattle)
	return c
}

// PlainCombatant создаёт бойца без способности (для точных расчётов урона).
func PlainCombatant(t testing.TB, key, owner string) *model.Combatant {
	t.Helper()

	c := model.NewCombatant(Archetype(t, key), owner, nil)
	c.ResetForBattle(config.DefaultRules().PotionsPerBattle)
	return c
}
