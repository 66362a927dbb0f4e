package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Roster(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{"pikachu", "charizard", "blastoise", "venusaur", "gengar", "lucario", "mewtwo"}, c.Keys())
	assert.Equal(t, 7, c.Len())

	pikachu, err := c.Get("Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", pikachu.Display())
	assert.Equal(t, TypeElectric, pikachu.Type())
	assert.Equal(t, 100, pikachu.BaseHP())
	assert.Equal(t, AbilityStatic, pikachu.Ability())
	assert.Equal(t, Move{Name: "Volt Tackle", Power: 65}, pikachu.Ultimate())
	assert.Equal(t, []Move{{"Thunderbolt", 22}, {"Quick Attack", 12}, {"Iron Tail", 16}}, pikachu.Moves())

	mewtwo, err := c.Get("mewtwo")
	require.NoError(t, err)
	assert.Equal(t, AbilityNone, mewtwo.Ability())
}

func TestDefaultCatalog_UltimateOutpowersMoves(t *testing.T) {
	for _, a := range DefaultCatalog().All() {
		strongest := 0
		for _, m := range a.Moves() {
			strongest = max(strongest, m.Power)
		}
		assert.GreaterOrEqual(t, a.Ultimate().Power, 2*strongest, "archetype %s", a.Key())
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	_, err := DefaultCatalog().Get("missingno")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownArchetype))
}

func TestArchetype_MovesIsACopy(t *testing.T) {
	a, err := DefaultCatalog().Get("charizard")
	require.NoError(t, err)

	moves := a.Moves()
	moves[0].Power = 999

	power, ok := a.MovePower("Flamethrower")
	require.True(t, ok)
	assert.Equal(t, 30, power)
}

func TestNewArchetype_Validation(t *testing.T) {
	moves := []Move{{"Tackle", 10}}
	ult := Move{"Big Tackle", 40}

	tests := []struct {
		name    string
		key     string
		baseHP  int
		moves   []Move
		ult     Move
		typ     Type
		wantErr bool
	}{
		{"valid", "rat", 50, moves, ult, TypeFighting, false},
		{"upper-case key", "Rat", 50, moves, ult, TypeFighting, true},
		{"zero hp", "rat", 0, moves, ult, TypeFighting, true},
		{"no moves", "rat", 50, nil, ult, TypeFighting, true},
		{"duplicate move", "rat", 50, []Move{{"Tackle", 10}, {"Tackle", 12}}, ult, TypeFighting, true},
		{"zero power move", "rat", 50, []Move{{"Tackle", 0}}, ult, TypeFighting, true},
		{"no ultimate", "rat", 50, moves, Move{}, TypeFighting, true},
		{"unknown type", "rat", 50, moves, ult, Type(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArchetype(tt.key, "Rat", tt.typ, tt.baseHP, tt.moves, tt.ult, AbilityNone)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArchetype)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewCatalog_DuplicateKey(t *testing.T) {
	a, err := NewArchetype("rat", "Rat", TypeFighting, 50, []Move{{"Tackle", 10}}, Move{"Big Tackle", 40}, AbilityNone)
	require.NoError(t, err)

	_, err = NewCatalog(a, a)
	assert.ErrorIs(t, err, ErrInvalidArchetype)

	_, err = NewCatalog()
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

const testRoster = `
archetypes:
  - key: raichu
    display: Raichu
    type: Electric
    base_hp: 120
    moves:
      - {name: Thunder, power: 40}
      - {name: Slam, power: 20}
    ultimate: {name: Thunder Storm, power: 90}
    ability: static
  - key: onix
    type: fighting
    base_hp: 150
    moves:
      - {name: Rock Throw, power: 18}
    ultimate: {name: Rock Slide, power: 60}
    ability: shellArmor
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(testRoster))
	require.NoError(t, err)

	assert.Equal(t, []string{"raichu", "onix"}, c.Keys())

	raichu, err := c.Get("raichu")
	require.NoError(t, err)
	assert.Equal(t, TypeElectric, raichu.Type())
	assert.Equal(t, "Thunder", raichu.Moves()[0].Name)
	assert.Equal(t, "Slam", raichu.Moves()[1].Name)

	onix, err := c.Get("onix")
	require.NoError(t, err)
	assert.Equal(t, "onix", onix.Display())
	assert.Equal(t, AbilityShellArmor, onix.Ability())
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := ParseCatalog([]byte("archetypes: [{key: x, type: plasma, base_hp: 1}]"))
	assert.ErrorIs(t, err, ErrInvalidArchetype)

	_, err = ParseCatalog([]byte("archetypes: [{key: x, type: fire, base_hp: 1, ability: telepathy}]"))
	assert.ErrorIs(t, err, ErrInvalidArchetype)

	_, err = ParseCatalog([]byte("archetypes: []"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = ParseCatalog([]byte("archetypes: {"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Len())

	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRoster), 0o600))

	c, err = LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseAbilityTag(t *testing.T) {
	tests := []struct {
		in   string
		want AbilityTag
	}{
		{"", AbilityNone},
		{"none", AbilityNone},
		{"static", AbilityStatic},
		{"shell_armor", AbilityShellArmor},
		{"shellArmor", AbilityShellArmor},
		{"Steadfast", AbilitySteadfast},
	}
	for _, tt := range tests {
		got, err := ParseAbilityTag(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
