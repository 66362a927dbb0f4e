package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBattle(t *testing.T) {
	cfg := DefaultBattle()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 0.20, cfg.Rules.CritChance)
	assert.Equal(t, 2.0, cfg.Rules.CritMultiplier)
	assert.Equal(t, 1.5, cfg.Rules.AdvantageMultiplier)
	assert.Equal(t, 0.7, cfg.Rules.DisadvantageMultiplier)
	assert.Equal(t, 20, cfg.Rules.PotionHeal)
	assert.Equal(t, 3, cfg.Rules.PotionsPerBattle)
	assert.Equal(t, 3, cfg.Rules.UltimateCooldown)
	assert.Equal(t, 50, cfg.Rules.WinXP)
	assert.Equal(t, 10, cfg.Rules.LossXP)
	assert.Equal(t, 100, cfg.Rules.XPPerLevel)
	assert.Equal(t, 5, cfg.Rules.HPPerLevel)
	assert.False(t, cfg.Rules.CurseOnUltimate)
	assert.Equal(t, 0.35, cfg.Policy.HealThreshold)
	assert.Equal(t, 0.6, cfg.Policy.HealChance)
	assert.Equal(t, 0.25, cfg.Policy.UltimateChance)
	assert.False(t, cfg.Spectator.Enabled)
}

func TestLoadBattle_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadBattle(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBattle(), cfg)
}

func TestLoadBattle_OverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.yaml")
	raw := `
log_level: debug
seed: 1234
pacing: 0s
rules:
  ultimate_cooldown: 4
  curse_on_ultimate: true
policy:
  ultimate_chance: 0.5
spectator:
  enabled: true
  addr: ":9000"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadBattle(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, time.Duration(0), cfg.Pacing)
	assert.Equal(t, 4, cfg.Rules.UltimateCooldown)
	assert.True(t, cfg.Rules.CurseOnUltimate)
	assert.Equal(t, 0.20, cfg.Rules.CritChance, "untouched default")
	assert.Equal(t, 0.5, cfg.Policy.UltimateChance)
	assert.Equal(t, 0.6, cfg.Policy.HealChance)
	assert.True(t, cfg.Spectator.Enabled)
	assert.Equal(t, ":9000", cfg.Spectator.Addr)
	assert.Equal(t, 64, cfg.Spectator.SendQueueSize)
}

func TestLoadBattle_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad yaml", "rules: ["},
		{"crit chance above one", "rules: {crit_chance: 1.5}"},
		{"negative cooldown", "rules: {ultimate_cooldown: -1}"},
		{"zero xp per level", "rules: {xp_per_level: 0}"},
		{"bad log level", "log_level: loud"},
		{"policy out of range", "policy: {heal_chance: -0.1}"},
		{"spectator without queue", "spectator: {enabled: true, send_queue_size: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "battle.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0o600))

			_, err := LoadBattle(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate_WrapsSentinel(t *testing.T) {
	cfg := DefaultBattle()
	cfg.Rules.CritMultiplier = 0.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "crit_multiplier")
}
