package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Battle holds all configuration for the battle binary.
type Battle struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Seed for the random source; 0 = time-based
	Seed uint64 `yaml:"seed"`

	// Cosmetic delay between half-turns
	Pacing time.Duration `yaml:"pacing"`

	// Optional YAML roster replacing the built-in archetypes
	RosterPath string `yaml:"roster_path"`

	Rules     Rules     `yaml:"rules"`
	Policy    Policy    `yaml:"policy"`
	Spectator Spectator `yaml:"spectator"`
}

// Rules holds the combat constants.
type Rules struct {
	CritChance             float64 `yaml:"crit_chance"`
	CritMultiplier         float64 `yaml:"crit_multiplier"`
	AdvantageMultiplier    float64 `yaml:"advantage_multiplier"`
	DisadvantageMultiplier float64 `yaml:"disadvantage_multiplier"`

	PotionHeal       int `yaml:"potion_heal"`
	PotionsPerBattle int `yaml:"potions_per_battle"`
	UltimateCooldown int `yaml:"ultimate_cooldown"` // rounds

	WinXP      int `yaml:"win_xp"`
	LossXP     int `yaml:"loss_xp"`
	XPPerLevel int `yaml:"xp_per_level"`
	HPPerLevel int `yaml:"hp_per_level"`

	// Using the ultimate activates the Curse ability. Off by default:
	// the curse stays dormant unless explicitly enabled.
	CurseOnUltimate bool `yaml:"curse_on_ultimate"`
}

// Policy holds probabilities of the automated controller.
type Policy struct {
	HealThreshold  float64 `yaml:"heal_threshold"` // fraction of max HP
	HealChance     float64 `yaml:"heal_chance"`
	UltimateChance float64 `yaml:"ultimate_chance"`
}

// Spectator configures the read-only websocket narration feed.
type Spectator struct {
	Enabled       bool   `yaml:"enabled"`
	Addr          string `yaml:"addr"`
	SendQueueSize int    `yaml:"send_queue_size"` // per-observer outbox capacity
}

// DefaultRules returns the standard combat constants.
func DefaultRules() Rules {
	return Rules{
		CritChance:             0.20,
		CritMultiplier:         2.0,
		AdvantageMultiplier:    1.5,
		DisadvantageMultiplier: 0.7,
		PotionHeal:             20,
		PotionsPerBattle:       3,
		UltimateCooldown:       3,
		WinXP:                  50,
		LossXP:                 10,
		XPPerLevel:             100,
		HPPerLevel:             5,
	}
}

// DefaultPolicy returns the reference automated-controller probabilities.
func DefaultPolicy() Policy {
	return Policy{
		HealThreshold:  0.35,
		HealChance:     0.6,
		UltimateChance: 0.25,
	}
}

// DefaultBattle returns Battle config with sensible defaults.
func DefaultBattle() Battle {
	return Battle{
		LogLevel: "warn",
		Pacing:   500 * time.Millisecond,
		Rules:    DefaultRules(),
		Policy:   DefaultPolicy(),
		Spectator: Spectator{
			Enabled:       false,
			Addr:          "127.0.0.1:8089",
			SendQueueSize: 64,
		},
	}
}

// LoadBattle loads battle config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattle(path string) (Battle, error) {
	cfg := DefaultBattle()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks ranges of every setting.
func (b Battle) Validate() error {
	var errs []error

	switch b.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q", b.LogLevel))
	}
	if b.Pacing < 0 {
		errs = append(errs, fmt.Errorf("pacing %v is negative", b.Pacing))
	}
	if err := b.Rules.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := b.Policy.Validate(); err != nil {
		errs = append(errs, err)
	}
	if b.Spectator.Enabled {
		if b.Spectator.Addr == "" {
			errs = append(errs, errors.New("spectator.addr is empty"))
		}
		if b.Spectator.SendQueueSize <= 0 {
			errs = append(errs, fmt.Errorf("spectator.send_queue_size %d", b.Spectator.SendQueueSize))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Validate checks the combat constants.
func (r Rules) Validate() error {
	var errs []error
	if !isProbability(r.CritChance) {
		errs = append(errs, fmt.Errorf("rules.crit_chance %v", r.CritChance))
	}
	if r.CritMultiplier < 1 {
		errs = append(errs, fmt.Errorf("rules.crit_multiplier %v < 1", r.CritMultiplier))
	}
	if r.AdvantageMultiplier <= 0 || r.DisadvantageMultiplier <= 0 {
		errs = append(errs, errors.New("rules: type multipliers must be positive"))
	}
	if r.PotionHeal <= 0 || r.PotionsPerBattle < 0 {
		errs = append(errs, errors.New("rules: potion_heal must be positive, potions_per_battle non-negative"))
	}
	if r.UltimateCooldown < 0 {
		errs = append(errs, fmt.Errorf("rules.ultimate_cooldown %d", r.UltimateCooldown))
	}
	if r.WinXP < 0 || r.LossXP < 0 {
		errs = append(errs, errors.New("rules: xp awards must be non-negative"))
	}
	if r.XPPerLevel <= 0 || r.HPPerLevel < 0 {
		errs = append(errs, errors.New("rules: xp_per_level must be positive, hp_per_level non-negative"))
	}
	return errors.Join(errs...)
}

// Validate checks the policy probabilities.
func (p Policy) Validate() error {
	var errs []error
	if !isProbability(p.HealThreshold) {
		errs = append(errs, fmt.Errorf("policy.heal_threshold %v", p.HealThreshold))
	}
	if !isProbability(p.HealChance) {
		errs = append(errs, fmt.Errorf("policy.heal_chance %v", p.HealChance))
	}
	if !isProbability(p.UltimateChance) {
		errs = append(errs, fmt.Errorf("policy.ultimate_chance %v", p.UltimateChance))
	}
	return errors.Join(errs...)
}

func isProbability(v float64) bool {
	return v >= 0 && v <= 1
}
