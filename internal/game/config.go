package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/minirogue/internal/entity"
	"github.com/samdwyer/minirogue/internal/logging"
	"github.com/samdwyer/minirogue/internal/spawn"
	"github.com/samdwyer/minirogue/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used by tests for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Tuning Tuning
}

// DefaultConfig returns a config with a random seed and default tuning.
func DefaultConfig() Config {
	return Config{Tuning: DefaultTuning()}
}

// Tuning holds the numeric constants of generation, spawning and enemy
// behaviour. Integer ranges named Min/Max are half-open.
type Tuning struct {
	RoomHeightMin  int     `yaml:"room_height_min"`
	RoomHeightMax  int     `yaml:"room_height_max"`
	WidthFactorMin float64 `yaml:"width_factor_min"`
	WidthFactorMax float64 `yaml:"width_factor_max"`
	CorridorMin    int     `yaml:"corridor_min"`
	CorridorMax    int     `yaml:"corridor_max"`

	FeatureRollMax int `yaml:"feature_roll_max"`
	AreaDivisor    int `yaml:"area_divisor"`
	ItemWeight     int `yaml:"item_weight"`
	EnemyWeight    int `yaml:"enemy_weight"`

	EnemyAttackMinPct int `yaml:"enemy_attack_min_pct"`
	EnemyAttackMaxPct int `yaml:"enemy_attack_max_pct"`
	EnemyHealthMin    int `yaml:"enemy_health_min"`

	// RecheckReversedStep validates an enemy's step after it bounces off an
	// obstacle. When false the reversed step is taken unchecked.
	RecheckReversedStep bool `yaml:"recheck_reversed_step"`
}

// DefaultTuning returns the stock tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		RoomHeightMin:     5,
		RoomHeightMax:     15,
		WidthFactorMin:    2,
		WidthFactorMax:    4,
		CorridorMin:       2,
		CorridorMax:       8,
		FeatureRollMax:    4,
		AreaDivisor:       250,
		ItemWeight:        2,
		EnemyWeight:       3,
		EnemyAttackMinPct: 80,
		EnemyAttackMaxPct: 150,
		EnemyHealthMin:    2,
	}
}

// Generator returns the room generation part of the tuning.
func (t Tuning) Generator() world.GeneratorConfig {
	return world.GeneratorConfig{
		HeightMin:      t.RoomHeightMin,
		HeightMax:      t.RoomHeightMax,
		WidthFactorMin: t.WidthFactorMin,
		WidthFactorMax: t.WidthFactorMax,
		CorridorMin:    t.CorridorMin,
		CorridorMax:    t.CorridorMax,
	}
}

// Spawn returns the entity spawning part of the tuning.
func (t Tuning) Spawn() spawn.Config {
	return spawn.Config{
		FeatureRollMax: t.FeatureRollMax,
		AreaDivisor:    t.AreaDivisor,
		Table: []spawn.KindWeight{
			{Kind: entity.KindItem, Odds: t.ItemWeight},
			{Kind: entity.KindEnemy, Odds: t.EnemyWeight},
		},
		AttackMinPct: t.EnemyAttackMinPct,
		AttackMaxPct: t.EnemyAttackMaxPct,
		HealthMin:    t.EnemyHealthMin,
	}
}

// Validate checks every range so that no random draw can be empty or
// inverted.
func (t Tuning) Validate() error {
	if t.ItemWeight < 0 || t.EnemyWeight < 0 {
		return fmt.Errorf("invalid tuning: spawn weights must not be negative (item %d, enemy %d)", t.ItemWeight, t.EnemyWeight)
	}
	if err := t.Generator().Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	if err := t.Spawn().Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	return nil
}

// FileConfig is the layout of the optional YAML settings file.
type FileConfig struct {
	Tuning Tuning         `yaml:"tuning"`
	Log    logging.Config `yaml:"log"`
	Audio  bool           `yaml:"audio"`
}

// DefaultFileConfig returns the settings used when no file is given.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Tuning: DefaultTuning(),
		Log:    logging.Config{Level: "info", Format: "console", File: "minirogue.log"},
	}
}

// ParseFileConfig decodes YAML settings over the defaults and validates the
// tuning. Fields missing from the document keep their default values.
func ParseFileConfig(data []byte) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// LoadFileConfig reads settings from path. A missing file yields the
// defaults.
func LoadFileConfig(path string) (FileConfig, error) {
	if path == "" {
		return DefaultFileConfig(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultFileConfig(), nil
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseFileConfig(data)
}
