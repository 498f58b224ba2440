// Package spawn populates freshly generated rooms with items and enemies.
package spawn

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minirogue/internal/entity"
	"github.com/samdwyer/minirogue/internal/gamedata"
	"github.com/samdwyer/minirogue/internal/telemetry"
	"github.com/samdwyer/minirogue/internal/world"
)

// KindWeight is one row of the feature table.
type KindWeight struct {
	Kind entity.Kind
	Odds int
}

// Weight returns the row's relative weight.
func (k KindWeight) Weight() int {
	return k.Odds
}

// Config holds the spawn tuning values.
type Config struct {
	FeatureRollMax int          // Feature multiplier is drawn from [0, FeatureRollMax)
	AreaDivisor    int          // Area unit for the large-room bonus
	Table          []KindWeight // Feature type weights
	AttackMinPct   int          // Enemy attack lower bound, % of player defense
	AttackMaxPct   int          // Enemy attack upper bound, % of player defense
	HealthMin      int          // Minimum enemy health
	ItemGlyph      rune         // Item display symbol, entity.ItemGlyph when zero
}

// Validate rejects configurations that would draw from empty ranges.
func (c Config) Validate() error {
	if c.FeatureRollMax < 1 {
		return fmt.Errorf("feature roll max %d is below 1", c.FeatureRollMax)
	}
	if c.AreaDivisor < 1 {
		return fmt.Errorf("area divisor %d is below 1", c.AreaDivisor)
	}
	if gamedata.TotalWeight(c.Table) <= 0 {
		return fmt.Errorf("spawn table has no positive weight")
	}
	if c.AttackMinPct < 0 || c.AttackMaxPct < c.AttackMinPct {
		return fmt.Errorf("enemy attack range [%d%%, %d%%] is invalid", c.AttackMinPct, c.AttackMaxPct)
	}
	if c.HealthMin < 1 {
		return fmt.Errorf("enemy health min %d is below 1", c.HealthMin)
	}
	return nil
}

// Spawner places features inside rooms.
type Spawner struct {
	cfg      Config
	rng      *rand.Rand
	bestiary *gamedata.EnemyRegistry
}

// New creates a spawner. bestiary may be nil, in which case enemies get a
// generic appearance.
func New(cfg Config, rng *rand.Rand, bestiary *gamedata.EnemyRegistry) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, bestiary: bestiary}
}

// FeatureCount draws how many features a room receives. Larger rooms get a
// multiplier of 1 + floor((area/AreaDivisor)^2); every room gets at least one.
func (s *Spawner) FeatureCount(room world.Room) int {
	area := room.Width * room.Height
	bonus := (area * area) / (s.cfg.AreaDivisor * s.cfg.AreaDivisor)
	return max(1, s.rng.Intn(s.cfg.FeatureRollMax)*(1+bonus))
}

// Populate creates the features of a room. Enemy stats are scaled to the
// player's current stats.
func (s *Spawner) Populate(ctx context.Context, room world.Room, player *entity.Player) []entity.Entity {
	tracer := telemetry.Tracer("spawn")
	_, span := tracer.Start(ctx, "room.populate")
	defer span.End()

	count := s.FeatureCount(room)
	features := make([]entity.Entity, 0, count)
	enemies := 0
	for i := 0; i < count; i++ {
		pos := s.interiorPoint(room)
		switch s.PickKind() {
		case entity.KindEnemy:
			features = append(features, s.newEnemy(pos, room.Index, player))
			enemies++
		default:
			features = append(features, s.newItem(pos, room.Index))
		}
	}

	span.SetAttributes(
		attribute.Int("room.index", room.Index),
		attribute.Int("spawn.features", count),
		attribute.Int("spawn.enemies", enemies),
	)
	return features
}

// PickKind draws a feature type from the weighted table.
func (s *Spawner) PickKind() entity.Kind {
	row, ok := gamedata.PickWeighted(s.rng, s.cfg.Table)
	if !ok {
		return entity.KindItem
	}
	return row.Kind
}

// EnemyStats draws enemy stats relative to the player: attack from
// [AttackMinPct, AttackMaxPct] of the player's defense (at least 1), defense
// below the player's attack, health from [HealthMin, ceil(MaxHP/2)].
func (s *Spawner) EnemyStats(player *entity.Player) entity.Stats {
	atkLo := max(1, player.Defense*s.cfg.AttackMinPct/100)
	atkHi := max(atkLo, (player.Defense*s.cfg.AttackMaxPct+99)/100)

	def := 0
	if player.Attack > 0 {
		def = s.rng.Intn(player.Attack)
	}

	hpHi := max(s.cfg.HealthMin, (player.MaxHP+1)/2)

	return entity.Stats{
		Attack:  s.inclusive(atkLo, atkHi),
		Defense: def,
		MaxHP:   s.inclusive(s.cfg.HealthMin, hpHi),
	}
}

func (s *Spawner) newEnemy(pos world.Point, room int, player *entity.Player) *entity.Enemy {
	var def *gamedata.EnemyDef
	if s.bestiary != nil {
		def = s.bestiary.SpawnRandom(s.rng)
	}
	return entity.NewEnemy(def, pos, room, s.EnemyStats(player))
}

func (s *Spawner) newItem(pos world.Point, room int) *entity.Item {
	item := entity.NewItem(pos, room)
	if s.cfg.ItemGlyph != 0 {
		item.Symbol = s.cfg.ItemGlyph
	}
	return item
}

// interiorPoint draws a tile strictly inside the room's walls.
func (s *Spawner) interiorPoint(room world.Room) world.Point {
	return world.Point{
		X: room.Abs.X + 1 + s.rng.Intn(room.Width-1),
		Y: room.Abs.Y + 1 + s.rng.Intn(room.Height-1),
	}
}

// inclusive returns a uniform integer in [lo, hi].
func (s *Spawner) inclusive(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
