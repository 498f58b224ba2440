package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/minirogue/internal/entity"
	"github.com/samdwyer/minirogue/internal/gamedata"
	"github.com/samdwyer/minirogue/internal/telemetry"
	"github.com/samdwyer/minirogue/internal/world"
)

// Outcome summarizes what happened during one call to Apply.
type Outcome struct {
	Processed bool // false when the intent was ignored
	Moved     bool
	Attacked  bool
	Killed    bool
	Advanced  bool
	PickedUp  bool
	GameOver  bool
}

// Apply processes one intent. The turn runs in a fixed order: player move or
// attack, room advancement, pruning of retired entities, enemy movement,
// item pickup. Intents are ignored once the game is over, and invalid
// intents are no-ops.
func (g *Game) Apply(ctx context.Context, intent Intent) Outcome {
	if g.state == StateGameOver || !intent.Valid() {
		return Outcome{}
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	g.turn++
	g.message = ""
	out := Outcome{Processed: true}

	if dir, ok := intent.Direction(); ok {
		g.movePlayer(ctx, dir, &out)
	}

	if g.state == StateAlive {
		out.Advanced = g.advanceRoom(ctx)
		g.prune()
		g.moveEnemies()
		out.PickedUp = g.pickup()
	}
	out.GameOver = g.state == StateGameOver

	span.SetAttributes(
		attribute.String("intent", intent.String()),
		attribute.Int("turn", g.turn),
		attribute.Int("player.hp", g.player.HP),
		attribute.Int("depth", g.chain.Len()),
		attribute.Int("entities", len(g.entities)),
		attribute.Bool("game_over", out.GameOver),
	)
	return out
}

// movePlayer steps the player, or attacks in place when an enemy holds the
// target tile.
func (g *Game) movePlayer(ctx context.Context, dir world.Direction, out *Outcome) {
	target := g.player.Pos.Step(dir, 1)

	hit := g.Check(target, false)
	switch hit.Kind {
	case CollisionFree:
		g.player.Move(dir)
		out.Moved = true
	case CollisionEnemy:
		g.attack(ctx, hit.Enemy, out)
	}
}

func (g *Game) attack(ctx context.Context, enemy *entity.Enemy, out *Outcome) {
	result := g.resolver.Resolve(ctx, g.player, enemy)
	out.Attacked = true
	g.say(result.Message)

	g.logger.Debug("combat",
		zap.String("enemy", enemy.Name),
		zap.Stringer("enemy.id", enemy.ID()),
		zap.Int("damage.dealt", result.AttackerDamage),
		zap.Int("damage.taken", result.DefenderDamage),
		zap.Int("enemy.hp", enemy.HP),
		zap.Int("player.hp", g.player.HP),
	)

	if result.DefenderKilled {
		g.kills++
		out.Killed = true
		g.remove(enemy)
		g.logger.Info("enemy slain",
			zap.String("enemy", enemy.Name),
			zap.Stringer("enemy.id", enemy.ID()),
			zap.Int("kills", g.kills),
		)
	}
	if result.AttackerKilled {
		g.state = StateGameOver
		g.logger.Info("game over",
			zap.Int("turn", g.turn),
			zap.Int("depth", g.chain.Len()),
			zap.Int("kills", g.kills),
			zap.String("killed_by", enemy.Name),
			zap.Stringer("killed_by.id", enemy.ID()),
		)
	}
}

// advanceRoom generates the next room when the player stands on the current
// room's exit and no living enemy remains in the active window.
func (g *Game) advanceRoom(ctx context.Context) bool {
	last, ok := g.chain.Last()
	if !ok || g.player.Pos != last.AbsExit || g.LivingEnemies() > 0 {
		return false
	}

	room := g.generator.Generate(ctx, &g.chain)
	features := g.spawner.Populate(ctx, room, g.player)
	g.entities = append(g.entities, features...)

	g.logger.Info("room generated",
		zap.Int("room.index", room.Index),
		zap.Int("room.width", room.Width),
		zap.Int("room.height", room.Height),
		zap.Int("room.corridor", room.Corridor),
		zap.Stringer("room.entrance", room.Entrance.Dir),
		zap.Stringer("room.exit", room.Exit.Dir),
		zap.Int("features", len(features)),
	)
	return true
}

// prune drops entities whose room has left the active window.
func (g *Game) prune() {
	kept := g.entities[:0]
	for _, e := range g.entities {
		if g.chain.IsActive(e.RoomIndex()) {
			kept = append(kept, e)
		}
	}
	clear(g.entities[len(kept):])
	g.entities = kept
}

// moveEnemies runs the reflecting random walk of every enemy that is not
// engaged in combat.
func (g *Game) moveEnemies() {
	for _, e := range g.entities {
		enemy, ok := e.(*entity.Enemy)
		if !ok || enemy.Engaged || !enemy.IsAlive() {
			continue
		}

		dir := enemy.Wander(g.randomDirection)
		next := enemy.Position().Step(dir, 1)
		if g.Check(next, true).Blocked() {
			enemy.Reverse()
			next = enemy.Position().Step(enemy.Dir, 1)
			if g.tuning.RecheckReversedStep && g.Check(next, true).Blocked() {
				continue
			}
		}
		enemy.MoveTo(next)
	}
}

func (g *Game) randomDirection() world.Direction {
	return world.Directions[g.rng.Intn(len(world.Directions))]
}

// pickup consumes an item under the player and applies a random effect.
func (g *Game) pickup() bool {
	for _, e := range g.entities {
		item, ok := e.(*entity.Item)
		if !ok || item.Position() != g.player.Pos {
			continue
		}

		effect, ok := g.items.Roll(g.rng)
		if !ok {
			return false
		}
		applied := g.applyEffect(effect)
		g.remove(item)
		g.say(effect.Describe(applied))

		g.logger.Debug("item picked up",
			zap.Stringer("item.id", item.ID()),
			zap.String("effect", effect.ID),
			zap.Int("applied", applied),
			zap.Int("player.hp", g.player.HP),
			zap.Int("player.max_hp", g.player.MaxHP),
		)
		return true
	}
	return false
}

// applyEffect mutates the player and returns the amount applied.
func (g *Game) applyEffect(effect gamedata.ItemEffectDef) int {
	p := g.player
	switch effect.Effect {
	case gamedata.EffectMaxHealth:
		p.MaxHP += effect.Amount
		return effect.Amount
	case gamedata.EffectAttack:
		p.Attack += effect.Amount
		return effect.Amount
	case gamedata.EffectDefense:
		p.Defense += effect.Amount
		return effect.Amount
	case gamedata.EffectHeal:
		return p.Heal(HealAmount(p.MaxHP, effect.Percent))
	default:
		return 0
	}
}

// HealAmount returns percent of maxHP rounded to the nearest integer.
func HealAmount(maxHP, percent int) int {
	return (maxHP*percent + 50) / 100
}

// remove deletes the entity with e's ID from the collection.
func (g *Game) remove(e entity.Entity) {
	id := e.ID()
	for i, other := range g.entities {
		if other.ID() == id {
			g.entities = append(g.entities[:i], g.entities[i+1:]...)
			return
		}
	}
}
