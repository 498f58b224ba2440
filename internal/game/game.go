package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/minirogue/internal/combat"
	"github.com/samdwyer/minirogue/internal/entity"
	"github.com/samdwyer/minirogue/internal/gamedata"
	"github.com/samdwyer/minirogue/internal/spawn"
	"github.com/samdwyer/minirogue/internal/world"
)

// Game holds the entire game state. It is not safe for concurrent use; the
// frontend drives it from a single goroutine.
type Game struct {
	tuning Tuning
	rng    *rand.Rand
	logger *zap.Logger

	generator *world.Generator
	spawner   *spawn.Spawner
	resolver  *combat.Resolver
	items     *gamedata.ItemTable

	chain    world.Chain
	player   *entity.Player
	entities []entity.Entity

	state   State
	message string
	turn    int
	kills   int
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a game with its first room generated and the player standing
// at the origin, inside that room.
func New(ctx context.Context, cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, err
	}

	playerDef, err := gamedata.LoadPlayer()
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	bestiary, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load bestiary: %w", err)
	}
	items, err := gamedata.LoadItemTable()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	spawnCfg := cfg.Tuning.Spawn()
	spawnCfg.ItemGlyph = items.Glyph()

	g := &Game{
		tuning:    cfg.Tuning,
		rng:       rng,
		logger:    zap.NewNop(),
		generator: world.NewGenerator(cfg.Tuning.Generator(), rng),
		spawner:   spawn.New(spawnCfg, rng, bestiary),
		resolver:  combat.NewResolver(),
		items:     items,
		player:    entity.NewPlayer(playerDef, world.Point{}),
		state:     StateAlive,
	}
	for _, opt := range opts {
		opt(g)
	}

	first := g.generator.Generate(ctx, &g.chain)
	g.logger.Info("game started",
		zap.Int64("seed", seed),
		zap.Int("room.width", first.Width),
		zap.Int("room.height", first.Height),
		zap.Stringer("room.exit", first.Exit.Dir),
	)
	return g, nil
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Player returns the player. Callers must treat it as read-only.
func (g *Game) Player() *entity.Player { return g.player }

// ActiveRooms returns the rooms of the active window, oldest first.
func (g *Game) ActiveRooms() []world.Room { return g.chain.Active() }

// CurrentRoom returns the most recently generated room.
func (g *Game) CurrentRoom() world.Room {
	room, _ := g.chain.Last()
	return room
}

// Entities returns the live entities of the active window.
func (g *Game) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, len(g.entities))
	for _, e := range g.entities {
		if g.chain.IsActive(e.RoomIndex()) {
			out = append(out, e)
		}
	}
	return out
}

// ItemColor returns the display color shared by all items.
func (g *Game) ItemColor() tcell.Color { return g.items.Color() }

// TakeMessage returns the outcome message of the latest turn and clears it.
func (g *Game) TakeMessage() string {
	msg := g.message
	g.message = ""
	return msg
}

// Turn returns the number of processed turns.
func (g *Game) Turn() int { return g.turn }

// Depth returns the number of rooms generated so far.
func (g *Game) Depth() int { return g.chain.Len() }

// Kills returns the number of enemies slain.
func (g *Game) Kills() int { return g.kills }

// LivingEnemies counts the living enemies of the active window.
func (g *Game) LivingEnemies() int {
	n := 0
	for _, e := range g.entities {
		if enemy, ok := e.(*entity.Enemy); ok && enemy.IsAlive() && g.chain.IsActive(enemy.RoomIndex()) {
			n++
		}
	}
	return n
}

func (g *Game) say(msg string) {
	if g.message == "" {
		g.message = msg
		return
	}
	g.message += " " + msg
}
