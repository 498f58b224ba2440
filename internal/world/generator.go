package world

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minirogue/internal/telemetry"
)

// GeneratorConfig holds the room generation ranges. Integer ranges are
// half-open: [Min, Max).
type GeneratorConfig struct {
	HeightMin, HeightMax           int
	WidthFactorMin, WidthFactorMax float64
	CorridorMin, CorridorMax       int
}

// Validate rejects ranges that could produce a room without a usable wall
// interior or an empty random range.
func (c GeneratorConfig) Validate() error {
	if c.HeightMin < 3 {
		return fmt.Errorf("room height min %d is below 3", c.HeightMin)
	}
	if c.HeightMax <= c.HeightMin {
		return fmt.Errorf("room height range [%d, %d) is empty", c.HeightMin, c.HeightMax)
	}
	if c.WidthFactorMin < 1 || c.WidthFactorMax < c.WidthFactorMin {
		return fmt.Errorf("width factor range [%g, %g) is invalid", c.WidthFactorMin, c.WidthFactorMax)
	}
	if c.CorridorMin < 1 {
		return fmt.Errorf("corridor min %d is below 1", c.CorridorMin)
	}
	if c.CorridorMax <= c.CorridorMin {
		return fmt.Errorf("corridor range [%d, %d) is empty", c.CorridorMin, c.CorridorMax)
	}
	return nil
}

// Generator produces rooms that extend a Chain.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// NewGenerator creates a generator. The config must already be validated.
func NewGenerator(cfg GeneratorConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate creates a room chained from the chain's last room (or the first
// room, centered on the origin, when the chain is empty), appends it and
// returns it.
func (g *Generator) Generate(ctx context.Context, chain *Chain) Room {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "room.generate")
	defer span.End()

	height := g.between(g.cfg.HeightMin, g.cfg.HeightMax)
	factor := g.cfg.WidthFactorMin + g.rng.Float64()*(g.cfg.WidthFactorMax-g.cfg.WidthFactorMin)
	width := int(float64(height) * factor)

	room := Room{
		Index:  chain.Len(),
		Prev:   -1,
		Width:  width,
		Height: height,
	}

	var prevAbs Point
	corridor := 0
	prev, chained := chain.Last()
	if chained {
		room.Prev = prev.Index
		prevAbs = prev.Abs
		corridor = g.between(g.cfg.CorridorMin, g.cfg.CorridorMax)
		room.Corridor = corridor
		g.place(&room, prev, corridor)
	} else {
		room.Position = Point{X: -(width / 2), Y: -(height / 2)}
	}

	room.Exit = g.pickExit(room)
	room.resolve(prevAbs)
	chain.append(room)

	span.SetAttributes(
		attribute.Int("room.index", room.Index),
		attribute.Int("room.width", room.Width),
		attribute.Int("room.height", room.Height),
		attribute.Int("room.corridor", corridor),
		attribute.String("room.exit", room.Exit.Dir.String()),
	)
	return room
}

// place positions room relative to prev so that its entrance faces prev's
// exit across a straight corridor of the given length.
func (g *Generator) place(room *Room, prev Room, corridor int) {
	entrance := Door{Dir: prev.Exit.Dir.Opposite()}
	wall := room.WallLength(entrance.Dir)

	// Perpendicular position: the entrance offset exitOffset-pos must stay
	// strictly between the entrance wall's corners.
	exitOffset := prev.Exit.Offset
	lateral := g.between(exitOffset-(wall-1), exitOffset)
	entrance.Offset = exitOffset - lateral

	switch prev.Exit.Dir {
	case East:
		room.Position = Point{X: prev.Width + corridor, Y: lateral}
	case West:
		room.Position = Point{X: -(corridor + room.Width), Y: lateral}
	case South:
		room.Position = Point{X: lateral, Y: prev.Height + corridor}
	default:
		room.Position = Point{X: lateral, Y: -(corridor + room.Height)}
	}
	room.Entrance = &entrance
}

// pickExit chooses an exit wall different from the entrance wall and an
// offset that avoids the wall's corners.
func (g *Generator) pickExit(room Room) Door {
	dir := Direction(g.rng.Intn(4))
	if room.Entrance != nil && dir == room.Entrance.Dir {
		dir = dir.Next()
	}
	return Door{
		Dir:    dir,
		Offset: g.between(1, room.WallLength(dir)),
	}
}

// between returns a uniform integer in [lo, hi).
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo)
}
