package game

import (
	"github.com/samdwyer/minirogue/internal/entity"
	"github.com/samdwyer/minirogue/internal/world"
)

// CollisionKind classifies what occupies a tile.
type CollisionKind int

const (
	CollisionFree CollisionKind = iota
	CollisionWall
	CollisionPlayer
	CollisionEnemy
)

// String returns a human-readable collision name.
func (k CollisionKind) String() string {
	switch k {
	case CollisionFree:
		return "free"
	case CollisionWall:
		return "wall"
	case CollisionPlayer:
		return "player"
	case CollisionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Collision is the result of a tile check. Enemy is set for CollisionEnemy.
type Collision struct {
	Kind  CollisionKind
	Enemy *entity.Enemy
}

// Blocked returns true unless the tile is free.
func (c Collision) Blocked() bool {
	return c.Kind != CollisionFree
}

// Check reports what blocks pos. Only the active rooms and their living
// enemies are considered. With blockDoors false each room's own entrance and
// exit tiles are passable; with blockDoors true the whole perimeter is wall.
func (g *Game) Check(pos world.Point, blockDoors bool) Collision {
	if pos == g.player.Pos {
		return Collision{Kind: CollisionPlayer}
	}

	for _, room := range g.chain.Active() {
		tile := room.TileAt(pos)
		if tile == world.TileDoor && blockDoors {
			tile = world.TileWall
		}
		if !tile.IsPassable() {
			return Collision{Kind: CollisionWall}
		}
	}

	for _, e := range g.entities {
		enemy, ok := e.(*entity.Enemy)
		if !ok || !enemy.IsAlive() || !g.chain.IsActive(enemy.RoomIndex()) {
			continue
		}
		if enemy.Position() == pos {
			return Collision{Kind: CollisionEnemy, Enemy: enemy}
		}
	}

	return Collision{Kind: CollisionFree}
}
