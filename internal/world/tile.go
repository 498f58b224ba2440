// Package world provides the room chain, its geometry and room generation.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileDoor represents a room entrance or exit.
	TileDoor Tile = '%'
	// TileFloor represents a room interior tile.
	TileFloor Tile = '.'
	// TileVoid represents space outside every room, corridors included.
	TileVoid Tile = ' '
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
