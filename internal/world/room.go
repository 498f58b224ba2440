package world

// Door is an opening in a room wall, given by the wall side and the offset
// along that wall measured from the wall's top or left corner.
type Door struct {
	Dir    Direction
	Offset int
}

// Room is one rectangular room of the chain. The wall rectangle spans
// Abs.X..Abs.X+Width and Abs.Y..Abs.Y+Height inclusive.
type Room struct {
	Index    int   // Position in the chain
	Prev     int   // Index of the predecessor, -1 for the first room
	Position Point // Offset from the predecessor (absolute for the first room)

	Width, Height int

	Entrance *Door // nil for the first room
	Exit     Door
	Corridor int // Length of the corridor leading to the entrance, 0 for the first room

	// Cached at creation.
	Abs         Point
	AbsEntrance Point
	AbsExit     Point
}

// WallLength returns the length of the wall on side d.
func (r Room) WallLength(d Direction) int {
	if d.EastWest() {
		return r.Height
	}
	return r.Width
}

// DoorPoint returns the absolute coordinate of a door on this room.
func (r Room) DoorPoint(d Door) Point {
	switch d.Dir {
	case West:
		return Point{X: r.Abs.X, Y: r.Abs.Y + d.Offset}
	case East:
		return Point{X: r.Abs.X + r.Width, Y: r.Abs.Y + d.Offset}
	case North:
		return Point{X: r.Abs.X + d.Offset, Y: r.Abs.Y}
	default:
		return Point{X: r.Abs.X + d.Offset, Y: r.Abs.Y + r.Height}
	}
}

// resolve fills the cached absolute coordinates from prevAbs.
func (r *Room) resolve(prevAbs Point) {
	r.Abs = prevAbs.Add(r.Position)
	r.AbsExit = r.DoorPoint(r.Exit)
	if r.Entrance != nil {
		r.AbsEntrance = r.DoorPoint(*r.Entrance)
	}
}

// IsDoor returns true if p is this room's exit or entrance tile.
func (r Room) IsDoor(p Point) bool {
	if p == r.AbsExit {
		return true
	}
	return r.Entrance != nil && p == r.AbsEntrance
}

// OnPerimeter returns true if p lies on the wall rectangle, doors included.
func (r Room) OnPerimeter(p Point) bool {
	x0, y0 := r.Abs.X, r.Abs.Y
	x1, y1 := x0+r.Width, y0+r.Height
	if (p.X == x0 || p.X == x1) && p.Y >= y0 && p.Y <= y1 {
		return true
	}
	return (p.Y == y0 || p.Y == y1) && p.X >= x0 && p.X <= x1
}

// Interior returns true if p is strictly inside the walls.
func (r Room) Interior(p Point) bool {
	return p.X > r.Abs.X && p.X < r.Abs.X+r.Width &&
		p.Y > r.Abs.Y && p.Y < r.Abs.Y+r.Height
}

// Center returns the absolute center of the room.
func (r Room) Center() Point {
	return Point{X: r.Abs.X + r.Width/2, Y: r.Abs.Y + r.Height/2}
}

// TileAt classifies p relative to this room.
func (r Room) TileAt(p Point) Tile {
	switch {
	case r.IsDoor(p):
		return TileDoor
	case r.OnPerimeter(p):
		return TileWall
	case r.Interior(p):
		return TileFloor
	default:
		return TileVoid
	}
}
