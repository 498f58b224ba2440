package world

// Direction identifies one of the four wall sides of a room. The same codes
// are used for door placement and for movement: stepping in direction d from
// a door on wall d leaves the room.
type Direction int

const (
	West Direction = iota
	North
	East
	South
)

// Directions lists every direction in code order.
var Directions = [4]Direction{West, North, East, South}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four canonical codes.
func (d Direction) Valid() bool {
	return d >= West && d <= South
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Next returns the direction rotated forward by one code.
func (d Direction) Next() Direction {
	return (d + 1) % 4
}

// EastWest reports whether d names a vertical wall (West or East), whose
// door offsets run along the y axis.
func (d Direction) EastWest() bool {
	return d%2 == 0
}

// Delta returns the unit step for moving in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case West:
		return -1, 0
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return 0, 0
	}
}

// Point is an absolute or relative tile coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Step returns p moved n tiles in direction d.
func (p Point) Step(d Direction, n int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*n, Y: p.Y + dy*n}
}
