package world

// ActiveWindow is the number of most recent rooms that take part in
// collision, rendering and entity simulation.
const ActiveWindow = 2

// Chain is the append-only sequence of generated rooms. Each room refers to
// its predecessor by index.
type Chain struct {
	rooms []Room
}

// Len returns the number of rooms generated so far.
func (c *Chain) Len() int {
	return len(c.rooms)
}

// Room returns the room at index i.
func (c *Chain) Room(i int) (Room, bool) {
	if i < 0 || i >= len(c.rooms) {
		return Room{}, false
	}
	return c.rooms[i], true
}

// Last returns the most recently generated room.
func (c *Chain) Last() (Room, bool) {
	return c.Room(len(c.rooms) - 1)
}

// Active returns the rooms of the active window, oldest first.
func (c *Chain) Active() []Room {
	start := len(c.rooms) - ActiveWindow
	if start < 0 {
		start = 0
	}
	return c.rooms[start:]
}

// IsActive returns true if the room with the given index is inside the
// active window.
func (c *Chain) IsActive(index int) bool {
	return index >= 0 && index < len(c.rooms) && index >= len(c.rooms)-ActiveWindow
}

func (c *Chain) append(r Room) {
	c.rooms = append(c.rooms, r)
}
