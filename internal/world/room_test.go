package world

import "testing"

// sampleRoom is a 10x5 room at (0,0) with a west entrance and an east exit.
func sampleRoom() Room {
	r := Room{
		Index:    1,
		Prev:     0,
		Width:    10,
		Height:   5,
		Entrance: &Door{Dir: West, Offset: 2},
		Exit:     Door{Dir: East, Offset: 3},
	}
	r.resolve(Point{})
	return r
}

func TestDirectionHelpers(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		next     Direction
		dx, dy   int
		name     string
	}{
		{West, East, North, -1, 0, "west"},
		{North, South, East, 0, -1, "north"},
		{East, West, South, 1, 0, "east"},
		{South, North, West, 0, 1, "south"},
	}

	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.opposite)
		}
		if got := tt.dir.Next(); got != tt.next {
			t.Errorf("%v.Next() = %v, want %v", tt.dir, got, tt.next)
		}
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
		if got := tt.dir.String(); got != tt.name {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.name)
		}
	}

	if Direction(7).Valid() {
		t.Error("Direction(7).Valid() = true, want false")
	}
	if got := Direction(7).String(); got != "unknown" {
		t.Errorf("Direction(7).String() = %q, want %q", got, "unknown")
	}
}

func TestPointStep(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Step(East, 5); got != (Point{X: 8, Y: 4}) {
		t.Errorf("Step(East, 5) = %v", got)
	}
	if got := p.Step(North, 2); got != (Point{X: 3, Y: 2}) {
		t.Errorf("Step(North, 2) = %v", got)
	}
	if got := p.Add(Point{X: -3, Y: 1}).Sub(p); got != (Point{X: -3, Y: 1}) {
		t.Errorf("Add/Sub round trip = %v", got)
	}
}

func TestDoorPoints(t *testing.T) {
	r := sampleRoom()
	tests := []struct {
		door Door
		want Point
	}{
		{Door{Dir: West, Offset: 2}, Point{X: 0, Y: 2}},
		{Door{Dir: East, Offset: 3}, Point{X: 10, Y: 3}},
		{Door{Dir: North, Offset: 4}, Point{X: 4, Y: 0}},
		{Door{Dir: South, Offset: 6}, Point{X: 6, Y: 5}},
	}
	for _, tt := range tests {
		if got := r.DoorPoint(tt.door); got != tt.want {
			t.Errorf("DoorPoint(%+v) = %v, want %v", tt.door, got, tt.want)
		}
	}
	if r.AbsEntrance != (Point{X: 0, Y: 2}) || r.AbsExit != (Point{X: 10, Y: 3}) {
		t.Errorf("cached doors = %v / %v", r.AbsEntrance, r.AbsExit)
	}
}

func TestRoomTiles(t *testing.T) {
	r := sampleRoom()
	tests := []struct {
		p    Point
		want Tile
	}{
		{Point{X: 0, Y: 0}, TileWall},   // corner
		{Point{X: 10, Y: 5}, TileWall},  // far corner
		{Point{X: 5, Y: 0}, TileWall},   // north wall
		{Point{X: 0, Y: 2}, TileDoor},   // entrance
		{Point{X: 10, Y: 3}, TileDoor},  // exit
		{Point{X: 5, Y: 2}, TileFloor},  // interior
		{Point{X: 11, Y: 3}, TileVoid},  // corridor
		{Point{X: -1, Y: -1}, TileVoid}, // outside
	}
	for _, tt := range tests {
		if got := r.TileAt(tt.p); got != tt.want {
			t.Errorf("TileAt(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
	if TileWall.IsPassable() {
		t.Error("TileWall.IsPassable() = true")
	}
	if !TileDoor.IsPassable() || !TileVoid.IsPassable() {
		t.Error("doors and corridors should be passable")
	}
}

func TestChainActiveWindow(t *testing.T) {
	chain := &Chain{}
	if len(chain.Active()) != 0 {
		t.Fatal("empty chain has active rooms")
	}
	if _, ok := chain.Last(); ok {
		t.Fatal("empty chain has a last room")
	}

	for i := 0; i < 4; i++ {
		chain.append(Room{Index: i, Prev: i - 1})
		active := chain.Active()
		wantLen := min(i+1, ActiveWindow)
		if len(active) != wantLen {
			t.Fatalf("after %d rooms Active() has %d rooms, want %d", i+1, len(active), wantLen)
		}
		if active[len(active)-1].Index != i {
			t.Errorf("last active room = %d, want %d", active[len(active)-1].Index, i)
		}
	}

	for i, want := range []bool{false, false, true, true} {
		if got := chain.IsActive(i); got != want {
			t.Errorf("IsActive(%d) = %v, want %v", i, got, want)
		}
	}
	if chain.IsActive(4) || chain.IsActive(-1) {
		t.Error("IsActive reports rooms that do not exist")
	}
}
