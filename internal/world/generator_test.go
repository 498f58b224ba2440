package world

import (
	"context"
	"math/rand"
	"testing"
)

func testGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		HeightMin:      5,
		HeightMax:      15,
		WidthFactorMin: 2,
		WidthFactorMax: 4,
		CorridorMin:    2,
		CorridorMax:    8,
	}
}

// buildChain generates n rooms with the given seed.
func buildChain(t *testing.T, seed int64, n int) *Chain {
	t.Helper()
	g := NewGenerator(testGeneratorConfig(), rand.New(rand.NewSource(seed)))
	chain := &Chain{}
	ctx := context.Background()
	for i := 0; i < n; i++ {
		g.Generate(ctx, chain)
	}
	return chain
}

func TestGeneratorReproducibility(t *testing.T) {
	c1 := buildChain(t, 12345, 20)
	c2 := buildChain(t, 12345, 20)

	for i := 0; i < c1.Len(); i++ {
		r1, _ := c1.Room(i)
		r2, _ := c2.Room(i)
		if r1.Abs != r2.Abs || r1.Width != r2.Width || r1.Height != r2.Height || r1.Exit != r2.Exit {
			t.Errorf("Room %d mismatch: %+v != %+v", i, r1, r2)
		}
	}
}

func TestFirstRoomCenteredOnOrigin(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		chain := buildChain(t, seed, 1)
		room, _ := chain.Last()

		if room.Prev != -1 {
			t.Fatalf("seed %d: first room has predecessor %d", seed, room.Prev)
		}
		if room.Entrance != nil {
			t.Errorf("seed %d: first room has entrance %+v", seed, *room.Entrance)
		}
		want := Point{X: -(room.Width / 2), Y: -(room.Height / 2)}
		if room.Abs != want || room.Position != want {
			t.Errorf("seed %d: first room at %v (abs %v), want %v", seed, room.Position, room.Abs, want)
		}
		if !room.Interior(Point{}) {
			t.Errorf("seed %d: origin is not inside first room %+v", seed, room)
		}
	}
}

func TestRoomSizeRanges(t *testing.T) {
	cfg := testGeneratorConfig()
	chain := buildChain(t, 7, 200)

	for _, room := range chain.rooms {
		if room.Height < cfg.HeightMin || room.Height >= cfg.HeightMax {
			t.Errorf("Room %d height %d outside [%d, %d)", room.Index, room.Height, cfg.HeightMin, cfg.HeightMax)
		}
		if room.Width < 2*room.Height || room.Width >= 4*room.Height {
			t.Errorf("Room %d width %d not in [2h, 4h) for h=%d", room.Index, room.Width, room.Height)
		}
	}
}

func TestChainConsistency(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		chain := buildChain(t, seed, 30)

		for i := 1; i < chain.Len(); i++ {
			room, _ := chain.Room(i)
			prev, ok := chain.Room(room.Prev)
			if !ok || prev.Index != i-1 {
				t.Fatalf("seed %d room %d: predecessor = %d, want %d", seed, i, room.Prev, i-1)
			}
			if room.Entrance == nil {
				t.Fatalf("seed %d room %d: missing entrance", seed, i)
			}
			if want := (prev.Exit.Dir + 2) % 4; room.Entrance.Dir != want {
				t.Errorf("seed %d room %d: entrance %v, want %v", seed, i, room.Entrance.Dir, want)
			}
			if room.Exit.Dir == room.Entrance.Dir {
				t.Errorf("seed %d room %d: exit equals entrance (%v)", seed, i, room.Exit.Dir)
			}
		}
	}
}

func TestAbsolutePositionComposition(t *testing.T) {
	chain := buildChain(t, 99, 40)

	// Summing relative positions from the first room must give every
	// room's cached absolute position.
	var sum Point
	for i := 0; i < chain.Len(); i++ {
		room, _ := chain.Room(i)
		sum = sum.Add(room.Position)
		if room.Abs != sum {
			t.Errorf("Room %d abs = %v, want %v", i, room.Abs, sum)
		}
		if i > 0 {
			prev, _ := chain.Room(i - 1)
			if got := prev.Abs.Add(room.Position); got != room.Abs {
				t.Errorf("Room %d abs = %v, want prev %v + rel %v", i, room.Abs, prev.Abs, room.Position)
			}
		}
	}
}

func TestEntranceAlignsWithPreviousExit(t *testing.T) {
	cfg := testGeneratorConfig()
	for seed := int64(1); seed <= 20; seed++ {
		chain := buildChain(t, seed, 30)

		for i := 1; i < chain.Len(); i++ {
			room, _ := chain.Room(i)
			prev, _ := chain.Room(i - 1)

			if room.Corridor < cfg.CorridorMin || room.Corridor >= cfg.CorridorMax {
				t.Errorf("seed %d room %d: corridor %d outside [%d, %d)", seed, i, room.Corridor, cfg.CorridorMin, cfg.CorridorMax)
			}
			want := prev.AbsExit.Step(prev.Exit.Dir, room.Corridor)
			if room.AbsEntrance != want {
				t.Errorf("seed %d room %d: entrance at %v, want %v (exit %v dir %v corridor %d)",
					seed, i, room.AbsEntrance, want, prev.AbsExit, prev.Exit.Dir, room.Corridor)
			}
		}
	}
}

func TestDoorsAvoidCorners(t *testing.T) {
	chain := buildChain(t, 2024, 100)

	for _, room := range chain.rooms {
		doors := []Door{room.Exit}
		if room.Entrance != nil {
			doors = append(doors, *room.Entrance)
		}
		for _, d := range doors {
			if n := room.WallLength(d.Dir); d.Offset < 1 || d.Offset > n-1 {
				t.Errorf("Room %d door %+v offset outside [1, %d]", room.Index, d, n-1)
			}
			p := room.DoorPoint(d)
			if !room.OnPerimeter(p) {
				t.Errorf("Room %d door %+v at %v is not on the perimeter", room.Index, d, p)
			}
		}
	}
}

func TestNewRoomDoesNotOverlapPredecessor(t *testing.T) {
	chain := buildChain(t, 31337, 50)

	for i := 1; i < chain.Len(); i++ {
		room, _ := chain.Room(i)
		prev, _ := chain.Room(i - 1)
		for y := room.Abs.Y; y <= room.Abs.Y+room.Height; y++ {
			for x := room.Abs.X; x <= room.Abs.X+room.Width; x++ {
				if prev.TileAt(Point{X: x, Y: y}) != TileVoid {
					t.Fatalf("Room %d overlaps room %d at (%d,%d)", i, i-1, x, y)
				}
			}
		}
	}
}

func TestGeneratorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GeneratorConfig)
		wantErr bool
	}{
		{"defaults", func(*GeneratorConfig) {}, false},
		{"tiny rooms", func(c *GeneratorConfig) { c.HeightMin = 2 }, true},
		{"empty height range", func(c *GeneratorConfig) { c.HeightMax = c.HeightMin }, true},
		{"narrow factor", func(c *GeneratorConfig) { c.WidthFactorMin = 0.5 }, true},
		{"inverted factor", func(c *GeneratorConfig) { c.WidthFactorMax = 1.5 }, true},
		{"zero corridor", func(c *GeneratorConfig) { c.CorridorMin = 0 }, true},
		{"empty corridor range", func(c *GeneratorConfig) { c.CorridorMax = 2 }, true},
	}

	for _, tt := range tests {
		cfg := testGeneratorConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
