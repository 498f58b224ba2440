package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minirogue/internal/gamedata"
	"github.com/samdwyer/minirogue/internal/world"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindItem, "item"},
		{KindEnemy, "enemy"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestEntityVariants(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "goblin", Name: "Goblin", Glyph: "g", Color: "#00FF00"}
	entities := []Entity{
		NewItem(world.Point{X: 1, Y: 2}, 3),
		NewEnemy(def, world.Point{X: 4, Y: 5}, 3, Stats{Attack: 2, Defense: 1, MaxHP: 4}),
	}

	if entities[0].ID() == entities[1].ID() {
		t.Error("entities share an ID")
	}

	for _, e := range entities {
		if e.RoomIndex() != 3 {
			t.Errorf("%v RoomIndex() = %d, want 3", e.Kind(), e.RoomIndex())
		}
		switch v := e.(type) {
		case *Item:
			if v.Kind() != KindItem || v.Glyph() != ItemGlyph {
				t.Errorf("item kind/glyph = %v/%c", v.Kind(), v.Glyph())
			}
		case *Enemy:
			if v.Kind() != KindEnemy || v.Glyph() != 'g' || v.Name != "Goblin" {
				t.Errorf("enemy kind/glyph/name = %v/%c/%s", v.Kind(), v.Glyph(), v.Name)
			}
			if v.HP != 4 || v.MaxHP != 4 || v.Attack != 2 || v.Defense != 1 {
				t.Errorf("enemy stats = %+v", v)
			}
			if v.Color() != tcell.NewRGBColor(0, 255, 0) {
				t.Errorf("enemy color = %v", v.Color())
			}
		default:
			t.Errorf("unexpected entity type %T", e)
		}
	}

	entities[0].MoveTo(world.Point{X: 9, Y: 9})
	if entities[0].Position() != (world.Point{X: 9, Y: 9}) {
		t.Errorf("MoveTo did not move the entity: %v", entities[0].Position())
	}
}

func TestEnemyWithoutDef(t *testing.T) {
	e := NewEnemy(nil, world.Point{}, 0, Stats{MaxHP: 1})
	if e.Name != "Enemy" || e.Glyph() != 'e' || e.Color() != tcell.ColorPurple {
		t.Errorf("fallback appearance = %s/%c/%v", e.Name, e.Glyph(), e.Color())
	}
}

func TestEnemyWander(t *testing.T) {
	e := NewEnemy(nil, world.Point{}, 0, Stats{MaxHP: 3})
	calls := 0
	pick := func() world.Direction {
		calls++
		return world.South
	}

	if got := e.Wander(pick); got != world.South {
		t.Errorf("first Wander() = %v, want south", got)
	}
	if got := e.Wander(pick); got != world.South || calls != 1 {
		t.Errorf("second Wander() = %v after %d picks, want south after 1", got, calls)
	}
	e.Reverse()
	if got := e.Wander(pick); got != world.North {
		t.Errorf("Wander() after Reverse = %v, want north", got)
	}
}

func TestEnemyDamageIsUnclamped(t *testing.T) {
	e := NewEnemy(nil, world.Point{}, 0, Stats{MaxHP: 4})

	if got := e.TakeDamage(0); got != 0 || e.HP != 4 {
		t.Errorf("TakeDamage(0) = %d, HP %d", got, e.HP)
	}
	e.TakeDamage(6)
	if e.HP != -2 || e.IsAlive() {
		t.Errorf("HP = %d alive=%v, want -2 dead", e.HP, e.IsAlive())
	}
	e.Engage()
	if !e.Engaged {
		t.Error("Engage() did not set Engaged")
	}
}

func TestPlayer(t *testing.T) {
	p := NewPlayer(gamedata.PlayerDef{Name: "Hero", Glyph: "@", Color: "#ffff00", MaxHealth: 10, Attack: 1}, world.Point{})

	if p.HP != 10 || p.MaxHP != 10 || p.Attack != 1 || p.Defense != 0 {
		t.Fatalf("NewPlayer stats = %+v", p)
	}

	p.Move(world.East)
	p.Move(world.South)
	if p.Position() != (world.Point{X: 1, Y: 1}) {
		t.Errorf("Position() = %v, want (1,1)", p.Position())
	}

	p.TakeDamage(4)
	if got := p.Heal(10); got != 4 || p.HP != 10 {
		t.Errorf("Heal(10) = %d, HP %d; want 4, 10", got, p.HP)
	}
	if got := p.Heal(1); got != 0 {
		t.Errorf("Heal at full HP = %d, want 0", got)
	}
	if got := p.HealthFraction(); got != 1 {
		t.Errorf("HealthFraction() = %v, want 1", got)
	}

	p.TakeDamage(12)
	if p.IsAlive() || p.HP != -2 {
		t.Errorf("after lethal damage HP = %d alive=%v", p.HP, p.IsAlive())
	}
}
