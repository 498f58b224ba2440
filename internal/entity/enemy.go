package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minirogue/internal/combat"
	"github.com/samdwyer/minirogue/internal/gamedata"
	"github.com/samdwyer/minirogue/internal/world"
)

// Stats are an enemy's combat values, fixed when it spawns.
type Stats struct {
	Attack  int
	Defense int
	MaxHP   int
}

// Enemy represents a hostile creature wandering a room.
type Enemy struct {
	base
	Def    *gamedata.EnemyDef // Bestiary entry (nil for enemies built in tests)
	Name   string             // Display name (e.g., "Goblin")
	Symbol rune               // Display symbol

	Attack  int
	Defense int
	HP      int // Current hit points; may drop below zero on the killing blow
	MaxHP   int

	Dir     world.Direction // Wander direction, valid once HasDir is set
	HasDir  bool
	Engaged bool // Set once the player attacks; engaged enemies never wander again
}

// NewEnemy creates an enemy from a bestiary entry with the given stats.
func NewEnemy(def *gamedata.EnemyDef, pos world.Point, room int, stats Stats) *Enemy {
	e := &Enemy{
		base:    newBase(pos, room),
		Def:     def,
		Name:    "Enemy",
		Symbol:  'e',
		Attack:  stats.Attack,
		Defense: stats.Defense,
		HP:      stats.MaxHP,
		MaxHP:   stats.MaxHP,
	}
	if def != nil {
		e.Name = def.Name
		e.Symbol = def.GlyphRune()
	}
	return e
}

// Kind returns KindEnemy.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Glyph returns the display symbol.
func (e *Enemy) Glyph() rune { return e.Symbol }

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// Wander returns the enemy's wander direction, assigning one with pick on
// first use.
func (e *Enemy) Wander(pick func() world.Direction) world.Direction {
	if !e.HasDir {
		e.Dir = pick()
		e.HasDir = true
	}
	return e.Dir
}

// Reverse turns the wander direction around.
func (e *Enemy) Reverse() {
	e.Dir = e.Dir.Opposite()
}

// =============================================================================
// combat.Defender implementation
// =============================================================================

// GetName returns the enemy's display name.
func (e *Enemy) GetName() string { return e.Name }

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetAttack returns attack stat.
func (e *Enemy) GetAttack() int { return e.Attack }

// GetDefense returns defense stat.
func (e *Enemy) GetDefense() int { return e.Defense }

// TakeDamage reduces HP by amount without clamping and returns the damage dealt.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	e.HP -= amount
	return amount
}

// Engage marks the enemy as fighting the player, freezing its wandering.
func (e *Enemy) Engage() { e.Engaged = true }

var _ combat.Defender = (*Enemy)(nil)
