package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minirogue/internal/combat"
	"github.com/samdwyer/minirogue/internal/gamedata"
	"github.com/samdwyer/minirogue/internal/world"
)

// Player is the single controllable avatar.
type Player struct {
	Name   string
	Symbol rune
	Color  tcell.Color
	Pos    world.Point

	HP, MaxHP int
	Attack    int
	Defense   int
}

// NewPlayer creates a player at pos with full health from a template.
func NewPlayer(def gamedata.PlayerDef, pos world.Point) *Player {
	return &Player{
		Name:    def.Name,
		Symbol:  def.GlyphRune(),
		Color:   def.TCellColor(),
		Pos:     pos,
		HP:      def.MaxHealth,
		MaxHP:   def.MaxHealth,
		Attack:  def.Attack,
		Defense: def.Defense,
	}
}

// Move updates the player position by one step in direction d.
func (p *Player) Move(d world.Direction) {
	p.Pos = p.Pos.Step(d, 1)
}

// Position returns the current coordinates.
func (p *Player) Position() world.Point {
	return p.Pos
}

// HealthFraction returns HP / MaxHP.
func (p *Player) HealthFraction() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}

// =============================================================================
// combat.Combatant implementation
// =============================================================================

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetAttack returns attack stat.
func (p *Player) GetAttack() int { return p.Attack }

// GetDefense returns defense stat.
func (p *Player) GetDefense() int { return p.Defense }

// TakeDamage reduces HP by amount without clamping and returns the damage dealt.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.HP -= amount
	return amount
}

// Heal restores HP up to MaxHP and returns the amount actually healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 || p.HP >= p.MaxHP {
		return 0
	}
	actual := amount
	if p.HP+actual > p.MaxHP {
		actual = p.MaxHP - p.HP
	}
	p.HP += actual
	return actual
}

var _ combat.Combatant = (*Player)(nil)
