package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// PlayerDef defines the starting avatar loaded from JSON.
type PlayerDef struct {
	Name      string `json:"name"`      // Display name used in combat messages
	Glyph     string `json:"glyph"`     // Single character for rendering (e.g., "@")
	Color     string `json:"color"`     // Hex color code
	MaxHealth int    `json:"maxHealth"` // Starting and maximum health
	Attack    int    `json:"attack"`    // Base attack power
	Defense   int    `json:"defense"`   // Base defense value
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlayerDef) GlyphRune() rune {
	return glyphRune(p.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (p *PlayerDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Color)
	if err != nil {
		return tcell.ColorYellow
	}
	return color
}

// LoadPlayer loads the player template from the embedded player.json file.
func LoadPlayer() (PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return PlayerDef{}, err
	}
	if def.MaxHealth <= 0 {
		return PlayerDef{}, fmt.Errorf("player.json: maxHealth must be positive, got %d", def.MaxHealth)
	}
	return def, nil
}
