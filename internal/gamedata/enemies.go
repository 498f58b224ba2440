package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef is a bestiary entry loaded from JSON. Combat stats are not part of
// the definition; they are scaled to the player when the enemy spawns.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string `json:"color"`       // Hex color code (e.g., "#00FF00")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// Weight returns the spawn weight.
func (e EnemyDef) Weight() int {
	return e.SpawnWeight
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	return glyphRune(e.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
