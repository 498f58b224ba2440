package gamedata

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// EffectType names what a picked-up item does to the player.
type EffectType string

const (
	// EffectMaxHealth raises maximum health by Amount.
	EffectMaxHealth EffectType = "max_health"
	// EffectAttack raises attack by Amount.
	EffectAttack EffectType = "attack"
	// EffectDefense raises defense by Amount.
	EffectDefense EffectType = "defense"
	// EffectHeal restores Percent of maximum health, rounded to nearest.
	EffectHeal EffectType = "heal"
)

// ItemEffectDef is one entry of the pickup table.
type ItemEffectDef struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Effect  EffectType `json:"effect"`
	Amount  int        `json:"amount,omitempty"`
	Percent int        `json:"percent,omitempty"`
	Odds    int        `json:"weight"`
	Message string     `json:"message"` // fmt template taking the item name and the applied amount
}

// Weight returns the relative pickup odds.
func (d ItemEffectDef) Weight() int {
	return d.Odds
}

// Describe renders the pickup message for the amount actually applied.
func (d ItemEffectDef) Describe(applied int) string {
	if d.Message == "" {
		return fmt.Sprintf("You picked up a %s.", d.Name)
	}
	return fmt.Sprintf(d.Message, d.Name, applied)
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Glyph   string          `json:"glyph"`
	Color   string          `json:"color"`
	Effects []ItemEffectDef `json:"effects"`
}

// ItemTable holds the pickup effects and the shared item appearance.
type ItemTable struct {
	glyph   rune
	color   tcell.Color
	effects []ItemEffectDef
}

// NewItemTable creates a table from a decoded items file.
func NewItemTable(file ItemsFile) *ItemTable {
	color, err := ParseHexColor(file.Color)
	if err != nil {
		color = tcell.ColorAqua
	}
	return &ItemTable{
		glyph:   glyphRune(file.Glyph),
		color:   color,
		effects: file.Effects,
	}
}

// LoadItemTable loads the pickup table from the embedded items.json.
func LoadItemTable() (*ItemTable, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	if TotalWeight(file.Effects) <= 0 {
		return nil, errors.New("items.json has no selectable effects")
	}
	for _, e := range file.Effects {
		switch e.Effect {
		case EffectMaxHealth, EffectAttack, EffectDefense, EffectHeal:
		default:
			return nil, fmt.Errorf("items.json: effect %q has unknown type %q", e.ID, e.Effect)
		}
	}
	return NewItemTable(file), nil
}

// Roll picks a random effect.
func (t *ItemTable) Roll(rng *rand.Rand) (ItemEffectDef, bool) {
	return PickWeighted(rng, t.effects)
}

// Effects returns all pickup effects.
func (t *ItemTable) Effects() []ItemEffectDef {
	return t.effects
}

// Glyph returns the item display character.
func (t *ItemTable) Glyph() rune {
	return t.glyph
}

// Color returns the item display color.
func (t *ItemTable) Color() tcell.Color {
	return t.color
}
