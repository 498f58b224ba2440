package entity

import "github.com/samdwyer/minirogue/internal/world"

// ItemGlyph is the default display symbol for items.
const ItemGlyph = '*'

// Item is a collectible lying in a room. Its effect is rolled on pickup.
type Item struct {
	base
	Symbol rune
}

// NewItem creates an item at pos owned by the given room.
func NewItem(pos world.Point, room int) *Item {
	return &Item{base: newBase(pos, room), Symbol: ItemGlyph}
}

// Kind returns KindItem.
func (i *Item) Kind() Kind { return KindItem }

// Glyph returns the display symbol.
func (i *Item) Glyph() rune { return i.Symbol }
