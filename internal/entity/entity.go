// Package entity provides the player and the items and enemies that rooms
// spawn.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/minirogue/internal/world"
)

// Kind tags the variant of an Entity.
type Kind int

const (
	KindItem Kind = iota
	KindEnemy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is a spawned feature of a room. The set of implementations is
// closed: *Item and *Enemy.
type Entity interface {
	ID() uuid.UUID
	Kind() Kind
	Position() world.Point
	MoveTo(p world.Point)
	RoomIndex() int
	Glyph() rune

	sealed()
}

// base holds the fields every entity shares.
type base struct {
	id   uuid.UUID
	pos  world.Point
	room int
}

func newBase(pos world.Point, room int) base {
	return base{id: uuid.New(), pos: pos, room: room}
}

// ID returns the entity's unique identifier.
func (b *base) ID() uuid.UUID { return b.id }

// Position returns the entity's absolute position.
func (b *base) Position() world.Point { return b.pos }

// MoveTo places the entity at p.
func (b *base) MoveTo(p world.Point) { b.pos = p }

// RoomIndex returns the index of the room that spawned the entity.
func (b *base) RoomIndex() int { return b.room }

func (b *base) sealed() {}
