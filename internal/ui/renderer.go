package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minirogue/internal/entity"
	"github.com/samdwyer/minirogue/internal/game"
	"github.com/samdwyer/minirogue/internal/gamedata"
	"github.com/samdwyer/minirogue/internal/world"
)

// Version is shown in the status line. Release builds override it with
// -ldflags "-X github.com/samdwyer/minirogue/internal/ui.Version=...".
var Version = "dev"

// hudRows is the number of rows reserved below the map.
const hudRows = 2

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	floorStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	doorStyle  = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor("#b58451"))
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// View is the read-only game state the renderer draws.
type View interface {
	State() game.State
	Player() *entity.Player
	ActiveRooms() []world.Room
	Entities() []entity.Entity
	ItemColor() tcell.Color
	Turn() int
	Depth() int
	Kills() int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the active rooms, entities and player with the camera
// centred on the player, then the status line and message.
func (r *Renderer) Render(v View, message string) {
	r.screen.Clear()

	w, h := r.screen.Size()
	mapH := h - hudRows
	if mapH < 1 {
		r.screen.Show()
		return
	}
	cam := newCamera(v.Player().Pos, w, mapH)

	for _, room := range v.ActiveRooms() {
		r.drawRoom(cam, room)
	}

	for _, e := range v.Entities() {
		style := tcell.StyleDefault.Foreground(v.ItemColor())
		if enemy, ok := e.(*entity.Enemy); ok {
			style = tcell.StyleDefault.Foreground(enemy.Color())
		}
		cam.draw(r.screen, e.Position(), e.Glyph(), style)
	}

	p := v.Player()
	cam.draw(r.screen, p.Pos, p.Symbol, tcell.StyleDefault.Foreground(p.Color).Bold(true))

	r.drawStatus(v, mapH)
	r.screen.DrawText(0, mapH+1, message, textStyle)

	r.screen.Show()
}

func (r *Renderer) drawRoom(cam camera, room world.Room) {
	for y := room.Abs.Y; y <= room.Abs.Y+room.Height; y++ {
		for x := room.Abs.X; x <= room.Abs.X+room.Width; x++ {
			p := world.Point{X: x, Y: y}
			tile := room.TileAt(p)
			cam.draw(r.screen, p, tile.Rune(), tileStyle(tile))
		}
	}
}

// drawStatus renders the title, HP, stats and run counters on row y.
func (r *Renderer) drawStatus(v View, y int) {
	p := v.Player()

	x := r.screen.DrawText(0, y, "minirogue "+Version, titleStyle)
	x = r.screen.DrawText(x, y, "  ", textStyle)
	x = r.screen.DrawText(x, y, fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP),
		tcell.StyleDefault.Foreground(hpColor(p.HealthFraction())))
	x = r.screen.DrawText(x, y, fmt.Sprintf("  ATK: %d  DEF: %d  Turn: %d  Depth: %d  Kills: %d",
		p.Attack, p.Defense, v.Turn(), v.Depth(), v.Kills()), textStyle)

	if v.State() == game.StateGameOver {
		r.screen.DrawText(x, y, "  GAME OVER (q to quit)", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return wallStyle
	case world.TileDoor:
		return doorStyle
	case world.TileFloor:
		return floorStyle
	default:
		return tcell.StyleDefault
	}
}

// hpColor shades the HP readout by remaining health.
func hpColor(fraction float64) tcell.Color {
	switch {
	case fraction < 0.25:
		return tcell.ColorRed
	case fraction < 0.6:
		return tcell.ColorOrange
	default:
		return tcell.ColorGreen
	}
}

// camera maps world coordinates to screen cells so that the focus point
// lands in the middle of the map area.
type camera struct {
	offset world.Point
	w, h   int
}

func newCamera(focus world.Point, w, h int) camera {
	return camera{
		offset: world.Point{X: w/2 - focus.X, Y: h/2 - focus.Y},
		w:      w,
		h:      h,
	}
}

// screenPos returns the cell for p and whether it lies inside the map area.
func (c camera) screenPos(p world.Point) (int, int, bool) {
	s := p.Add(c.offset)
	return s.X, s.Y, s.X >= 0 && s.X < c.w && s.Y >= 0 && s.Y < c.h
}

func (c camera) draw(s *Screen, p world.Point, ch rune, style tcell.Style) {
	if x, y, ok := c.screenPos(p); ok {
		s.SetContent(x, y, ch, style)
	}
}
