// Package ui is the terminal frontend: it decodes keys into intents, draws
// the active rooms around the player and plays optional sound cues.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with the few operations the frontend needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a screen on the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return WrapScreen(s)
}

// WrapScreen initializes s and wraps it. Tests pass a simulation screen.
func WrapScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event. It returns nil
// once the screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text starting at (x, y), clipped to the screen width. It
// returns the column after the last rune written.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	w, _ := s.Size()
	for _, ch := range text {
		if x >= w {
			break
		}
		s.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
