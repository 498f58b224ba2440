package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/minirogue/internal/game"
)

// App drives a game from terminal input. It runs on a single goroutine:
// render, wait for a key, apply the decoded intent.
type App struct {
	game     *game.Game
	screen   *Screen
	renderer *Renderer
	sounds   *SoundManager
	logger   *zap.Logger
	message  string
}

// NewApp creates a frontend for g. sounds may be nil for a silent game.
func NewApp(g *game.Game, screen *Screen, sounds *SoundManager, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		game:     g,
		screen:   screen,
		renderer: NewRenderer(screen),
		sounds:   sounds,
		logger:   logger,
		message:  "Clear the room, then step through the exit. Arrows or WASD to move, space to wait.",
	}
}

// Run is the main loop. It returns when the player quits, the screen is
// finalized or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.renderer.Render(a.game, a.message)

		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if !a.handleKey(ctx, ev) {
				a.logger.Info("quit",
					zap.Int("turn", a.game.Turn()),
					zap.Int("depth", a.game.Depth()),
					zap.Int("kills", a.game.Kills()),
				)
				return nil
			}
		}
	}
}

// handleKey applies one key press and returns false when it asks to quit.
func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	cmd, intent := DecodeKey(ev)
	switch cmd {
	case CommandQuit:
		return false
	case CommandIntent:
		out := a.game.Apply(ctx, intent)
		if !out.Processed {
			return true
		}
		a.message = a.game.TakeMessage()
		for _, cue := range CuesFor(out) {
			a.sounds.Play(cue)
		}
	}
	return true
}
