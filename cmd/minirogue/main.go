// Package main is the entry point for MiniRogue.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/minirogue/internal/game"
	"github.com/samdwyer/minirogue/internal/logging"
	"github.com/samdwyer/minirogue/internal/telemetry"
	"github.com/samdwyer/minirogue/internal/ui"
)

const (
	configEnv   = "MINIROGUE_CONFIG"
	logLevelEnv = "MINIROGUE_LOG_LEVEL"
	logFileEnv  = "MINIROGUE_LOG_FILE"
	audioEnv    = "MINIROGUE_AUDIO"
)

func main() {
	// Load .env file for local development. Not fatal: env vars might be
	// set directly.
	envErr := godotenv.Load()

	configPath := flag.String("config", os.Getenv(configEnv), "path to a YAML settings file")
	flag.Parse()

	cfg, err := game.LoadFileConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := applyEnv(&cfg); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to open log %s: %v", cfg.Log.File, err)
	}
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Debug(".env file not loaded", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	g, err := game.New(ctx, game.Config{Tuning: cfg.Tuning}, game.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	var sounds *ui.SoundManager
	if cfg.Audio {
		sounds = ui.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
			sounds = nil
		}
		defer sounds.Cleanup()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	runErr := ui.NewApp(g, screen, sounds, logger).Run(ctx)
	screen.Close()

	if runErr != nil && ctx.Err() == nil {
		logger.Error("game loop failed", zap.Error(runErr))
		fmt.Fprintf(os.Stderr, "minirogue: %v\n", runErr)
		os.Exit(1)
	}
	if g.State() == game.StateGameOver {
		fmt.Printf("You fell on turn %d in room %d after slaying %d enemies.\n", g.Turn(), g.Depth(), g.Kills())
	}
}

// applyEnv overrides file settings with MINIROGUE_* environment variables.
func applyEnv(cfg *game.FileConfig) error {
	if v := os.Getenv(logLevelEnv); v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(logFileEnv); ok {
		cfg.Log.File = v
	}
	if v := os.Getenv(audioEnv); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", audioEnv, v, err)
		}
		cfg.Audio = on
	}
	return nil
}
