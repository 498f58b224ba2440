package main

import (
	"testing"

	"github.com/samdwyer/minirogue/internal/game"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(logLevelEnv, "debug")
	t.Setenv(logFileEnv, "")
	t.Setenv(audioEnv, "true")

	cfg := game.DefaultFileConfig()
	if err := applyEnv(&cfg); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, want empty (logging disabled)", cfg.Log.File)
	}
	if !cfg.Audio {
		t.Error("Audio = false, want true")
	}
}

func TestApplyEnvKeepsFileSettings(t *testing.T) {
	cfg := game.DefaultFileConfig()
	cfg.Log.Level = "warn"
	if err := applyEnv(&cfg); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.File != "minirogue.log" || cfg.Audio {
		t.Errorf("settings changed without env overrides: %+v", cfg)
	}
}

func TestApplyEnvRejectsBadAudio(t *testing.T) {
	t.Setenv(audioEnv, "loud")
	cfg := game.DefaultFileConfig()
	if err := applyEnv(&cfg); err == nil {
		t.Error("applyEnv() accepted MINIROGUE_AUDIO=loud")
	}
}
