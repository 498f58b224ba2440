// Package logging builds the zap logger used by the game. The terminal is
// owned by the renderer, so log output always goes to a file.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level, encoding and destination of log output.
type Config struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file"`   // empty disables logging
}

// New builds a logger from cfg. An unknown level falls back to info. When no
// file is configured the returned logger discards everything.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	return zapCfg.Build()
}
