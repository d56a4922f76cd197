// Package main is the entry point for the Emberisle island scene.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/emberisle/emberisle/internal/config"
	"github.com/emberisle/emberisle/internal/game"
	"github.com/emberisle/emberisle/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Emberisle ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the scene
	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to initialize", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("runtime error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
