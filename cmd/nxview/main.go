// Package main is the entry point for the nxview orientation viewer.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/opennx/nxview/internal/config"
	"github.com/opennx/nxview/internal/listener"
	"github.com/opennx/nxview/internal/logger"
	"github.com/opennx/nxview/internal/orientation"
	"github.com/opennx/nxview/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== nxview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	state := orientation.NewState()

	l, err := listener.New(cfg.Listener.Listen, state)
	if err != nil {
		logger.Error("failed to create listener", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(cfg, state)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	// The listener runs on its own goroutine; the render loop owns the
	// main thread. Closing the viewer cancels the listener.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- l.Run(ctx)
	}()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	cancel()
	if err := <-errCh; err != nil {
		logger.Error("listener error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
