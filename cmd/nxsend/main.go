// Package main is the entry point for nxsend, a test producer that
// publishes /quat messages the way the tracker bridge does.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"go.uber.org/zap"

	"github.com/opennx/nxview/internal/config"
	"github.com/opennx/nxview/internal/listener"
	"github.com/opennx/nxview/internal/logger"
	"github.com/opennx/nxview/internal/orientation"
	"github.com/opennx/nxview/internal/tracker"
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

	if err := run(cfg); err != nil {
		logger.Error("sender error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.Sender.RateHz <= 0 {
		return fmt.Errorf("invalid send rate %d", cfg.Sender.RateHz)
	}

	host, portStr, err := net.SplitHostPort(cfg.Sender.Target)
	if err != nil {
		return fmt.Errorf("parsing target %q: %w", cfg.Sender.Target, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("parsing target port %q: %w", portStr, err)
	}

	var src orientation.Source
	if cfg.Sender.Replay != "" {
		replay, err := tracker.NewReplaySource(cfg.Sender.Replay)
		if err != nil {
			return err
		}
		logger.Info("replaying tracker capture",
			zap.String("path", cfg.Sender.Replay),
			zap.Int("frames", replay.Len()),
		)
		src = replay
	} else {
		logger.Info("using synthetic rotation source")
		src = orientation.NewMockSource()
	}

	client := osc.NewClient(host, port)
	interval := time.Second / time.Duration(cfg.Sender.RateHz)

	logger.Info("sending orientation stream",
		zap.String("target", cfg.Sender.Target),
		zap.Int("rate_hz", cfg.Sender.RateHz),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info("sender stopped", zap.Int("messages_sent", sent))
			return nil
		case <-ticker.C:
			q, err := src.Next()
			if err != nil {
				logger.Warn("source error, skipping sample", zap.Error(err))
				continue
			}

			msg := osc.NewMessage(listener.QuatAddress, q.W, q.X, q.Y, q.Z)
			if err := client.Send(msg); err != nil {
				// UDP send failures are transient; keep going
				logger.Warn("send failed", zap.Error(err))
				continue
			}
			sent++
		}
	}
}
