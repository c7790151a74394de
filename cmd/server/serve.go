package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/damn090909-boop/Simple-Game/internal/engine"
	"github.com/damn090909-boop/Simple-Game/internal/infrastructure/storage"
	"github.com/damn090909-boop/Simple-Game/internal/network"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/clock"
	"github.com/damn090909-boop/Simple-Game/internal/redis"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/presence"
	"github.com/damn090909-boop/Simple-Game/internal/repositories/structures"
	"github.com/damn090909-boop/Simple-Game/internal/server"
	"github.com/damn090909-boop/Simple-Game/internal/version"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
)

var (
	servePort      string
	serveRedisAddr string
	servePlayerID  string
	serveSeed      int64
	serveMonsters  int
	serveSnapshots string
	presenceTTL    time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the session and its debug server",
	Long: `Start one game session on a fixed-rate frame loop and expose it over HTTP and websocket.
Settings come from GAME_* environment variables; flags override them.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port (GAME_PORT, default 8080)")
	serveCmd.Flags().StringVar(&serveRedisAddr, "redis", "", "redis address; empty keeps everything in memory (GAME_REDIS_ADDR)")
	serveCmd.Flags().StringVar(&servePlayerID, "player", "", "player id (GAME_PLAYER_ID)")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "world seed, 0 for random (GAME_SEED)")
	serveCmd.Flags().IntVar(&serveMonsters, "monsters", -1, "monster cap, -1 keeps the default")
	serveCmd.Flags().StringVar(&serveSnapshots, "snapshots", "", "snapshot directory (GAME_SNAPSHOT_DIR)")
	serveCmd.Flags().DurationVar(&presenceTTL, "presence-ttl", time.Hour, "expiry of published positions in redis")
}

// serveConfig layers defaults, environment and flags.
func serveConfig() (engine.Config, error) {
	cfg := engine.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		return cfg, err
	}

	if servePort != "" {
		cfg.Port = servePort
	}
	if serveRedisAddr != "" {
		cfg.RedisAddr = serveRedisAddr
	}
	if servePlayerID != "" {
		cfg.PlayerID = servePlayerID
	}
	if serveSeed != 0 {
		cfg.Seed = serveSeed
	}
	if serveMonsters >= 0 {
		cfg.MaxMonsters = serveMonsters
	}
	if serveSnapshots != "" {
		cfg.SnapshotDir = serveSnapshots
	}
	return cfg, cfg.Validate()
}

// sessionDeps picks redis-backed repositories when an address is set.
func sessionDeps(ctx context.Context, cfg engine.Config) (engine.Deps, func(), error) {
	clk := clock.New()
	deps := engine.Deps{Clock: clk}
	if cfg.RedisAddr == "" {
		logger.Log.Info("no redis address, storing structures and positions in memory")
		return deps, func() {}, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{PoolSize: 10, MaxRetries: 3})
	if err != nil {
		return deps, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close redis client")
		}
	}
	if err := redis.Ping(ctx, client, 3*time.Second); err != nil {
		closeFn()
		return deps, nil, err
	}

	deps.Structures, err = structures.NewRedis(&structures.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		closeFn()
		return deps, nil, fmt.Errorf("structures repository: %w", err)
	}
	deps.Presence, err = presence.NewRedis(&presence.RedisConfig{Client: client, TTL: presenceTTL})
	if err != nil {
		closeFn()
		return deps, nil, fmt.Errorf("presence repository: %w", err)
	}

	logger.Log.WithField("addr", cfg.RedisAddr).Info("connected to redis")
	return deps, closeFn, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Log.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	logger.Log.Info(version.String())

	// 1. Configuration
	cfg, err := serveConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// 2. Storage
	deps, closeStorage, err := sessionDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	snapshots, err := storage.NewSnapshotService(cfg.SnapshotDir)
	if err != nil {
		return err
	}

	// 3. Session and frame loop
	game, err := engine.NewGame(ctx, cfg, deps)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	hub := network.NewHub()
	runner := engine.NewRunner(game, hub)

	loopDone := make(chan struct{})
	go func() {
		runner.Run(ctx)
		close(loopDone)
	}()

	// 4. HTTP
	srv := server.New(runner, hub, snapshots, cfg.Port)
	err = srv.Run(ctx)
	cancel()
	<-loopDone

	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	logger.Log.Info("Done.")
	return nil
}
