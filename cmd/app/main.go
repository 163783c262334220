package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcelhub/cmd"
	"parcelhub/internal/adapters/out/cache"
	"parcelhub/internal/adapters/out/identity"
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.AppName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal("parcelhub stopped with error", zap.Error(err))
	}
	log.Info("parcelhub stopped")
}

func run(ctx context.Context, cfg cmd.Config, log *zap.Logger) error {
	db, err := postgres.Open(postgres.Options{
		DSN:          cfg.DSN(),
		ShowSQL:      cfg.DBShowSQL,
		MaxOpenConns: cfg.DBMaxConns,
		MaxIdleConns: cfg.DBMaxConns / 2,
		ConnMaxLife:  30 * time.Minute,
		ConnectTries: cfg.DBConnectTry,
		RetryDelay:   2 * time.Second,
	}, log.Named("db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		return err
	}

	var statsCache ports.StatsCache
	if cfg.CacheEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, log.Named("redis"))
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() { _ = rdb.Close() }()
		statsCache = cache.NewRedisStatsCache(rdb)
	}

	app, err := cmd.NewCompositionRoot(cfg, db, verifier, statsCache, log)
	if err != nil {
		return err
	}

	router, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}
	jm, err := app.CreateJobManager()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server",
			zap.String("addr", srv.Addr),
			zap.String("auth_provider", cfg.AuthProvider),
			zap.Bool("stats_cache", statsCache != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	jm.StartAll()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	jm.StopAll(shutdownCtx)
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func newVerifier(ctx context.Context, cfg cmd.Config) (ports.IdentityVerifier, error) {
	switch cfg.AuthProvider {
	case cmd.AuthProviderFirebase:
		return identity.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsPath)
	case cmd.AuthProviderJWT:
		return identity.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.AuthProvider)
	}
}
