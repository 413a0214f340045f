package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"tinytally/internal/adapters/auth/remote"
	"tinytally/internal/adapters/auth/static"
	rediscache "tinytally/internal/adapters/cache/redis"
	pg "tinytally/internal/adapters/storage/postgres"
	"tinytally/internal/config"
	"tinytally/internal/platform/logger"
	"tinytally/internal/ports/auth"
	"tinytally/internal/router"
)

// @title TinyTally API
// @version 1.0
// @description Registro de tomas, pañales, sueño y medicamentos de un bebé, con análisis de patrones.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Insights.Location()
	if err != nil {
		return fmt.Errorf("insights timezone: %w", err)
	}

	opts := router.Options{
		Insights: router.InsightsOptions{
			Location:     loc,
			DefaultDays:  cfg.Insights.DefaultDays,
			MaxDays:      cfg.Insights.MaxDays,
			WetThreshold: cfg.Insights.WetDiaperThreshold,
			SideLookback: cfg.Insights.SideLookback,
		},
		InsightsTTL: cfg.Redis.ReportTTL,
		Logger:      log,
	}

	// Postgres opcional; sin DSN queda el store en memoria.
	if cfg.Database.DSN != "" {
		db, err := pg.Open(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer db.Close()

		if !cfg.Database.SkipMigrate {
			n, err := pg.Migrate(ctx, db)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied", map[string]any{"count": n})
		}
		opts.DB = db
	} else {
		log.Warn("DATABASE_DSN empty, using in-memory store", nil)
	}

	if cfg.Redis.Addr != "" {
		client, err := rediscache.NewClient(ctx, rediscache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer client.Close()
		opts.InsightsCache = rediscache.NewKVStore(client)
	}

	tokens, err := cfg.Auth.Tokens()
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	// tokens estáticos primero, luego el servicio de identidad
	var verifiers []auth.AuthVerifier
	if tokens != nil {
		verifiers = append(verifiers, static.NewVerifier(tokens))
	}
	if cfg.Auth.VerifyURL != "" {
		v, err := remote.NewVerifier(remote.Config{
			BaseURL: cfg.Auth.VerifyURL,
			APIKey:  cfg.Auth.VerifyAPIKey,
			Timeout: cfg.Auth.VerifyTimeout,
		})
		if err != nil {
			return fmt.Errorf("auth: %w", err)
		}
		verifiers = append(verifiers, v)
	}
	opts.AuthVerifier = auth.Chain(verifiers...)
	if opts.AuthVerifier == nil {
		log.Warn("no auth configured, accepting X-Debug-User-ID", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
