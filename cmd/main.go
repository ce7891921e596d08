package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"reachpay/internal/adapter/clock"
	httpadapter "reachpay/internal/adapter/http"
	"reachpay/internal/adapter/memory"
	"reachpay/internal/adapter/postgres"
	"reachpay/internal/adapter/usecase"
	"reachpay/internal/config"
	"reachpay/internal/config/configs"
	"reachpay/internal/core/custody"
	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
	"reachpay/internal/db"
	"reachpay/internal/telemetry"
	"reachpay/internal/worker"
)

// main is the entry point of the reachpay service. It loads configuration,
// builds the store selected by STORE_DRIVER, wires the settlement use case
// and serves the HTTP API until a termination signal arrives.
func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracing shutdown error", slog.Any("error", err))
		}
	}()

	oracle, err := domain.ParseIdentity(cfg.Oracle.Identity)
	if err != nil {
		return fmt.Errorf("oracle identity: %w", err)
	}
	guard, err := domain.NewGuard(oracle)
	if err != nil {
		return fmt.Errorf("oracle identity: %w", err)
	}

	key, err := cfg.Custody.Key()
	if err != nil {
		return err
	}
	if key == nil {
		key = make([]byte, 32)
		if _, err = rand.Read(key); err != nil {
			return err
		}
		logger.Warn("CUSTODY_SECRET not set, using an ephemeral custody key")
	}
	custodian, err := custody.NewCustodian(key)
	if err != nil {
		return fmt.Errorf("custody secret: %w", err)
	}

	driver, _ := cfg.Store.Normalized()
	var store port.Store
	switch driver {
	case configs.StorePostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		store = postgres.NewStore(pool, custodian, cfg.Psql.RetryTries)
	default:
		store = memory.NewStore(custodian)
	}
	logger.Info("store ready", slog.String("driver", driver))

	if cfg.Seed.Demo {
		if err = db.Seed(ctx, store, logger, cfg.Seed.Accounts, cfg.Seed.Amount); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	svc := usecase.NewSettlementUseCase(store, custodian, guard, clock.SystemClock{}, logger)

	auth := httpadapter.NewAuthenticator(cfg.Auth.Audience, cfg.Auth.Leeway, nil)
	handler := httpadapter.NewHandler(svc, auth, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	if cfg.Sweeper.Enabled() {
		g.Go(func() error {
			logger.Info("settlement sweeper started", slog.Duration("interval", cfg.Sweeper.Interval))
			worker.NewSweeper(svc, cfg.Sweeper, logger).Run(gctx)
			return nil
		})
	}
	return g.Wait()
}
