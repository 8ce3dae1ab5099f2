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

	"adyen-notification-reconciler/config"
	httpHandler "adyen-notification-reconciler/internal/adapter/http/handler"
	"adyen-notification-reconciler/internal/adapter/http/middleware"
	memStorage "adyen-notification-reconciler/internal/adapter/storage/memory"
	pgStorage "adyen-notification-reconciler/internal/adapter/storage/postgres"
	redisStorage "adyen-notification-reconciler/internal/adapter/storage/redis"
	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
	"adyen-notification-reconciler/internal/service"
	"adyen-notification-reconciler/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// storage is the persistence side of the pipeline for one storage driver.
type storage struct {
	deps      service.PipelineDeps
	checkers  []ports.HealthChecker
	rateLimit middleware.RateLimitStore
	close     func()
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the notification webhook server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Int("merchants", len(cfg.Merchants)).
		Msg("Starting Adyen notification reconciler")

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.close()

	deps := store.deps
	deps.Gateway = cfg.Gateway.Name
	deps.Merchants = service.NewStaticMerchantConfigProvider(merchantAccounts(cfg.Merchants)...)
	deps.Logger = log

	pipeline := service.NewPipeline(deps)

	routerDeps := httpHandler.RouterDeps{
		NotificationSvc: pipeline.Processor,
		Authenticator:   pipeline.Authenticator,
		HealthCheckers:  store.checkers,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		Mode:            cfg.Server.Mode,
		Logger:          log,
	}
	if cfg.RateLimit.Enabled && store.rateLimit != nil {
		routerDeps.RateLimitStore = store.rateLimit
		routerDeps.RateLimit = middleware.RateLimitRule{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window}
	}
	router := httpHandler.SetupRouter(routerDeps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Flush pending notification log writes before the stores close.
	pipeline.Protocol.Wait()

	log.Info().Msg("Server exited")
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	if cfg.Storage.Driver == "memory" {
		mem := memStorage.NewStore()
		log.Warn().Msg("Using in-memory storage, state is lost on restart")
		return &storage{
			deps: service.PipelineDeps{
				References:       mem.References,
				Payments:         mem.Payments,
				Refunds:          mem.Refunds,
				Orders:           mem.Orders,
				PaymentLinks:     mem.PaymentLinks,
				NotificationLogs: mem.NotificationLogs,
				Queue:            memStorage.NewModificationQueue(),
				Transactor:       mem.Transactor,
			},
			checkers: []ports.HealthChecker{mem},
			close:    func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if cfg.Storage.Migrate {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &storage{
		deps: service.PipelineDeps{
			References:       pgStorage.NewReferenceRepo(pool),
			Payments:         pgStorage.NewPaymentRepo(pool),
			Refunds:          pgStorage.NewRefundPaymentRepo(pool),
			Orders:           pgStorage.NewOrderRepo(pool),
			PaymentLinks:     pgStorage.NewPaymentLinkRepo(pool),
			NotificationLogs: pgStorage.NewNotificationLogRepo(pool),
			Queue:            redisStorage.NewModificationQueue(rdb, cfg.Gateway.ModificationQueue),
			Transactor:       pgStorage.NewTransactor(pool),
		},
		checkers:  []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb, cfg.Gateway.ModificationQueue)},
		rateLimit: redisStorage.NewRateLimitStore(rdb),
		close: func() {
			_ = rdb.Close()
			pool.Close()
		},
	}, nil
}

func merchantAccounts(merchants map[string]config.MerchantConfig) []domain.MerchantAccount {
	out := make([]domain.MerchantAccount, 0, len(merchants))
	for code, m := range merchants {
		out = append(out, domain.MerchantAccount{
			Code:                  code,
			MerchantAccount:       m.MerchantAccount,
			HMACKey:               m.HMACKey,
			BasicAuthUsername:     m.Username,
			BasicAuthPasswordHash: m.PasswordHash,
			CaptureMode:           domain.CaptureMode(m.CaptureMode),
		})
	}
	return out
}
