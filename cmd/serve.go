package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"registrar/internal/api"
	"registrar/internal/api/handler/v1handler"
	"registrar/internal/attachment"
	"registrar/internal/config"
	"registrar/internal/pricing"
	"registrar/internal/registration"
	"registrar/internal/session"
	"registrar/internal/worker"
	"registrar/pkg/logger"
	"registrar/pkg/metrics"
	"registrar/pkg/storage"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getSessions returns the Redis session store when Redis is configured and
// an in-process store otherwise.
func getSessions(ctx context.Context, cfg *config.Config) (session.Store, func()) {
	client, err := session.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}
	if client == nil {
		logger.Warn(ctx, "redis is not configured, sessions are kept in memory")

		return session.NewMemoryStore(), func() {}
	}

	return session.NewRedisStore(client, cfg.Session.KeyPrefix), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

type services struct {
	pricing       pricing.Service
	registrations registration.Service
	attachments   attachment.Service
}

func getServices(ctx context.Context,
	cfg *config.Config,
	strg storage.Storage,
	sessions session.Store,
	registrarMetrics *metrics.Registrar,
) services {
	pricingOptions, err := pricing.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not configure pricing", zap.Error(err))
	}
	pricingSvc := pricing.New(strg, pricingOptions)

	return services{
		pricing: pricingSvc,
		registrations: registration.New(registration.Deps{
			Storage:  strg,
			Pricing:  pricingSvc,
			Sessions: sessions,
			Metrics:  registrarMetrics,
		}, registration.NewOptions(cfg)),
		attachments: attachment.New(strg, registrarMetrics, attachment.NewOptions(cfg)),
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			sessions, closeSessions := getSessions(ctx, cfg)
			defer closeSessions()

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			registrarMetrics, err := metrics.NewRegistrar(meterProvider)
			if err != nil {
				logger.Fatal(ctx, "could not create registrar metrics", zap.Error(err))
			}
			httpMetrics, err := metrics.NewHTTP(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create http metrics", zap.Error(err))
			}

			svc := getServices(ctx, cfg, strg, sessions, registrarMetrics)

			riverClient, err := worker.Start(ctx, strg.Pool, svc.attachments, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Registrations: svc.registrations,
					Attachments:   svc.attachments,
					Pricing:       svc.pricing,
					Health:        strg,
				},
				HTTPMetrics: httpMetrics,
				Gatherer:    prometheus.DefaultGatherer,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
