package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/jackscave/service-desk/internal/api/http"
	"github.com/jackscave/service-desk/internal/api/http/handlers"
	"github.com/jackscave/service-desk/internal/catalog"
	"github.com/jackscave/service-desk/internal/config"
	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/events"
	"github.com/jackscave/service-desk/internal/observability"
	"github.com/jackscave/service-desk/internal/repository"
	"github.com/jackscave/service-desk/internal/seed"
	"github.com/jackscave/service-desk/internal/service"
	"github.com/jackscave/service-desk/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API consumed by the single-page board.

Examples:
  # Serve on the default port
  servicedesk serve

  # Start with an empty board
  SEED_ENABLED=false servicedesk serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	registry := catalog.NewRegistry()
	store, err := newStore(cfg.Seed, registry, logger)
	if err != nil {
		return err
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics("servicedesk")
	}

	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, logger, metrics).RegisterHandlers()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   store,
		Registry:     registry,
		Dispatcher:   dispatcher,
		Logger:       logger,
		TopTagsLimit: cfg.Stats.TopTagsLimit,
	})
	tokens := session.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL())

	app := httptransport.NewApp(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		RequestTimeout: cfg.App.RequestTimeout(),
		Logger:         logger,
		Metrics:        metrics,
	}, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Tickets:     handlers.NewTicketsHandler(ticketService, nil),
		Catalog:     handlers.NewCatalogHandler(registry),
		Session:     handlers.NewSessionHandler(tokens),
		SessionMW:   session.NewMiddleware(tokens, logger),
		Metrics:     metrics,
		MetricsPath: cfg.Metrics.Path,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.Int("tickets", store.Len()))
		errCh <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("fiber listen: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}
	return app.Shutdown()
}

func newStore(cfg config.SeedConfig, registry *catalog.Registry, logger *zap.Logger) (repository.TicketRepository, error) {
	store := repository.NewTicketRepository(registry)
	if !cfg.Enabled {
		logger.Info("seed disabled; starting with an empty board")
		return store, nil
	}
	tickets, err := loadSeed(cfg, registry)
	if err != nil {
		return nil, err
	}
	if err := store.Load(tickets); err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	logger.Info("seed loaded", zap.Int("tickets", len(tickets)), zap.String("fixture", fixtureName(cfg)))
	return store, nil
}

func loadSeed(cfg config.SeedConfig, registry *catalog.Registry) ([]domain.Ticket, error) {
	if cfg.FixturePath == "" {
		return seed.Default(registry)
	}
	return seed.LoadFile(cfg.FixturePath, registry)
}

func fixtureName(cfg config.SeedConfig) string {
	if cfg.FixturePath == "" {
		return "embedded"
	}
	return cfg.FixturePath
}
