package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rookgm/storedesk/config"
	"github.com/rookgm/storedesk/internal/alert"
	"github.com/rookgm/storedesk/internal/auth"
	"github.com/rookgm/storedesk/internal/backend"
	"github.com/rookgm/storedesk/internal/cache"
	handler "github.com/rookgm/storedesk/internal/handler/http"
	"github.com/rookgm/storedesk/internal/logger"
	"github.com/rookgm/storedesk/internal/models"
	"github.com/rookgm/storedesk/internal/queue"
	"github.com/rookgm/storedesk/internal/repository"
	"github.com/rookgm/storedesk/internal/repository/postgres"
	"github.com/rookgm/storedesk/internal/service"
	"github.com/rookgm/storedesk/internal/settlement"
	"github.com/rookgm/storedesk/internal/worker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// backend token carries user and, for some accounts, store id
	token := inspectToken(cfg.BackendToken)
	if cfg.StoreID == "" && token != nil {
		cfg.StoreID = token.StoreID
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Invalid config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, closeEvents := newEventRepository(ctx, cfg.DatabaseDSN)
	defer closeEvents()

	// dependency injection
	client := backend.NewClient(cfg.BackendURL, cfg.BackendToken, cfg.BackendTimeout)
	store := models.Store{ID: cfg.StoreID, Category: cfg.StoreCategory}
	orders := cache.NewOrderCache()

	alertLoop := alert.NewLoop(alert.NewTerminalAlerter(os.Stdout, logger.Log), cfg.ChimeInterval)
	defer alertLoop.Close()

	display := queue.NewDisplay(client, cfg.StoreID)

	// order
	orderService := service.NewOrderService(client, orders, events, store)
	orderHandler := handler.NewOrderHandler(orderService)

	// settlement
	settlementService := service.NewSettlementService(orders, settlement.NewSettler(client), events)
	settlementHandler := handler.NewSettlementHandler(settlementService)

	// booking
	bookingService := service.NewBookingService(client, cfg.StoreID, token)
	bookingHandler := handler.NewBookingHandler(bookingService)

	router := handler.NewRouter(logger.Log, cfg.ConsolePasswordHash, handler.Handlers{
		Orders:     orderHandler,
		Settlement: settlementHandler,
		Queue:      handler.NewQueueHandler(display),
		Alert:      handler.NewAlertHandler(alertLoop),
		Booking:    bookingHandler,
	})

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	orderPoller := worker.NewOrderPoller(client, orders, alertLoop, cfg.StoreID, cfg.OrderPollInterval)
	queuePoller := worker.NewQueuePoller(display, cfg.QueuePollInterval)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orderPoller.Run(gctx)
		return nil
	})
	g.Go(func() error {
		queuePoller.Run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Log.Info("Running server",
			zap.String("addr", cfg.ServerAddr),
			zap.String("store", cfg.StoreID),
			zap.String("category", cfg.StoreCategory))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped", zap.Error(err))
		return
	}
	logger.Log.Info("Server stopped")
}

// inspectToken reads backend token payload, nil if token is unusable
func inspectToken(token string) *models.TokenPayload {
	if token == "" {
		logger.Log.Warn("Backend token is not set, requests will be anonymous")
		return nil
	}

	payload, err := auth.Inspect(token)
	if err != nil {
		logger.Log.Warn("Error reading backend token", zap.Error(err))
		return nil
	}
	if payload.Expired(time.Now()) {
		logger.Log.Warn("Backend token is expired", zap.Time("expires_at", payload.ExpiresAt))
	}
	return payload
}

// newEventRepository returns postgres journal if dsn is set, in-memory otherwise
func newEventRepository(ctx context.Context, dsn string) (service.EventRepository, func()) {
	if dsn == "" {
		logger.Log.Info("Database is not configured, journaling in memory")
		return repository.NewMemoryEventRepository(), func() {}
	}

	// initialize database
	db, err := postgres.New(ctx, dsn)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}

	// migrate database
	if err := db.Migrate(); err != nil {
		db.Close()
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	return repository.NewEventRepository(db), db.Close
}
