package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"superapp/config"
	"superapp/pkg/api"
	"superapp/pkg/logger"
	"superapp/pkg/views"
	"superapp/service"
	"superapp/storage"
	"superapp/storage/memory"
)

func runServe(ctx context.Context, cfg config.Config) error {
	// 1. Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	// 2. Stores, one instance per process
	stg := memory.New(memory.Options{DefaultDeliveryAddress: cfg.DefaultDeliveryAddress}, log)
	watchStores(stg, log)

	// 3. Services
	svc := service.New(stg, log)
	svc.Conversation().InitializeApp()

	// 4. Navigation
	nav, err := views.NewTable(cfg.BasePath, log)
	if err != nil {
		log.Error("failed to build navigation table", logger.Error(err))
		return err
	}

	// 5. HTTP
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: api.NewRouter(svc, nav, log),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("🚀 server is starting", logger.Int("port", cfg.AppPort), logger.String("base_path", cfg.BasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", logger.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Error(err))
		return err
	}
	return nil
}

func watchStores(stg storage.IStorage, log logger.ILogger) {
	onEvent := func(ev storage.Event) {
		log.Debug("store changed",
			logger.String("store", string(ev.Store)),
			logger.String("kind", string(ev.Kind)),
			logger.String("id", ev.ID),
		)
	}
	stg.Conversation().Subscribe(onEvent)
	stg.Order().Subscribe(onEvent)
	stg.Trip().Subscribe(onEvent)
}
