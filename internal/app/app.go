package app

import (
	"arcade_backend/internal/config"
	"arcade_backend/internal/logger"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает HTTP сервер и бота ленты. Возвращается после SIGINT/SIGTERM
func (s *App) Run() error {
	envErr := config.Load(".env")
	logger.Init()
	defer logger.Sync()
	if envErr != nil {
		logger.Warn("failed to load .env file", zap.Error(envErr))
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)
	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var wg sync.WaitGroup
	s.startHeartbeat(ctx, &wg)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-errCh:
		logger.Error("server failed", zap.Error(runErr))
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	wg.Wait()

	return runErr
}

func (s *App) startHeartbeat(ctx context.Context, wg *sync.WaitGroup) {
	hb := s.ServiceProvider.HeartbeatService(ctx)
	if hb == nil {
		logger.Info("heartbeat: disabled, LLM endpoint is not configured")
		return
	}
	session := s.ServiceProvider.BotSession(ctx)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hb.Run(ctx, session); err != nil {
			logger.Warn("heartbeat: not running", zap.Error(err))
		}
	}()
}
