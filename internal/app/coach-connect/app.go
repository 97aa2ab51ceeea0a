// Package coachconnect собирает приложение: хранилище, сервисы, маршруты
// и HTTP-сервер с мягким завершением.
package coachconnect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/coach-connect/internal/config"
	jwtlib "github.com/magabrotheeeer/coach-connect/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/coach-connect/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/coach-connect/internal/services/catalog"
	chatservice "github.com/magabrotheeeer/coach-connect/internal/services/chat"
	expiryservice "github.com/magabrotheeeer/coach-connect/internal/services/expiry"
	subservice "github.com/magabrotheeeer/coach-connect/internal/services/subscription"
	taskservice "github.com/magabrotheeeer/coach-connect/internal/services/task"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// App держит HTTP-сервер, хранилище и планировщик истечения подписок.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  *store.Store
	expiry *expiryservice.Service
}

// New создает приложение: хранилище с начальными данными, сервисы и маршруты.
func New(cfg *config.Config, logger *slog.Logger) *App {
	st := store.New(logger)

	maker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(st, maker, logger)
	catalogService := catalogservice.New(st, logger)
	subscriptionService := subservice.New(st, logger)
	chatService := chatservice.New(st, logger)
	taskService := taskservice.New(st, logger)

	interval := cfg.CheckInterval
	if interval <= 0 {
		interval = time.Hour
	}
	expiryService := expiryservice.New(st, logger, interval)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, maker, authService, catalogService,
		subscriptionService, chatService, taskService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  st,
		expiry: expiryService,
	}
}

// Store возвращает хранилище приложения.
func (a *App) Store() *store.Store {
	return a.store
}

// Run запускает планировщик истечения и HTTP-сервер, завершая их
// по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	go a.expiry.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
