// Package coachconnect предоставляет маршруты для основного приложения.
package coachconnect

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/coach-connect/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/coach-connect/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/coach-connect/internal/http/handlers/auth/register"
	chatcreate "github.com/magabrotheeeer/coach-connect/internal/http/handlers/chat/create"
	chathistory "github.com/magabrotheeeer/coach-connect/internal/http/handlers/chat/history"
	chatlist "github.com/magabrotheeeer/coach-connect/internal/http/handlers/chat/list"
	chatsend "github.com/magabrotheeeer/coach-connect/internal/http/handlers/chat/send"
	providerlist "github.com/magabrotheeeer/coach-connect/internal/http/handlers/provider/list"
	providerpackages "github.com/magabrotheeeer/coach-connect/internal/http/handlers/provider/packages"
	subcancel "github.com/magabrotheeeer/coach-connect/internal/http/handlers/subscription/cancel"
	subcreate "github.com/magabrotheeeer/coach-connect/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/coach-connect/internal/http/handlers/subscription/list"
	taskcomplete "github.com/magabrotheeeer/coach-connect/internal/http/handlers/task/complete"
	taskcreate "github.com/magabrotheeeer/coach-connect/internal/http/handlers/task/create"
	tasklist "github.com/magabrotheeeer/coach-connect/internal/http/handlers/task/list"
	"github.com/magabrotheeeer/coach-connect/internal/http/middlewarectx"
	jwtlib "github.com/magabrotheeeer/coach-connect/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/coach-connect/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/coach-connect/internal/services/catalog"
	chatservice "github.com/magabrotheeeer/coach-connect/internal/services/chat"
	subservice "github.com/magabrotheeeer/coach-connect/internal/services/subscription"
	taskservice "github.com/magabrotheeeer/coach-connect/internal/services/task"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, maker jwtlib.Maker,
	authService *authservice.Service, catalogService *catalogservice.Service,
	subscriptionService *subservice.Service, chatService *chatservice.Service,
	taskService *taskservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/providers", providerlist.New(logger, catalogService).ServeHTTP)
		r.Get("/providers/{id}/packages", providerpackages.New(logger, catalogService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(maker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, authService).ServeHTTP)
			r.Post("/subscriptions", subcreate.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/list", sublist.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/subscriptions/{id}", subcancel.New(logger, subscriptionService).ServeHTTP)
			r.Get("/chats", chatlist.New(logger, chatService).ServeHTTP)
			r.Post("/chats", chatcreate.New(logger, chatService).ServeHTTP)
			r.Get("/chats/{id}/messages", chathistory.New(logger, chatService).ServeHTTP)
			r.Post("/chats/{id}/messages", chatsend.New(logger, chatService).ServeHTTP)
			r.Get("/tasks", tasklist.New(logger, taskService).ServeHTTP)
			r.Post("/tasks", taskcreate.New(logger, taskService).ServeHTTP)
			r.Post("/tasks/{id}/complete", taskcomplete.New(logger, taskService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
