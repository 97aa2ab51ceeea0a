// Package list реализует HTTP-обработчик списка чатов клиента
// с фильтром по статусу подписки и поиском по имени поставщика.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/coach-connect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Handler управляет HTTP-запросами на чтение списка чатов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка чатов.
type Service interface {
	List(clientID, filter, search string) []models.Chat
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список чатов
// @Description Возвращает чаты клиента, отфильтрованные по статусу подписки (all, subscribed, not_subscribed) и поиску по имени поставщика.
// @Tags Chats
// @Produce  json
// @Param filter query string false "Фильтр подписки"
// @Param search query string false "Подстрока имени поставщика"
// @Success 200 {object} response.Response "Список чатов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Router /chats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	clientID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || clientID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	filter := r.URL.Query().Get("filter")
	search := r.URL.Query().Get("search")

	chats := h.service.List(clientID, filter, search)

	log.Info("chats listed", slog.Int("count", len(chats)))
	render.JSON(w, r, response.OKWithData(chats))
}
