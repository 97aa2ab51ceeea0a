// Package history реализует HTTP-обработчик чтения сообщений чата
// в хронологическом порядке.
package history

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/lib/sl"
	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// Handler управляет HTTP-запросами на чтение истории чата.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики истории чата.
type Service interface {
	History(chatID string) ([]models.Message, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary История чата
// @Description Возвращает сообщения чата по возрастанию времени создания.
// @Tags Chats
// @Produce  json
// @Param id path string true "Идентификатор чата"
// @Success 200 {object} response.Response "Список сообщений"
// @Failure 404 {object} response.ErrorResponse "Чат не найден"
// @Router /chats/{id}/messages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.history"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	chatID := chi.URLParam(r, "id")
	if chatID == "" {
		log.Error("chat id is empty")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("chat id is required"))
		return
	}

	messages, err := h.service.History(chatID)
	if err != nil {
		if errors.Is(err, store.ErrChatNotFound) {
			log.Error("chat not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("chat not found"))
			return
		}
		log.Error("failed to read chat history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read chat history"))
		return
	}

	log.Info("chat history read",
		slog.String("chat_id", chatID), slog.Int("count", len(messages)))
	render.JSON(w, r, response.OKWithData(messages))
}
