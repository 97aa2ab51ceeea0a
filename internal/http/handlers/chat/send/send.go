// Package send реализует HTTP-обработчик отправки сообщения в чат.
//
// Чат должен существовать: создание чата по требованию выполняется
// обработчиком создания чата, а не отправкой сообщения.
package send

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/coach-connect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/lib/sl"
	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// Handler управляет HTTP-запросами на отправку сообщений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики отправки сообщения.
type Service interface {
	Send(chatID, senderID, text string) (models.Message, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Отправить сообщение
// @Description Добавляет текстовое сообщение в чат и обновляет кеш последнего сообщения.
// @Tags Chats
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор чата"
// @Param request body models.DummyMessage true "Текст сообщения"
// @Success 200 {object} response.Response "Созданное сообщение"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Чат не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /chats/{id}/messages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.send"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	senderID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || senderID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	chatID := chi.URLParam(r, "id")
	if chatID == "" {
		log.Error("chat id is empty")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("chat id is required"))
		return
	}

	var req models.DummyMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	msg, err := h.service.Send(chatID, senderID, req.Text)
	if err != nil {
		if errors.Is(err, store.ErrChatNotFound) {
			log.Error("chat not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("chat not found"))
			return
		}
		log.Error("failed to send message", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not send message"))
		return
	}

	log.Info("message sent", slog.String("chat_id", chatID))
	render.JSON(w, r, response.OKWithData(msg))
}
