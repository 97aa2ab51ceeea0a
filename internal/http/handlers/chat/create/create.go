// Package create реализует HTTP-обработчик создания чата с поставщиком.
package create

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/coach-connect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/lib/sl"
	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// Handler управляет HTTP-запросами на создание чата.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания чата.
type Service interface {
	Create(clientID, providerID string) (models.Chat, error)
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
// @Summary Создать чат
// @Description Создает чат клиента с поставщиком. Пара клиент-поставщик уникальна.
// @Tags Chats
// @Accept  json
// @Produce  json
// @Param request body models.DummyChat true "Идентификатор поставщика"
// @Success 200 {object} response.Response "Созданный чат"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Поставщик не найден"
// @Failure 409 {object} response.ErrorResponse "Чат уже существует"
// @Router /chats [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.create"
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

	var req models.DummyChat
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

	chat, err := h.service.Create(clientID, req.ProviderID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProviderNotFound):
			log.Error("provider not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("provider not found"))
		case errors.Is(err, store.ErrChatExists):
			log.Error("chat already exists", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("chat already exists"))
		default:
			log.Error("failed to create chat", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create chat"))
		}
		return
	}

	log.Info("chat created", slog.String("id", chat.ID))
	render.JSON(w, r, response.OKWithData(chat))
}
