// Package complete реализует HTTP-обработчик отметки задачи выполненной.
package complete

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/lib/sl"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// Handler управляет HTTP-запросами на завершение задач.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики завершения задачи.
type Service interface {
	Complete(id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отметить задачу выполненной
// @Description Переводит задачу из pending в completed.
// @Tags Tasks
// @Produce  json
// @Param id path string true "Идентификатор задачи"
// @Success 200 {object} response.Response "Задача выполнена"
// @Failure 404 {object} response.ErrorResponse "Задача не найдена"
// @Failure 409 {object} response.ErrorResponse "Задача уже выполнена"
// @Router /tasks/{id}/complete [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.complete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("task id is empty")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("task id is required"))
		return
	}

	if err := h.service.Complete(id); err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			log.Error("task not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("task not found"))
		case errors.Is(err, store.ErrInvalidTransition):
			log.Error("task is not pending", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("task is not pending"))
		default:
			log.Error("failed to complete task", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not complete task"))
		}
		return
	}

	log.Info("task completed", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
