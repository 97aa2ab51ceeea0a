// Package list реализует HTTP-обработчик списка задач на календарный день.
//
// Без параметра date возвращаются задачи открытого поставщика на сегодня;
// с параметром date — все задачи на указанный день.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/lib/sl"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Handler управляет HTTP-запросами на чтение задач.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка задач.
type Service interface {
	Today() []models.Task
	ForDate(date string) ([]models.Task, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список задач
// @Description Возвращает задачи открытого поставщика на сегодня или все задачи на указанный день.
// @Tags Tasks
// @Produce  json
// @Param date query string false "Календарный день YYYY-MM-DD"
// @Success 200 {object} response.Response "Список задач"
// @Failure 400 {object} response.ErrorResponse "Некорректная дата"
// @Router /tasks [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	date := r.URL.Query().Get("date")

	var tasks []models.Task
	if date == "" {
		tasks = h.service.Today()
	} else {
		var err error
		tasks, err = h.service.ForDate(date)
		if err != nil {
			log.Error("invalid date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date, expected YYYY-MM-DD"))
			return
		}
	}

	log.Info("tasks listed", slog.Int("count", len(tasks)))
	render.JSON(w, r, response.OKWithData(tasks))
}
