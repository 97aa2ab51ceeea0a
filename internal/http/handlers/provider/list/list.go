// Package list реализует HTTP-обработчик списка поставщиков услуг
// с фильтром по роли и поиском по имени.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Handler управляет HTTP-запросами на чтение каталога поставщиков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога.
type Service interface {
	List(roleFilter, search string) []models.Provider
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список поставщиков услуг
// @Description Возвращает поставщиков по фильтру роли (all, coach, nutritionist) и поиску по имени.
// @Tags Providers
// @Produce  json
// @Param role query string false "Фильтр роли"
// @Param search query string false "Подстрока имени (без учёта регистра)"
// @Success 200 {object} response.Response "Список поставщиков"
// @Router /providers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.provider.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	role := r.URL.Query().Get("role")
	search := r.URL.Query().Get("search")

	providers := h.service.List(role, search)

	log.Info("providers listed", slog.Int("count", len(providers)))
	render.JSON(w, r, response.OKWithData(providers))
}
