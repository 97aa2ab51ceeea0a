// Package packages реализует HTTP-обработчик списка пакетов поставщика услуг.
package packages

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/coach-connect/internal/http/response"
	"github.com/magabrotheeeer/coach-connect/internal/lib/sl"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Handler управляет HTTP-запросами на чтение пакетов поставщика.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога пакетов.
type Service interface {
	Packages(providerID string) ([]models.Package, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Пакеты поставщика услуг
// @Description Возвращает пакеты существующего поставщика.
// @Tags Providers
// @Produce  json
// @Param id path string true "Идентификатор поставщика"
// @Success 200 {object} response.Response "Список пакетов"
// @Failure 404 {object} response.ErrorResponse "Поставщик не найден"
// @Router /providers/{id}/packages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.provider.packages"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	providerID := chi.URLParam(r, "id")
	if providerID == "" {
		log.Error("provider id is empty")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("provider id is required"))
		return
	}

	packs, err := h.service.Packages(providerID)
	if err != nil {
		log.Error("failed to list packages", sl.Err(err))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("provider not found"))
		return
	}

	log.Info("packages listed",
		slog.String("provider_id", providerID), slog.Int("count", len(packs)))
	render.JSON(w, r, response.OKWithData(packs))
}
