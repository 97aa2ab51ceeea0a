// Package catalog содержит бизнес-логику каталога поставщиков услуг и их пакетов.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Store описывает используемые сервисом запросы хранилища.
type Store interface {
	// ListProviders возвращает поставщиков по фильтру роли и поиску по имени.
	ListProviders(roleFilter, search string) []models.Provider
	// FindProvider возвращает поставщика по идентификатору.
	FindProvider(id string) (models.Provider, error)
	// ListPackages возвращает пакеты поставщика.
	ListPackages(providerID string) []models.Package
}

// Service реализует операции каталога.
type Service struct {
	store Store
	log   *slog.Logger
}

// New создает новый Service.
func New(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// List возвращает поставщиков по фильтру роли и регистронезависимому
// поиску по имени. Пустой фильтр эквивалентен all.
func (s *Service) List(roleFilter, search string) []models.Provider {
	if roleFilter == "" {
		roleFilter = models.RoleFilterAll
	}
	return s.store.ListProviders(roleFilter, search)
}

// Packages возвращает пакеты существующего поставщика.
func (s *Service) Packages(providerID string) ([]models.Package, error) {
	const op = "services.catalog.Packages"

	if _, err := s.store.FindProvider(providerID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.store.ListPackages(providerID), nil
}
