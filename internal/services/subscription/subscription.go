// Package subscription содержит бизнес-логику управления подписками клиентов.
package subscription

import (
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// Store описывает используемые сервисом операции хранилища.
type Store interface {
	// Subscribe оформляет подписку пользователя текущей сессии.
	Subscribe(providerID, packageID string) (models.Subscription, error)
	// CancelSubscription переводит подписку в cancelled.
	CancelSubscription(id string) error
	// ListSubscriptions возвращает подписки, видимые пользователю.
	ListSubscriptions(userID, role string) []models.Subscription
}

// Service реализует операции над подписками.
type Service struct {
	store Store
	log   *slog.Logger
}

// New создает новый Service.
func New(st Store, log *slog.Logger) *Service {
	return &Service{store: st, log: log}
}

// Subscribe оформляет подписку на пакет поставщика. Вызывается платёжным
// коллаборатором после подтверждения оплаты: сам платёж здесь не выполняется.
func (s *Service) Subscribe(req models.DummySubscribe) (models.Subscription, error) {
	const op = "services.subscription.Subscribe"

	sub, err := s.store.Subscribe(req.ProviderID, req.PackageID)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscribed",
		slog.String("subscription_id", sub.ID),
		slog.String("provider_id", sub.ProviderID),
		slog.String("package_id", sub.PackageID))
	return sub, nil
}

// List возвращает подписки, видимые пользователю: поставщик видит подписки
// на себя, клиент — свои собственные.
func (s *Service) List(userID, role string) []models.Subscription {
	return s.store.ListSubscriptions(userID, role)
}

// Cancel отменяет подписку пользователя. Чужую подписку отменить нельзя.
func (s *Service) Cancel(id, userID, role string) error {
	const op = "services.subscription.Cancel"

	owned := false
	for _, sub := range s.store.ListSubscriptions(userID, role) {
		if sub.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		return fmt.Errorf("%s: %w", op, store.ErrSubscriptionNotFound)
	}
	if err := s.store.CancelSubscription(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscription cancelled", slog.String("id", id))
	return nil
}
