// Package expiry реализует планировщик истечения подписок.
//
// Подписка истекает, когда с момента оформления проходит длительность
// купленного пакета. Планировщик периодически обходит активные подписки
// и переводит просроченные в статус expired.
package expiry

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/coach-connect/internal/lib/sl"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Store описывает используемые планировщиком операции хранилища.
type Store interface {
	// ActiveSubscriptions возвращает все активные подписки.
	ActiveSubscriptions() []models.Subscription
	// FindPackage возвращает пакет по идентификатору.
	FindPackage(id string) (models.Package, error)
	// ExpireSubscription переводит подписку в expired.
	ExpireSubscription(id string) error
}

// Service периодически помечает просроченные подписки.
type Service struct {
	store    Store
	log      *slog.Logger
	interval time.Duration
	now      func() time.Time
}

// New создает новый Service с интервалом проверки.
func New(st Store, log *slog.Logger, interval time.Duration) *Service {
	return &Service{store: st, log: log, interval: interval, now: time.Now}
}

// Run запускает цикл проверки до отмены контекста. Первая проверка
// выполняется сразу.
func (s *Service) Run(ctx context.Context) {
	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *Service) runOnce() {
	s.log.Info("starting expiry check")
	subs := s.store.ActiveSubscriptions()
	if len(subs) == 0 {
		s.log.Info("no active subscriptions")
		return
	}

	expired := 0
	for _, sub := range subs {
		createdAt, err := time.Parse(time.RFC3339, sub.CreatedAt)
		if err != nil {
			s.log.Error("failed to parse subscription created_at",
				slog.String("id", sub.ID), sl.Err(err))
			continue
		}
		pack, err := s.store.FindPackage(sub.PackageID)
		if err != nil {
			s.log.Error("failed to find package for subscription",
				slog.String("id", sub.ID), sl.Err(err))
			continue
		}
		if s.now().Before(createdAt.AddDate(0, 0, pack.DurationInDays)) {
			continue
		}
		if err := s.store.ExpireSubscription(sub.ID); err != nil {
			s.log.Error("failed to expire subscription",
				slog.String("id", sub.ID), sl.Err(err))
			continue
		}
		expired++
	}
	s.log.Info("expiry check finished", slog.Int("expired", expired))
}
