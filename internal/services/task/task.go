// Package task содержит бизнес-логику задач поставщиков услуг.
package task

import (
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/coach-connect/internal/lib/datekey"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Store описывает используемые сервисом операции хранилища.
type Store interface {
	// TodayTasks возвращает задачи открытого поставщика на сегодня.
	TodayTasks() []models.Task
	// TasksForDate возвращает все задачи на календарный день.
	TasksForDate(date string) []models.Task
	// ProviderTasks возвращает все задачи поставщика.
	ProviderTasks(providerID string) []models.Task
	// AddTask создаёт задачу поставщика.
	AddTask(providerID, title, description, date string) (models.Task, error)
	// CompleteTask переводит задачу в completed.
	CompleteTask(id string) error
}

// Service реализует операции над задачами.
type Service struct {
	store Store
	log   *slog.Logger
}

// New создает новый Service.
func New(st Store, log *slog.Logger) *Service {
	return &Service{store: st, log: log}
}

// Today возвращает задачи открытого поставщика на сегодняшний день.
func (s *Service) Today() []models.Task {
	return s.store.TodayTasks()
}

// ForDate возвращает задачи на календарный день. Пустая дата означает сегодня.
func (s *Service) ForDate(date string) ([]models.Task, error) {
	const op = "services.task.ForDate"

	if date == "" {
		date = datekey.Today()
	}
	if _, err := datekey.Parse(date); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.store.TasksForDate(date), nil
}

// Create создает задачу поставщика на календарный день.
func (s *Service) Create(providerID string, req models.DummyTask) (models.Task, error) {
	const op = "services.task.Create"

	if _, err := datekey.Parse(req.Date); err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	task, err := s.store.AddTask(providerID, req.Title, req.Description, req.Date)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("task created",
		slog.String("id", task.ID), slog.String("date", task.Date))
	return task, nil
}

// Complete отмечает задачу выполненной.
func (s *Service) Complete(id string) error {
	const op = "services.task.Complete"

	if err := s.store.CompleteTask(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
