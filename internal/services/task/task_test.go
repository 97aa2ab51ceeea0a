package task

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/coach-connect/internal/lib/datekey"
	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

type StoreMock struct{ mock.Mock }

func (m *StoreMock) TodayTasks() []models.Task {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Task)
}

func (m *StoreMock) TasksForDate(date string) []models.Task {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Task)
}

func (m *StoreMock) ProviderTasks(providerID string) []models.Task {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Task)
}

func (m *StoreMock) AddTask(providerID, title, description, date string) (models.Task, error) {
	args := m.Called(providerID, title, description, date)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *StoreMock) CompleteTask(id string) error {
	return m.Called(id).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestServiceForDate(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("TasksForDate", "2026-09-02").
		Return([]models.Task{{ID: "t1", Date: "2026-09-02"}}).Once()
	service := New(storeMock, newNoopLogger())

	tasks, err := service.ForDate("2026-09-02")

	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	storeMock.AssertExpectations(t)
}

func TestServiceForDateDefaultsToday(t *testing.T) {
	today := datekey.Today()

	storeMock := new(StoreMock)
	storeMock.On("TasksForDate", today).Return([]models.Task{}).Once()
	service := New(storeMock, newNoopLogger())

	_, err := service.ForDate("")

	require.NoError(t, err)
	storeMock.AssertExpectations(t)
}

func TestServiceForDateInvalid(t *testing.T) {
	storeMock := new(StoreMock)
	service := New(storeMock, newNoopLogger())

	_, err := service.ForDate("02.09.2026")

	assert.Error(t, err)
	storeMock.AssertNotCalled(t, "TasksForDate", mock.Anything)
}

func TestServiceCreate(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyTask
		setupMocks func(m *StoreMock)
		wantErr    bool
	}{
		{
			name: "успешное создание",
			req:  models.DummyTask{Title: "Stretching", Date: "2026-09-02"},
			setupMocks: func(m *StoreMock) {
				m.On("AddTask", "p1", "Stretching", "", "2026-09-02").
					Return(models.Task{ID: "t9", Status: models.TaskStatusPending}, nil).Once()
			},
		},
		{
			name:       "некорректная дата",
			req:        models.DummyTask{Title: "Stretching", Date: "вчера"},
			setupMocks: func(*StoreMock) {},
			wantErr:    true,
		},
		{
			name: "несуществующий поставщик",
			req:  models.DummyTask{Title: "Stretching", Date: "2026-09-02"},
			setupMocks: func(m *StoreMock) {
				m.On("AddTask", "p1", "Stretching", "", "2026-09-02").
					Return(models.Task{}, store.ErrProviderNotFound).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeMock := new(StoreMock)
			tt.setupMocks(storeMock)
			service := New(storeMock, newNoopLogger())

			task, err := service.Create("p1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.TaskStatusPending, task.Status)
			}
			storeMock.AssertExpectations(t)
		})
	}
}

func TestServiceComplete(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("CompleteTask", "t1").Return(nil).Once()
	storeMock.On("CompleteTask", "t1").Return(store.ErrInvalidTransition).Once()
	service := New(storeMock, newNoopLogger())

	require.NoError(t, service.Complete("t1"))
	assert.ErrorIs(t, service.Complete("t1"), store.ErrInvalidTransition)
	storeMock.AssertExpectations(t)
}
