package send

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/coach-connect/internal/http/middlewarectx"
	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// MockService реализует интерфейс send.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Send(chatID, senderID, text string) (models.Message, error) {
	args := m.Called(chatID, senderID, text)
	return args.Get(0).(models.Message), args.Error(1)
}

func TestSendHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		requestBody    interface{}
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная отправка сообщения",
			url:         "/chats/chat1/messages",
			requestBody: models.DummyMessage{Text: "hello"},
			userID:      "demo_client",
			setupMock: func(m *MockService) {
				m.On("Send", "chat1", "demo_client", "hello").
					Return(models.Message{
						ID:       "m9",
						ChatID:   "chat1",
						SenderID: "demo_client",
						Kind:     models.MessageKindText,
						Text:     "hello",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"Text":"hello"`,
		},
		{
			name:           "отсутствует авторизация",
			url:            "/chats/chat1/messages",
			requestBody:    models.DummyMessage{Text: "hello"},
			userID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "некорректный JSON",
			url:            "/chats/chat1/messages",
			requestBody:    "not a json",
			userID:         "demo_client",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "пустой текст",
			url:            "/chats/chat1/messages",
			requestBody:    models.DummyMessage{},
			userID:         "demo_client",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Text is a required field"}`,
		},
		{
			name:        "чат не найден",
			url:         "/chats/ghost/messages",
			requestBody: models.DummyMessage{Text: "hello"},
			userID:      "demo_client",
			setupMock: func(m *MockService) {
				m.On("Send", "ghost", "demo_client", "hello").
					Return(models.Message{}, store.ErrChatNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"chat not found"}`,
		},
		{
			name:        "ошибка сервиса",
			url:         "/chats/chat1/messages",
			requestBody: models.DummyMessage{Text: "hello"},
			userID:      "demo_client",
			setupMock: func(m *MockService) {
				m.On("Send", "chat1", "demo_client", "hello").
					Return(models.Message{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not send message"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, tt.url, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			if tt.userID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
			}
			req = req.WithContext(ctx)

			// Устанавливаем URL параметр id для chi
			chatID := strings.TrimSuffix(strings.TrimPrefix(tt.url, "/chats/"), "/messages")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", chatID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
