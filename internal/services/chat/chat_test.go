package chat

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

type StoreMock struct{ mock.Mock }

func (m *StoreMock) ListChats(clientID, filter, search string) []models.Chat {
	args := m.Called(clientID, filter, search)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Chat)
}

func (m *StoreMock) FindChat(id string) (models.Chat, error) {
	args := m.Called(id)
	return args.Get(0).(models.Chat), args.Error(1)
}

func (m *StoreMock) FindChatByPair(clientID, providerID string) (models.Chat, error) {
	args := m.Called(clientID, providerID)
	return args.Get(0).(models.Chat), args.Error(1)
}

func (m *StoreMock) AddChat(clientID, providerID string) (models.Chat, error) {
	args := m.Called(clientID, providerID)
	return args.Get(0).(models.Chat), args.Error(1)
}

func (m *StoreMock) AddMessage(chatID, senderID, text string) (models.Message, error) {
	args := m.Called(chatID, senderID, text)
	return args.Get(0).(models.Message), args.Error(1)
}

func (m *StoreMock) AddAttachmentMessage(chatID, senderID, kind string, att models.Attachment) (models.Message, error) {
	args := m.Called(chatID, senderID, kind, att)
	return args.Get(0).(models.Message), args.Error(1)
}

func (m *StoreMock) ListMessages(chatID string) []models.Message {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Message)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestServiceSend(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("AddMessage", "chat1", "c1", "hello").
		Return(models.Message{ID: "m1", ChatID: "chat1", Text: "hello"}, nil).Once()
	service := New(storeMock, newNoopLogger())

	msg, err := service.Send("chat1", "c1", "hello")

	require.NoError(t, err)
	assert.Equal(t, "chat1", msg.ChatID)
	storeMock.AssertExpectations(t)
}

func TestServiceSendDanglingChat(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("AddMessage", "ghost", "c1", "hello").
		Return(models.Message{}, store.ErrChatNotFound).Once()
	service := New(storeMock, newNoopLogger())

	_, err := service.Send("ghost", "c1", "hello")

	assert.ErrorIs(t, err, store.ErrChatNotFound)
	storeMock.AssertExpectations(t)
}

func TestServiceSendToProvider(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(m *StoreMock)
		wantErr    bool
	}{
		{
			name: "чат уже существует",
			setupMocks: func(m *StoreMock) {
				m.On("FindChatByPair", "c1", "p1").
					Return(models.Chat{ID: "chat1", ClientID: "c1", ProviderID: "p1"}, nil).Once()
				m.On("AddMessage", "chat1", "c1", "hello").
					Return(models.Message{ID: "m1", ChatID: "chat1"}, nil).Once()
			},
		},
		{
			name: "чат создаётся при первом обращении",
			setupMocks: func(m *StoreMock) {
				m.On("FindChatByPair", "c1", "p1").
					Return(models.Chat{}, store.ErrChatNotFound).Once()
				m.On("AddChat", "c1", "p1").
					Return(models.Chat{ID: "chat9", ClientID: "c1", ProviderID: "p1"}, nil).Once()
				m.On("AddMessage", "chat9", "c1", "hello").
					Return(models.Message{ID: "m1", ChatID: "chat9"}, nil).Once()
			},
		},
		{
			name: "поставщик не найден",
			setupMocks: func(m *StoreMock) {
				m.On("FindChatByPair", "c1", "p1").
					Return(models.Chat{}, store.ErrChatNotFound).Once()
				m.On("AddChat", "c1", "p1").
					Return(models.Chat{}, store.ErrProviderNotFound).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeMock := new(StoreMock)
			tt.setupMocks(storeMock)
			service := New(storeMock, newNoopLogger())

			_, err := service.SendToProvider("c1", "p1", "hello")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			storeMock.AssertExpectations(t)
		})
	}
}

func TestServiceSendAttachment(t *testing.T) {
	att := models.Attachment{Name: "meals.jpg", URI: "file:///tmp/meals.jpg", Size: 512, MIME: "image/jpeg"}

	storeMock := new(StoreMock)
	storeMock.On("AddAttachmentMessage", "chat1", "c1", models.MessageKindImage, att).
		Return(models.Message{ID: "m1", Kind: models.MessageKindImage, Attachment: att}, nil).Once()
	service := New(storeMock, newNoopLogger())

	msg, err := service.SendAttachment("chat1", "c1", models.MessageKindImage, att)
	require.NoError(t, err)
	assert.Equal(t, att, msg.Attachment)

	// текстовый вид сюда не относится
	_, err = service.SendAttachment("chat1", "c1", models.MessageKindText, att)
	assert.Error(t, err)
	storeMock.AssertExpectations(t)
}

func TestServiceHistory(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("FindChat", "chat1").Return(models.Chat{ID: "chat1"}, nil).Once()
	storeMock.On("ListMessages", "chat1").
		Return([]models.Message{{ID: "m1"}, {ID: "m2"}}).Once()
	service := New(storeMock, newNoopLogger())

	messages, err := service.History("chat1")

	require.NoError(t, err)
	assert.Len(t, messages, 2)
	storeMock.AssertExpectations(t)
}

func TestServiceHistoryDanglingChat(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("FindChat", "ghost").Return(models.Chat{}, store.ErrChatNotFound).Once()
	service := New(storeMock, newNoopLogger())

	_, err := service.History("ghost")

	assert.ErrorIs(t, err, store.ErrChatNotFound)
	storeMock.AssertExpectations(t)
}

func TestServiceListDefaultsFilter(t *testing.T) {
	storeMock := new(StoreMock)
	storeMock.On("ListChats", "c1", models.ChatFilterAll, "").
		Return([]models.Chat{{ID: "chat1"}}).Once()
	service := New(storeMock, newNoopLogger())

	chats := service.List("c1", "", "")

	assert.Len(t, chats, 1)
	storeMock.AssertExpectations(t)
}
