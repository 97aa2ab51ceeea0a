// Package chat содержит бизнес-логику диалогов между клиентами и поставщиками.
//
// Сервис выступает тем самым внешним коллаборатором, который обязан
// разрешить или создать чат прежде, чем писать в него сообщения:
// хранилище чаты по требованию не создаёт.
package chat

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/coach-connect/internal/models"
	"github.com/magabrotheeeer/coach-connect/internal/store"
)

// Store описывает используемые сервисом операции хранилища.
type Store interface {
	// ListChats возвращает чаты клиента по фильтру подписки и поиску.
	ListChats(clientID, filter, search string) []models.Chat
	// FindChat возвращает чат по идентификатору.
	FindChat(id string) (models.Chat, error)
	// FindChatByPair возвращает чат по паре клиент-поставщик.
	FindChatByPair(clientID, providerID string) (models.Chat, error)
	// AddChat создаёт чат между клиентом и поставщиком.
	AddChat(clientID, providerID string) (models.Chat, error)
	// AddMessage добавляет текстовое сообщение в существующий чат.
	AddMessage(chatID, senderID, text string) (models.Message, error)
	// AddAttachmentMessage добавляет сообщение-вложение в существующий чат.
	AddAttachmentMessage(chatID, senderID, kind string, att models.Attachment) (models.Message, error)
	// ListMessages возвращает сообщения чата в хронологическом порядке.
	ListMessages(chatID string) []models.Message
}

// Service реализует операции над чатами и сообщениями.
type Service struct {
	store Store
	log   *slog.Logger
}

// New создает новый Service.
func New(st Store, log *slog.Logger) *Service {
	return &Service{store: st, log: log}
}

// List возвращает чаты клиента. Пустой фильтр эквивалентен all.
func (s *Service) List(clientID, filter, search string) []models.Chat {
	if filter == "" {
		filter = models.ChatFilterAll
	}
	return s.store.ListChats(clientID, filter, search)
}

// Create создает чат клиента с поставщиком.
func (s *Service) Create(clientID, providerID string) (models.Chat, error) {
	const op = "services.chat.Create"

	chat, err := s.store.AddChat(clientID, providerID)
	if err != nil {
		return models.Chat{}, fmt.Errorf("%s: %w", op, err)
	}
	return chat, nil
}

// History возвращает сообщения существующего чата в хронологическом порядке.
func (s *Service) History(chatID string) ([]models.Message, error) {
	const op = "services.chat.History"

	if _, err := s.store.FindChat(chatID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.store.ListMessages(chatID), nil
}

// Send отправляет текстовое сообщение в существующий чат.
func (s *Service) Send(chatID, senderID, text string) (models.Message, error) {
	const op = "services.chat.Send"

	msg, err := s.store.AddMessage(chatID, senderID, text)
	if err != nil {
		return models.Message{}, fmt.Errorf("%s: %w", op, err)
	}
	return msg, nil
}

// SendToProvider отправляет сообщение поставщику, создавая чат при
// первом обращении.
func (s *Service) SendToProvider(clientID, providerID, text string) (models.Message, error) {
	const op = "services.chat.SendToProvider"

	chat, err := s.store.FindChatByPair(clientID, providerID)
	if errors.Is(err, store.ErrChatNotFound) {
		chat, err = s.store.AddChat(clientID, providerID)
	}
	if err != nil {
		return models.Message{}, fmt.Errorf("%s: %w", op, err)
	}

	msg, err := s.store.AddMessage(chat.ID, clientID, text)
	if err != nil {
		return models.Message{}, fmt.Errorf("%s: %w", op, err)
	}
	return msg, nil
}

// SendAttachment отправляет сообщение-вложение в существующий чат.
// Разрешены только виды image и file.
func (s *Service) SendAttachment(chatID, senderID, kind string, att models.Attachment) (models.Message, error) {
	const op = "services.chat.SendAttachment"

	if kind != models.MessageKindImage && kind != models.MessageKindFile {
		return models.Message{}, fmt.Errorf("%s: unsupported attachment kind %q", op, kind)
	}
	msg, err := s.store.AddAttachmentMessage(chatID, senderID, kind, att)
	if err != nil {
		return models.Message{}, fmt.Errorf("%s: %w", op, err)
	}
	return msg, nil
}
