// Package store реализует центральное хранилище доменного состояния приложения.
//
// Store единолично владеет всеми коллекциями сущностей и пользователем текущей
// сессии. Все мутации проходят через операции хранилища, чтение возвращает
// копии, а не ссылки на внутренние данные. Операции сериализуются одним
// мьютексом: пока операция не завершена, никакая другая запись или чтение
// не наблюдает промежуточного состояния.
//
// Состояние эфемерно: при каждом старте процесса коллекции заполняются
// начальными данными заново, записи никогда не удаляются — отмена и истечение
// подписок меняют только статус.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// timeLayout — формат временных меток сообщений. Фиксированная ширина
// наносекунд сохраняет лексикографический порядок сравнения строк.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store — хранилище доменного состояния.
type Store struct {
	mu  sync.Mutex
	log *slog.Logger

	currentUser       *models.CurrentUser
	currentProviderID string

	providers     []models.Provider
	packages      []models.Package
	tasks         []models.Task
	subscriptions []models.Subscription
	chats         []models.Chat
	messages      []models.Message

	watchers    map[int]func(Event)
	nextWatcher int

	now   func() time.Time
	newID func() string
}

// New создаёт хранилище, заполненное начальными данными.
func New(log *slog.Logger) *Store {
	s := &Store{
		log:      log,
		watchers: make(map[int]func(Event)),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	s.seed()
	return s
}

// Reset возвращает все коллекции и сессию к начальному состоянию.
func (s *Store) Reset() {
	s.mu.Lock()
	s.currentUser = nil
	s.currentProviderID = ""
	s.seed()
	s.mu.Unlock()
	s.notify(Event{Collection: CollectionSession})
}

// SetCurrentUser заменяет пользователя текущей сессии. Значение nil очищает
// сессию. Форма пользователя не проверяется: это граница доверия с внешним
// коллаборатором аутентификации.
func (s *Store) SetCurrentUser(user *models.CurrentUser) {
	s.mu.Lock()
	if user == nil {
		s.currentUser = nil
	} else {
		u := cloneUser(*user)
		s.currentUser = &u
	}
	s.mu.Unlock()
	s.notify(Event{Collection: CollectionSession})
}

// CurrentUser возвращает копию пользователя текущей сессии или nil.
func (s *Store) CurrentUser() *models.CurrentUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := cloneUser(*s.currentUser)
	return &u
}

// SetCurrentProviderID отмечает, задачи какого поставщика открыты для
// текущего клиента. Пустая строка снимает отметку. Другие коллекции
// не затрагиваются.
func (s *Store) SetCurrentProviderID(id string) {
	s.mu.Lock()
	s.currentProviderID = id
	s.mu.Unlock()
	s.notify(Event{Collection: CollectionSession})
}

// CurrentProviderID возвращает идентификатор открытого поставщика
// или пустую строку.
func (s *Store) CurrentProviderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentProviderID
}

// Subscribe оформляет подписку пользователя текущей сессии на пакет
// поставщика и открывает его задачи. Возвращает созданную подписку
// со статусом active. Все прежние подписки остаются нетронутыми:
// клиент может держать несколько одновременных подписок.
func (s *Store) Subscribe(providerID, packageID string) (models.Subscription, error) {
	const op = "store.Subscribe"

	s.mu.Lock()
	user := s.currentUser
	if user == nil {
		s.mu.Unlock()
		return models.Subscription{}, fmt.Errorf("%s: %w", op, ErrNoCurrentUser)
	}
	if _, ok := s.findProvider(providerID); !ok {
		s.mu.Unlock()
		return models.Subscription{}, fmt.Errorf("%s: %w", op, ErrProviderNotFound)
	}
	pack, ok := s.findPackage(packageID)
	if !ok {
		s.mu.Unlock()
		return models.Subscription{}, fmt.Errorf("%s: %w", op, ErrPackageNotFound)
	}
	if pack.ProviderID != providerID {
		s.mu.Unlock()
		return models.Subscription{}, fmt.Errorf("%s: %w", op, ErrPackageProviderMismatch)
	}

	sub := models.Subscription{
		ID:         s.newID(),
		ClientID:   user.ID,
		ProviderID: providerID,
		PackageID:  packageID,
		Status:     models.SubscriptionStatusActive,
		CreatedAt:  s.now().Format(time.RFC3339),
	}
	s.subscriptions = append(s.subscriptions, sub)
	s.currentProviderID = providerID
	s.mu.Unlock()

	s.log.Info("subscription created",
		slog.String("id", sub.ID),
		slog.String("client_id", sub.ClientID),
		slog.String("provider_id", providerID))
	s.notify(Event{Collection: CollectionSubscriptions})
	return sub, nil
}

// CancelSubscription переводит подписку из active в cancelled.
func (s *Store) CancelSubscription(id string) error {
	return s.transitionSubscription("store.CancelSubscription", id, models.SubscriptionStatusCancelled)
}

// ExpireSubscription переводит подписку из active в expired.
func (s *Store) ExpireSubscription(id string) error {
	return s.transitionSubscription("store.ExpireSubscription", id, models.SubscriptionStatusExpired)
}

func (s *Store) transitionSubscription(op, id, status string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.subscriptions {
		if s.subscriptions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
	}
	if s.subscriptions[idx].Status != models.SubscriptionStatusActive {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrInvalidTransition)
	}
	s.subscriptions[idx].Status = status
	s.mu.Unlock()

	s.log.Info("subscription status changed",
		slog.String("id", id), slog.String("status", status))
	s.notify(Event{Collection: CollectionSubscriptions})
	return nil
}

// AddMessage добавляет текстовое сообщение в чат и обновляет кеш последнего
// сообщения на самом чате. Обе записи видны потребителям только вместе.
// Чат должен существовать: создание чата по требованию — обязанность
// вызывающего коллаборатора, не хранилища.
func (s *Store) AddMessage(chatID, senderID, text string) (models.Message, error) {
	return s.appendMessage("store.AddMessage", chatID, senderID, models.MessageKindText, text, models.Attachment{})
}

// AddAttachmentMessage добавляет в чат сообщение-вложение (image или file)
// с тем же контрактом, что и AddMessage. Текст описывает вложение в кеше
// последнего сообщения чата.
func (s *Store) AddAttachmentMessage(chatID, senderID, kind string, att models.Attachment) (models.Message, error) {
	return s.appendMessage("store.AddAttachmentMessage", chatID, senderID, kind, att.Name, att)
}

func (s *Store) appendMessage(op, chatID, senderID, kind, text string, att models.Attachment) (models.Message, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Message{}, fmt.Errorf("%s: %w", op, ErrChatNotFound)
	}

	msg := models.Message{
		ID:         s.newID(),
		ChatID:     chatID,
		SenderID:   senderID,
		Kind:       kind,
		Text:       text,
		Attachment: att,
		CreatedAt:  s.now().Format(timeLayout),
	}
	s.messages = append(s.messages, msg)
	s.chats[idx].LastMessage = msg.Text
	s.chats[idx].LastMessageAt = msg.CreatedAt
	s.mu.Unlock()

	s.log.Info("message added",
		slog.String("chat_id", chatID),
		slog.String("sender_id", senderID),
		slog.String("kind", kind))
	s.notify(Event{Collection: CollectionMessages})
	return msg, nil
}

// AddChat создаёт чат между клиентом и поставщиком. Пара (клиент, поставщик)
// уникальна среди создаваемых чатов.
func (s *Store) AddChat(clientID, providerID string) (models.Chat, error) {
	const op = "store.AddChat"

	s.mu.Lock()
	if _, ok := s.findProvider(providerID); !ok {
		s.mu.Unlock()
		return models.Chat{}, fmt.Errorf("%s: %w", op, ErrProviderNotFound)
	}
	for i := range s.chats {
		if s.chats[i].ClientID == clientID && s.chats[i].ProviderID == providerID {
			s.mu.Unlock()
			return models.Chat{}, fmt.Errorf("%s: %w", op, ErrChatExists)
		}
	}
	chat := models.Chat{
		ID:         s.newID(),
		ClientID:   clientID,
		ProviderID: providerID,
	}
	s.chats = append(s.chats, chat)
	s.mu.Unlock()

	s.log.Info("chat created",
		slog.String("id", chat.ID),
		slog.String("client_id", clientID),
		slog.String("provider_id", providerID))
	s.notify(Event{Collection: CollectionChats})
	return chat, nil
}

// AddTask создаёт задачу поставщика на календарный день.
func (s *Store) AddTask(providerID, title, description, date string) (models.Task, error) {
	const op = "store.AddTask"

	s.mu.Lock()
	if _, ok := s.findProvider(providerID); !ok {
		s.mu.Unlock()
		return models.Task{}, fmt.Errorf("%s: %w", op, ErrProviderNotFound)
	}
	task := models.Task{
		ID:          s.newID(),
		ProviderID:  providerID,
		Title:       title,
		Description: description,
		Date:        date,
		Status:      models.TaskStatusPending,
	}
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.log.Info("task added",
		slog.String("id", task.ID),
		slog.String("provider_id", providerID),
		slog.String("date", date))
	s.notify(Event{Collection: CollectionTasks})
	return task, nil
}

// CompleteTask переводит задачу из pending в completed.
func (s *Store) CompleteTask(id string) error {
	const op = "store.CompleteTask"

	s.mu.Lock()
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrTaskNotFound)
	}
	if s.tasks[idx].Status != models.TaskStatusPending {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrInvalidTransition)
	}
	s.tasks[idx].Status = models.TaskStatusCompleted
	s.mu.Unlock()

	s.log.Info("task completed", slog.String("id", id))
	s.notify(Event{Collection: CollectionTasks})
	return nil
}

func (s *Store) findProvider(id string) (models.Provider, bool) {
	for i := range s.providers {
		if s.providers[i].ID == id {
			return s.providers[i], true
		}
	}
	return models.Provider{}, false
}

func (s *Store) findPackage(id string) (models.Package, bool) {
	for i := range s.packages {
		if s.packages[i].ID == id {
			return s.packages[i], true
		}
	}
	return models.Package{}, false
}

func cloneUser(u models.CurrentUser) models.CurrentUser {
	u.Languages = append([]string(nil), u.Languages...)
	u.Specialties = append([]string(nil), u.Specialties...)
	return u
}

func cloneProvider(p models.Provider) models.Provider {
	p.Languages = append([]string(nil), p.Languages...)
	p.Specialties = append([]string(nil), p.Specialties...)
	return p
}
