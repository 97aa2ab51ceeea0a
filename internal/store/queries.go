package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Производные запросы вычисляются по требованию из базовых коллекций
// и нигде не кешируются, поэтому всегда согласованы с последним состоянием.

// ListProviders возвращает поставщиков, отфильтрованных по роли и по
// регистронезависимому вхождению подстроки в полное имя.
func (s *Store) ListProviders(roleFilter, search string) []models.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(search)
	result := make([]models.Provider, 0, len(s.providers))
	for i := range s.providers {
		p := s.providers[i]
		if roleFilter != "" && roleFilter != models.RoleFilterAll && p.Role != roleFilter {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.FullName), needle) {
			continue
		}
		result = append(result, cloneProvider(p))
	}
	return result
}

// FindProvider возвращает поставщика по идентификатору.
func (s *Store) FindProvider(id string) (models.Provider, error) {
	const op = "store.FindProvider"
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.findProvider(id)
	if !ok {
		return models.Provider{}, fmt.Errorf("%s: %w", op, ErrProviderNotFound)
	}
	return cloneProvider(p), nil
}

// ListPackages возвращает пакеты поставщика.
func (s *Store) ListPackages(providerID string) []models.Package {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Package, 0, len(s.packages))
	for i := range s.packages {
		if s.packages[i].ProviderID == providerID {
			result = append(result, s.packages[i])
		}
	}
	return result
}

// FindPackage возвращает пакет по идентификатору.
func (s *Store) FindPackage(id string) (models.Package, error) {
	const op = "store.FindPackage"
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.findPackage(id)
	if !ok {
		return models.Package{}, fmt.Errorf("%s: %w", op, ErrPackageNotFound)
	}
	return p, nil
}

// ListChats возвращает чаты клиента, разделённые по статусу подписки.
// Фильтр subscribed оставляет чаты, поставщик которых встречается среди
// активных подписок клиента, not_subscribed — точное дополнение внутри
// чатов этого клиента. Непустой search дополнительно сужает список по
// регистронезависимому вхождению в имя поставщика.
func (s *Store) ListChats(clientID, filter, search string) []models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscribed := make(map[string]struct{})
	for i := range s.subscriptions {
		sub := s.subscriptions[i]
		if sub.ClientID == clientID && sub.Status == models.SubscriptionStatusActive {
			subscribed[sub.ProviderID] = struct{}{}
		}
	}

	needle := strings.ToLower(search)
	result := make([]models.Chat, 0, len(s.chats))
	for i := range s.chats {
		chat := s.chats[i]
		if chat.ClientID != clientID {
			continue
		}
		_, isSubscribed := subscribed[chat.ProviderID]
		if filter == models.ChatFilterSubscribed && !isSubscribed {
			continue
		}
		if filter == models.ChatFilterNotSubscribed && isSubscribed {
			continue
		}
		if needle != "" {
			name := ""
			if p, ok := s.findProvider(chat.ProviderID); ok {
				name = strings.ToLower(p.FullName)
			}
			if !strings.Contains(name, needle) {
				continue
			}
		}
		result = append(result, chat)
	}
	return result
}

// FindChat возвращает чат по идентификатору.
func (s *Store) FindChat(id string) (models.Chat, error) {
	const op = "store.FindChat"
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chats {
		if s.chats[i].ID == id {
			return s.chats[i], nil
		}
	}
	return models.Chat{}, fmt.Errorf("%s: %w", op, ErrChatNotFound)
}

// FindChatByPair возвращает чат по паре клиент-поставщик.
func (s *Store) FindChatByPair(clientID, providerID string) (models.Chat, error) {
	const op = "store.FindChatByPair"
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chats {
		if s.chats[i].ClientID == clientID && s.chats[i].ProviderID == providerID {
			return s.chats[i], nil
		}
	}
	return models.Chat{}, fmt.Errorf("%s: %w", op, ErrChatNotFound)
}

// ListMessages возвращает сообщения чата в хронологическом порядке.
// Сортировка стабильная: при равных временных метках сохраняется
// порядок вставки.
func (s *Store) ListMessages(chatID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Message, 0, len(s.messages))
	for i := range s.messages {
		if s.messages[i].ChatID == chatID {
			result = append(result, s.messages[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt < result[j].CreatedAt
	})
	return result
}

// TasksForDate возвращает все задачи на календарный день.
func (s *Store) TasksForDate(date string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Task, 0, len(s.tasks))
	for i := range s.tasks {
		if s.tasks[i].Date == date {
			result = append(result, s.tasks[i])
		}
	}
	return result
}

// TodayTasks возвращает задачи открытого поставщика на сегодня.
// Сравнение идёт по календарному дню, не по точному времени.
// Если поставщик не открыт, список пуст.
func (s *Store) TodayTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	providerID := s.currentProviderID
	if providerID == "" {
		return []models.Task{}
	}
	today := s.now().Format("2006-01-02")
	result := make([]models.Task, 0, len(s.tasks))
	for i := range s.tasks {
		if s.tasks[i].ProviderID == providerID && s.tasks[i].Date == today {
			result = append(result, s.tasks[i])
		}
	}
	return result
}

// ProviderTasks возвращает все задачи поставщика.
func (s *Store) ProviderTasks(providerID string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Task, 0, len(s.tasks))
	for i := range s.tasks {
		if s.tasks[i].ProviderID == providerID {
			result = append(result, s.tasks[i])
		}
	}
	return result
}

// ListSubscriptions возвращает подписки, видимые пользователю: поставщик
// видит подписки на себя, клиент — свои собственные.
func (s *Store) ListSubscriptions(userID, role string) []models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Subscription, 0, len(s.subscriptions))
	for i := range s.subscriptions {
		sub := s.subscriptions[i]
		if role == models.RoleCoach || role == models.RoleNutritionist {
			if sub.ProviderID == userID {
				result = append(result, sub)
			}
		} else if sub.ClientID == userID {
			result = append(result, sub)
		}
	}
	return result
}

// ActiveSubscriptions возвращает все активные подписки. Используется
// планировщиком истечения.
func (s *Store) ActiveSubscriptions() []models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Subscription, 0, len(s.subscriptions))
	for i := range s.subscriptions {
		if s.subscriptions[i].Status == models.SubscriptionStatusActive {
			result = append(result, s.subscriptions[i])
		}
	}
	return result
}

// Counts возвращает размеры коллекций сообщений и чатов.
// Используется в тестах для проверки отсутствия изменений.
func (s *Store) Counts() (chats, messages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chats), len(s.messages)
}
