package store

// Имена коллекций, фигурирующие в событиях изменения.
const (
	CollectionSession       = "session"
	CollectionSubscriptions = "subscriptions"
	CollectionChats         = "chats"
	CollectionMessages      = "messages"
	CollectionTasks         = "tasks"
)

// Event описывает зафиксированное изменение хранилища.
type Event struct {
	Collection string // Изменённая коллекция
}

// Watch регистрирует наблюдателя, который синхронно вызывается после каждой
// зафиксированной записи. Наблюдатель никогда не видит частично применённую
// операцию. Возвращаемая функция снимает регистрацию.
func (s *Store) Watch(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextWatcher
	s.nextWatcher++
	s.watchers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// notify вызывает наблюдателей уже после снятия мьютекса, чтобы они могли
// читать хранилище из обработчика.
func (s *Store) notify(ev Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
