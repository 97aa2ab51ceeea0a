package models

// Статусы задачи.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task представляет задание поставщика услуг на конкретный календарный день.
// Задачи видны клиентам с активной подпиской на этого поставщика.
// Date хранится как календарный ключ YYYY-MM-DD и сортируется как строка.
type Task struct {
	ID          string // Уникальный идентификатор
	ProviderID  string // Идентификатор поставщика-владельца
	Title       string // Название задачи
	Description string // Описание (опционально)
	Date        string // Календарный день в формате YYYY-MM-DD
	Status      string // Статус: pending или completed
}

// DummyTask используется для приёма данных новой задачи из JSON-запроса.
// Поставщик берётся из текущей сессии.
type DummyTask struct {
	Title       string `json:"title" validate:"required"`                        // Название задачи
	Description string `json:"description,omitempty" validate:"omitempty"`      // Описание (опционально)
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`    // День в формате YYYY-MM-DD
}
