package models

// Виды сообщений.
const (
	MessageKindText  = "text"
	MessageKindImage = "image"
	MessageKindFile  = "file"
)

// Chat представляет диалог между клиентом и поставщиком услуг.
// Пара (ClientID, ProviderID) уникальна для создаваемых чатов.
// LastMessage и LastMessageAt — кеш последнего сообщения, обновляется
// атомарно вместе с добавлением Message.
type Chat struct {
	ID            string // Уникальный идентификатор
	ClientID      string // Идентификатор клиента
	ProviderID    string // Идентификатор поставщика
	LastMessage   string // Текст последнего сообщения
	LastMessageAt string // Время последнего сообщения (RFC3339)
}

// Attachment описывает вложение сообщения: метаданные файла или изображения.
// Само содержимое хранится внешним коллаборатором, здесь только ссылка.
type Attachment struct {
	Name string // Имя файла
	URI  string // Ссылка на содержимое
	Size int64  // Размер в байтах
	MIME string // MIME-тип
}

// Message представляет сообщение в чате. CreatedAt строго неубывает
// в порядке вставки внутри одного чата и используется как ключ сортировки.
// Для kind text поле Attachment пустое, для image и file — заполнено.
type Message struct {
	ID         string     // Уникальный идентификатор
	ChatID     string     // Идентификатор чата
	SenderID   string     // Идентификатор отправителя
	Kind       string     // Вид: text, image или file
	Text       string     // Текст сообщения
	Attachment Attachment // Вложение (для image и file)
	CreatedAt  string     // Время создания (RFC3339 с наносекундами)
}

// DummyMessage используется для приёма текста нового сообщения из JSON-запроса.
// Отправитель берётся из текущей сессии, чат — из URL.
type DummyMessage struct {
	Text string `json:"text" validate:"required"` // Текст сообщения
}

// DummyChat используется для приёма данных нового чата из JSON-запроса.
// Клиент берётся из текущей сессии.
type DummyChat struct {
	ProviderID string `json:"provider_id" validate:"required"` // Идентификатор поставщика
}
