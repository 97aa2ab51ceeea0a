package models

// Статусы подписки. Переходы разрешены только из active:
// active -> expired (по истечении срока) и active -> cancelled (по инициативе
// пользователя). Статусы expired и cancelled терминальные.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusCancelled = "cancelled"
)

// Subscription связывает клиента с поставщиком услуг через купленный пакет.
// Инвариант: пакет с PackageID принадлежит поставщику с ProviderID.
// Записи никогда не удаляются — отмена и истечение меняют только статус.
type Subscription struct {
	ID         string // Уникальный идентификатор
	ClientID   string // Идентификатор клиента
	ProviderID string // Идентификатор поставщика
	PackageID  string // Идентификатор купленного пакета
	Status     string // Статус: active, expired или cancelled
	CreatedAt  string // Момент оформления (RFC3339), используется планировщиком истечения
}

// DummySubscribe используется для приёма данных оформления подписки
// из JSON-запроса. Клиент берётся из текущей сессии.
type DummySubscribe struct {
	ProviderID string `json:"provider_id" validate:"required"` // Идентификатор поставщика
	PackageID  string `json:"package_id" validate:"required"`  // Идентификатор пакета
}
