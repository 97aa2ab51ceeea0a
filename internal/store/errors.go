package store

import "errors"

// Ошибки операций хранилища. Каждая операция либо применяется целиком,
// либо возвращает одну из этих ошибок без какого-либо изменения состояния.
var (
	// ErrNoCurrentUser — операция требует пользователя текущей сессии.
	ErrNoCurrentUser = errors.New("no current user")
	// ErrProviderNotFound — ссылка на несуществующего поставщика.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrPackageNotFound — ссылка на несуществующий пакет.
	ErrPackageNotFound = errors.New("package not found")
	// ErrPackageProviderMismatch — пакет принадлежит другому поставщику.
	ErrPackageProviderMismatch = errors.New("package does not belong to provider")
	// ErrChatNotFound — ссылка на несуществующий чат.
	ErrChatNotFound = errors.New("chat not found")
	// ErrChatExists — чат для пары клиент-поставщик уже существует.
	ErrChatExists = errors.New("chat already exists for client and provider")
	// ErrSubscriptionNotFound — ссылка на несуществующую подписку.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrTaskNotFound — ссылка на несуществующую задачу.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidTransition — попытка перехода из терминального статуса.
	ErrInvalidTransition = errors.New("invalid status transition")
)
